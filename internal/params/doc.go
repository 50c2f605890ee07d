// Package params holds the byte-length constants for the active Kyber
// security level and the fixed offsets inside a packed secret key.
//
// Exactly one security level is compiled in. The default is Kyber768; build
// with -tags kyber512 or -tags kyber1024 to select another level. Enabling
// both tags leaves no level file in the build and the package fails to
// compile, so mixing levels is a build-time error rather than a runtime
// condition.
//
// A packed secret key is laid out as
//
//	[ pke_secret | pke_public | H(pke_public) | z ]
//
// where z is the 32-byte implicit-rejection fallback. The offsets below are
// part of the wire format and must not change.
package params
