package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"kyberkex/internal/util/memzero"
	"kyberkex/kem"
)

const keyPairFilename = "keypair.json.enc"

// record is the plaintext JSON shape sealed inside the envelope.
type record struct {
	Level  string `json:"level"`
	Public []byte `json:"public"`
	Secret []byte `json:"secret"`
}

// KeyPairStore persists the local key pair to disk.
type KeyPairStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyPairStore returns a KeyPairStore rooted at dir.
func NewKeyPairStore(dir string) *KeyPairStore {
	return &KeyPairStore{dir: dir}
}

// Save writes the encrypted key pair to disk.
func (s *KeyPairStore) Save(passphrase string, level string, kp *kem.KeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(record{
		Level:  level,
		Public: kp.Public[:],
		Secret: kp.Secret[:],
	})
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, keyPairFilename)
	return os.WriteFile(path, ct, 0o600)
}

// Load reads and decrypts the key pair. The stored security level must match
// the one compiled into this binary.
func (s *KeyPairStore) Load(passphrase string, level string) (*kem.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, keyPairFilename)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(pt)

	var rec record
	if err := json.Unmarshal(pt, &rec); err != nil {
		return nil, err
	}
	if rec.Level != level {
		return nil, fmt.Errorf("keystore holds %s keys, binary is built for %s", rec.Level, level)
	}
	if len(rec.Public) != kem.PublicKeyBytes || len(rec.Secret) != kem.SecretKeyBytes {
		return nil, kem.ErrInvalidInput
	}
	kp := new(kem.KeyPair)
	copy(kp.Public[:], rec.Public)
	copy(kp.Secret[:], rec.Secret)
	memzero.Zero(rec.Secret)
	return kp, nil
}
