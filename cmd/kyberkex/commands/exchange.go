package commands

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"kyberkex/internal/params"
	"kyberkex/kem"
	"kyberkex/kex"
)

// exchangeCmd runs a full handshake in-process with the stored key pair as
// the responder and a fresh key pair as the initiator, then checks that both
// sides agreed. Useful as a smoke test of the keystore and the protocol.
func exchangeCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Run an in-process key exchange against the stored key",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.Load(passphrase, params.Name)
			if err != nil {
				return err
			}
			defer kp.Wipe()

			switch mode {
			case "uake":
				alice, bob := kex.NewUake(), kex.NewUake()
				defer alice.Wipe()
				defer bob.Wipe()

				sendA, err := alice.ClientInit(kp.Public[:], rand.Reader)
				if err != nil {
					return err
				}
				sendB, err := bob.ServerReceive(sendA, kp.Secret[:], rand.Reader)
				if err != nil {
					return err
				}
				if err := alice.ClientConfirm(sendB); err != nil {
					return err
				}
				if !bytes.Equal(alice.SharedSecret[:], bob.SharedSecret[:]) {
					return fmt.Errorf("uake: parties derived different secrets")
				}
			case "ake":
				initiatorKeys, err := kem.GenerateKeyPair(rand.Reader)
				if err != nil {
					return err
				}
				defer initiatorKeys.Wipe()

				alice, bob := kex.NewAke(), kex.NewAke()
				defer alice.Wipe()
				defer bob.Wipe()

				sendA, err := alice.ClientInit(kp.Public[:], rand.Reader)
				if err != nil {
					return err
				}
				sendB, err := bob.ServerReceive(sendA, initiatorKeys.Public[:], kp.Secret[:], rand.Reader)
				if err != nil {
					return err
				}
				if err := alice.ClientConfirm(sendB, initiatorKeys.Secret[:]); err != nil {
					return err
				}
				if !bytes.Equal(alice.SharedSecret[:], bob.SharedSecret[:]) {
					return fmt.Errorf("ake: parties derived different secrets")
				}
			default:
				return fmt.Errorf("unknown mode %q (want uake or ake)", mode)
			}
			fmt.Printf("%s exchange OK (%s)\n", mode, params.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "uake", "handshake mode: uake or ake")
	return cmd
}
