package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"kyberkex/internal/params"
	"kyberkex/kem"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a key pair and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			kp, err := kem.GenerateKeyPair(rand.Reader)
			if err != nil {
				return err
			}
			defer kp.Wipe()
			if err := keys.Save(passphrase, params.Name, kp); err != nil {
				return err
			}
			fmt.Printf("Key pair created (%s).\nFingerprint: %s\n", params.Name, fingerprint(kp.Public[:]))
			return nil
		},
	}
}
