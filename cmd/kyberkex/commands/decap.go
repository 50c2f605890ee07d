package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"kyberkex/internal/params"
	"kyberkex/internal/util/memzero"
	"kyberkex/kem"
)

func decapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decap <ciphertext-base64>",
		Short: "Decapsulate a ciphertext with the stored secret key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := base64.StdEncoding.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode ciphertext: %w", err)
			}
			kp, err := keys.Load(passphrase, params.Name)
			if err != nil {
				return err
			}
			defer kp.Wipe()
			ss, err := kem.Decapsulate(ct, kp.Secret[:])
			if err != nil {
				return err
			}
			defer memzero.Zero(ss)
			fmt.Printf("Shared secret: %s\n", base64.StdEncoding.EncodeToString(ss))
			return nil
		},
	}
}
