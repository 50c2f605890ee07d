package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"kyberkex/internal/util/memzero"
	"kyberkex/kem"
)

func encapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encap <peer-pubkey-base64>",
		Short: "Encapsulate a shared secret to a peer public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := base64.StdEncoding.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode peer public key: %w", err)
			}
			ct, ss, err := kem.Encapsulate(pk, rand.Reader)
			if err != nil {
				return err
			}
			defer memzero.Zero(ss)
			fmt.Printf("Ciphertext: %s\n", base64.StdEncoding.EncodeToString(ct))
			fmt.Printf("Shared secret: %s\n", base64.StdEncoding.EncodeToString(ss))
			return nil
		},
	}
}
