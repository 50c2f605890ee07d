package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"kyberkex/internal/params"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key in base64",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.Load(passphrase, params.Name)
			if err != nil {
				return err
			}
			defer kp.Wipe()
			fmt.Println(base64.StdEncoding.EncodeToString(kp.Public[:]))
			return nil
		},
	}
}
