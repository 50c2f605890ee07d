package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kyberkex/internal/params"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the public-key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.Load(passphrase, params.Name)
			if err != nil {
				return err
			}
			defer kp.Wipe()
			fmt.Printf("Fingerprint: %s\n", fingerprint(kp.Public[:]))
			return nil
		},
	}
}
