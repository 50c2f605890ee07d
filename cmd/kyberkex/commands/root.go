package commands

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"kyberkex/internal/params"
	"kyberkex/internal/store"
	"kyberkex/internal/symmetric"
)

var (
	home       string
	passphrase string
	keys       *store.KeyPairStore
)

func Execute() error {
	root := &cobra.Command{
		Use:   "kyberkex",
		Short: "Post-quantum key encapsulation and key exchange CLI (" + params.Name + ")",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".kyberkex")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			keys = store.NewKeyPairStore(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.kyberkex)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(initCmd(), fingerprintCmd(), pubkeyCmd(), encapCmd(), decapCmd(), exchangeCmd())
	return root.Execute()
}

// fingerprint returns a short hex fingerprint of a public key, hashed with
// the library's own H.
func fingerprint(pub []byte) string {
	sum := symmetric.H(pub)
	return hex.EncodeToString(sum[:10])
}
