package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sign <message>: sign with the key derived at --path from --seed.
func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with a key derived from a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFromFlag()
			if err != nil {
				return err
			}
			path := keyPath
			if path == "" {
				path = appCtx.Config.DefaultPath
			}
			sig, pub := appCtx.Keys.SignMessage(path, seed, []byte(args[0]))
			fmt.Printf("Signature:  %x\n", sig.Slice())
			fmt.Printf("Public key: %x\n", pub.Slice())
			return nil
		},
	}
	cmd.Flags().StringVarP(&seedHex, "seed", "s", "", "seed as 64 hex chars")
	_ = cmd.MarkFlagRequired("seed")
	cmd.Flags().StringVar(&keyPath, "path", "", "derivation path (default from config)")
	return cmd
}
