package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edkeyring/internal/keypair"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a random seed and its key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := appCtx.Keys.GenerateSeed()
			if err != nil {
				return err
			}
			kp := keypair.FromSeed(seed)
			fmt.Printf("Seed:        %x\n", seed.Slice())
			fmt.Printf("Public key:  %x\n", kp.PublicKey().Slice())
			fmt.Printf("Fingerprint: %s\n", kp.Fingerprint())
			return nil
		},
	}
}
