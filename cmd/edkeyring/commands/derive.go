package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edkeyring/internal/crypto"
	"edkeyring/internal/domain"
	"edkeyring/internal/keypair"
)

// derive <path>: walk a derivation path from --seed and print the child.
func deriveCmd() *cobra.Command {
	var showSecret bool
	cmd := &cobra.Command{
		Use:   "derive <path>",
		Short: "Derive a child key pair from a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFromFlag()
			if err != nil {
				return err
			}
			key, chainCode := appCtx.Keys.Derive(args[0], seed)
			kp := keypair.FromSeed(domain.Seed(key))
			crypto.Wipe(key[:])

			fmt.Printf("Public key:  %x\n", kp.PublicKey().Slice())
			fmt.Printf("Chain code:  %x\n", chainCode.Slice())
			fmt.Printf("Fingerprint: %s\n", kp.Fingerprint())
			if showSecret {
				fmt.Printf("Secret key:  %x\n", kp.RawSecret())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&seedHex, "seed", "s", "", "seed as 64 hex chars")
	_ = cmd.MarkFlagRequired("seed")
	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "also print the derived secret key")
	return cmd
}
