package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"edkeyring/internal/app"
	"edkeyring/internal/domain"
)

var (
	cfgFile string
	seedHex string
	pubHex  string
	keyPath string
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "edkeyring",
		Short: "Ed25519 key pairs and hardened hierarchical derivation",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file")

	root.AddCommand(generateCmd(), deriveCmd(), signCmd(), verifyCmd(), fingerprintCmd())
	return root.Execute()
}

// seedFromFlag decodes the --seed hex flag into a Seed.
func seedFromFlag() (domain.Seed, error) {
	b, err := hex.DecodeString(seedHex)
	if err != nil {
		return domain.Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return domain.SeedFromBytes(b)
}

// pubFromFlag decodes the --pub hex flag into a PublicKey.
func pubFromFlag() (domain.PublicKey, error) {
	b, err := hex.DecodeString(pubHex)
	if err != nil {
		return domain.PublicKey{}, fmt.Errorf("decode public key: %w", err)
	}
	return domain.PublicKeyFromBytes(b)
}
