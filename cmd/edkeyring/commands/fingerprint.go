package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := pubFromFlag()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", appCtx.Keys.Fingerprint(pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&pubHex, "pub", "", "public key as 64 hex chars")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
