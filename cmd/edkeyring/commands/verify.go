package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"edkeyring/internal/domain"
)

// verify <message> <signature-hex>: check a signature against --pub.
func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <message> <signature-hex>",
		Short: "Verify a signature against a public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := pubFromFlag()
			if err != nil {
				return err
			}
			rawSig, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}
			sig, err := domain.SignatureFromBytes(rawSig)
			if err != nil {
				return err
			}
			if !appCtx.Keys.VerifyMessage(pub, []byte(args[0]), sig) {
				return fmt.Errorf("signature invalid")
			}
			fmt.Println("signature valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubHex, "pub", "", "public key as 64 hex chars")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
