package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/solventhq/solvent-go"
	"github.com/spf13/cobra"
)

var webhooksCmd = &cobra.Command{
	Use:   "webhooks",
	Short: "Manage and verify webhooks",
}

var webhooksVerifyCmd = &cobra.Command{
	Use:   "verify <payload-file>",
	Short: "Check a webhook payload signature",
	Long: `Check that a webhook payload was signed with your webhook secret.
The payload file must contain the exact raw request body; re-saving it
through a JSON formatter will break the digest.

Example:
  solvent webhooks verify payload.json --signature 3f1a... --secret whsec_...`,
	Args: cobra.ExactArgs(1),
	RunE: runWebhooksVerify,
}

var (
	verifySignature string
	verifySecret    string
)

func init() {
	webhooksVerifyCmd.Flags().StringVar(&verifySignature, "signature", "", "signature header value (required)")
	webhooksVerifyCmd.Flags().StringVar(&verifySecret, "secret", "", "webhook secret (required)")
	_ = webhooksVerifyCmd.MarkFlagRequired("signature")
	_ = webhooksVerifyCmd.MarkFlagRequired("secret")
	webhooksCmd.AddCommand(webhooksVerifyCmd)
}

func runWebhooksVerify(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	ok, err := solvent.VerifySignature(payload, verifySignature, verifySecret)
	if err != nil {
		return err
	}
	if ok {
		color.Green("✅ Signature is valid")
		return nil
	}

	color.Red("❌ Signature mismatch")
	os.Exit(1)
	return nil
}
