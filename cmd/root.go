package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/solventhq/solvent-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solvent",
	Short: "Command-line companion for the Solvent API",
	Long: `Solvent is the command-line companion for the Solvent API. It talks to
the same endpoints the SDK does: customers, webhooks and file uploads.

Credentials come from the SOLVENT_API_KEY environment variable or from the
encrypted vault written by 'solvent configure'.

Examples:
  solvent configure                          # Store an API key
  solvent customers list                     # List customers
  solvent webhooks verify payload.json ...   # Check a webhook signature
  solvent files upload document.pdf          # Upload a KYC document`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("environment", "", "API environment (sandbox or production)")
	rootCmd.PersistentFlags().String("base-url", "", "override the API base URL")

	viper.SetEnvPrefix("SOLVENT")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("environment", rootCmd.PersistentFlags().Lookup("environment"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(webhooksCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Solvent CLI v%s\n", version)
	},
}

// configDir returns the CLI state directory, creating it if needed.
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".solvent")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	return dir, nil
}

// newClient builds an SDK client from the environment or the stored vault.
func newClient() (*solvent.Client, error) {
	apiKey := viper.GetString("api_key")
	environment := viper.GetString("environment")

	if apiKey == "" {
		creds, err := loadCredentials()
		if err != nil {
			return nil, err
		}
		apiKey = creds.APIKey
		if environment == "" {
			environment = creds.Environment
		}
	}

	return solvent.NewClient(solvent.Config{
		APIKey:      apiKey,
		Environment: environment,
		BaseURL:     viper.GetString("base_url"),
	})
}

// readPassword prompts for a password without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()
	return string(password), nil
}
