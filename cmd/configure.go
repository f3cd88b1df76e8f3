package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const vaultFilename = "credentials.vault"

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store an API key in the encrypted vault",
	Long: `Store your Solvent API key in an encrypted vault under ~/.solvent.
The key is encrypted with AES-256-GCM under a password of your choice and
never written to disk in plaintext.

Example:
  solvent configure --environment production`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	apiKey, err := readPassword("Enter your API key: ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		return fmt.Errorf("API key must not be empty")
	}

	environment := viper.GetString("environment")
	if environment == "" {
		environment = api.EnvironmentSandbox
	}

	password, err := readPassword("Choose a vault password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm vault password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	vault, err := crypto.NewVault(crypto.Credentials{
		APIKey:      apiKey,
		Environment: environment,
	}, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	if err := saveVault(vault); err != nil {
		return err
	}

	fmt.Printf("✅ Credentials stored for the %s environment\n", environment)
	return nil
}

// saveVault writes the vault file with owner-only permissions.
func saveVault(vault *crypto.Vault) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	path := filepath.Join(dir, vaultFilename)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}
	return nil
}

// loadCredentials opens the stored vault, prompting for its password.
func loadCredentials() (*crypto.Credentials, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, vaultFilename))
	if err != nil {
		return nil, fmt.Errorf("no credentials found. Run 'solvent configure' or set SOLVENT_API_KEY")
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}

	password, err := readPassword("Enter your vault password: ")
	if err != nil {
		return nil, err
	}

	creds, err := vault.Decrypt(password)
	if err != nil {
		return nil, fmt.Errorf("failed to unlock vault: %w", err)
	}
	return creds, nil
}
