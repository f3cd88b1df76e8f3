package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Upload and inspect documents",
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a document",
	Long: `Upload a document, typically KYC evidence, as multipart form data.

Example:
  solvent files upload passport.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runFilesUpload,
}

var filesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show file metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesGet,
}

func init() {
	filesCmd.AddCommand(filesUploadCmd)
	filesCmd.AddCommand(filesGetCmd)
}

func runFilesUpload(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "uploading")
	reader := io.TeeReader(file, bar)

	uploaded, err := client.Files.Upload(context.Background(), filepath.Base(args[0]), reader)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	fmt.Printf("\n✅ Uploaded %s (id %s)\n", uploaded.Filename, uploaded.ID)
	return nil
}

func runFilesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	file, err := client.Files.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch file: %w", err)
	}

	fmt.Printf("ID:       %s\n", file.ID)
	fmt.Printf("Filename: %s\n", file.Filename)
	fmt.Printf("Size:     %d bytes\n", file.Size)
	return nil
}
