package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"

	"github.com/avedra/drivectl/internal/drive"
)

func newUploadCmd() *cobra.Command {
	var parentName, parentID, mimeType, name, chunkSize string
	var strict bool

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a local file",
		Long: `Upload a local file to Google Drive. The MIME type is guessed from the
file extension unless --mime-type overrides it. With --parent the file is
created inside the named folder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}
			return runUpload(ctx, client, args[0], name, parentName, parentID, mimeType, chunkSize, strict)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "remote file name (default: the local file name)")
	cmd.Flags().StringVar(&parentName, "parent", "", "parent folder name")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "parent folder ID (bypasses the name lookup)")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type (default: guessed from the extension)")
	cmd.Flags().StringVar(&chunkSize, "chunk-size", "", `resumable upload chunk size, e.g. "8MB"`)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the parent folder name is ambiguous")
	return cmd
}

func runUpload(ctx context.Context, client *drive.Client, path, name, parentName, parentID, mimeType, chunkSize string, strict bool) error {
	parents, err := resolveParents(ctx, client, parentName, parentID, strict)
	if err != nil {
		return err
	}

	chunk := 0
	if chunkSize != "" {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(chunkSize)); err != nil {
			return fmt.Errorf("invalid chunk size %q: %w", chunkSize, err)
		}
		chunk = int(size.Bytes())
	} else if chunk, err = cfg.ChunkSizeBytes(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if name == "" {
		name = filepath.Base(path)
	}

	info, err := client.Upload(ctx, name, f, &drive.UploadOptions{
		ParentFolders: parents,
		MimeType:      mimeType,
		ChunkSize:     chunk,
	})
	if err != nil {
		return err
	}

	fmt.Printf("File ID: %s\n", info.ID)
	return nil
}
