package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avedra/drivectl/internal/drive"
)

func newDownloadCmd() *cobra.Command {
	var dir, out, fileID string
	var strict bool

	cmd := &cobra.Command{
		Use:   "download <file>",
		Short: "Download a file by name",
		Long: `Resolve a file by name and stream its content into the local directory
given with --dir (the working directory by default). Progress is shown
when stdout is a terminal.

With --id the lookup is skipped; --out then names the local file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			path, err := destinationPath(name, out, dir, fileID)
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}
			return runDownload(ctx, client, name, fileID, path, strict)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "local directory to download into")
	cmd.Flags().StringVar(&out, "out", "", "local file name (default: the remote name)")
	cmd.Flags().StringVar(&fileID, "id", "", "download by file ID instead of name")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the file name is ambiguous")
	return cmd
}

// destinationPath picks the local target file for a download.
func destinationPath(name, out, dir, fileID string) (string, error) {
	if out == "" {
		out = filepath.Base(name)
	}
	if out == "" || out == "." {
		if fileID != "" {
			return "", fmt.Errorf("--out is required when downloading by --id")
		}
		return "", fmt.Errorf("a file name argument is required")
	}
	return filepath.Join(dir, out), nil
}

func runDownload(ctx context.Context, client *drive.Client, name, fileID, path string, strict bool) error {
	id, err := resolveFileID(ctx, client, name, fileID, drive.KindFile, strict)
	if err != nil {
		return err
	}

	body, total, err := client.Download(ctx, id)
	if err != nil {
		return err
	}
	defer body.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer dst.Close()

	showProgress := term.IsTerminal(int(os.Stdout.Fd()))
	var src io.Reader = body
	if showProgress {
		src = drive.NewProgressReader(body, total, printProgress)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if showProgress {
		fmt.Println()
	}

	fmt.Printf("Downloaded %s (%s)\n", path, datasize.ByteSize(written).HumanReadable())
	return nil
}

// printProgress repaints one progress line. With an unknown total only the
// byte count is shown.
func printProgress(transferred, total int64) {
	if total > 0 {
		fmt.Printf("\rDownload %d%%.", transferred*100/total)
	} else {
		fmt.Printf("\rDownload %s.", datasize.ByteSize(transferred).HumanReadable())
	}
}
