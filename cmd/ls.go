package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"

	"github.com/avedra/drivectl/internal/drive"
	"github.com/avedra/drivectl/internal/logging"
)

func newLsCmd() *cobra.Command {
	var strict, long bool

	cmd := &cobra.Command{
		Use:   "ls <folder>",
		Short: "List the files inside a named folder",
		Long: `Resolve a folder by name and list its direct children, following the
service's pagination until every entry has been collected.

By default the folder is resolved to the first name match. With --strict
the whole catalog is scanned and an ambiguous folder name is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}
			return runLs(ctx, client, cmd.OutOrStdout(), args[0], strict, long)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the folder name is ambiguous")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show size and modification time")
	return cmd
}

func runLs(ctx context.Context, cat drive.Catalog, out io.Writer, folder string, strict, long bool) error {
	files, found, err := drive.ListFolderByName(ctx, cat, folder, strict, listOptions())
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("folder %q was not found", folder)
	}

	slog.Debug("listed folder",
		logging.Operation("ls"),
		logging.Folder(folder),
		logging.Count(len(files)))

	for _, f := range files {
		if long {
			size := "-"
			if !f.IsFolder() {
				size = datasize.ByteSize(f.Size).HumanReadable()
			}
			modified := "-"
			if !f.ModifiedTime.IsZero() {
				modified = f.ModifiedTime.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(out, "%-35s %10s  %16s  %s\n", f.ID, size, modified, f.Name)
		} else {
			fmt.Fprintf(out, "%s  %s\n", f.ID, f.Name)
		}
	}
	return nil
}
