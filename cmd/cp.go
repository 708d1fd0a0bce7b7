package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avedra/drivectl/internal/drive"
)

func newCpCmd() *cobra.Command {
	var fileID, newName, parentName, parentID string
	var strict bool

	cmd := &cobra.Command{
		Use:   "cp <file>",
		Short: "Copy a file",
		Long: `Resolve a file by name and copy it, optionally into the folder named with
--parent and optionally under a new name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			ctx := context.Background()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}
			return runCp(ctx, client, name, fileID, newName, parentName, parentID, strict)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "copy by file ID instead of name")
	cmd.Flags().StringVar(&newName, "new-name", "", "name for the copy")
	cmd.Flags().StringVar(&parentName, "parent", "", "destination folder name")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "destination folder ID (bypasses the name lookup)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a name is ambiguous")
	return cmd
}

func runCp(ctx context.Context, client *drive.Client, name, fileID, newName, parentName, parentID string, strict bool) error {
	id, err := resolveFileID(ctx, client, name, fileID, drive.KindFile, strict)
	if err != nil {
		return err
	}

	parents, err := resolveParents(ctx, client, parentName, parentID, strict)
	if err != nil {
		return err
	}

	opts := &drive.CopyOptions{NewName: newName}
	if len(parents) > 0 {
		opts.ParentFolder = parents[0]
	}

	info, err := client.Copy(ctx, id, opts)
	if err != nil {
		return err
	}

	fmt.Printf("File ID: %s\n", info.ID)
	return nil
}
