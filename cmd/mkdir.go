package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avedra/drivectl/internal/drive"
)

func newMkdirCmd() *cobra.Command {
	var parentName, parentID string
	var strict bool

	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}
			return runMkdir(ctx, client, args[0], parentName, parentID, strict)
		},
	}

	cmd.Flags().StringVar(&parentName, "parent", "", "parent folder name")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "parent folder ID (bypasses the name lookup)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the parent folder name is ambiguous")
	return cmd
}

func runMkdir(ctx context.Context, client *drive.Client, name, parentName, parentID string, strict bool) error {
	parents, err := resolveParents(ctx, client, parentName, parentID, strict)
	if err != nil {
		return err
	}

	info, err := client.CreateFolder(ctx, name, parents)
	if err != nil {
		return err
	}

	fmt.Printf("Folder ID: %s\n", info.ID)
	return nil
}
