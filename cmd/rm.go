package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avedra/drivectl/internal/drive"
)

func newRmCmd() *cobra.Command {
	var fileID string
	var strict bool

	cmd := &cobra.Command{
		Use:   "rm <file>",
		Short: "Delete a file permanently",
		Long: `Resolve a file by name and delete it. The file does not go to the trash;
deletion is permanent. With --strict an ambiguous name is an error instead
of deleting the first match.`,
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
			return runRm(ctx, client, name, fileID, strict)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", "", "delete by file ID instead of name")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the file name is ambiguous")
	return cmd
}

func runRm(ctx context.Context, client *drive.Client, name, fileID string, strict bool) error {
	id, err := resolveFileID(ctx, client, name, fileID, drive.KindAny, strict)
	if err != nil {
		return err
	}

	if err := client.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Println("File deleted")
	return nil
}
