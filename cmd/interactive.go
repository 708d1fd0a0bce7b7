package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avedra/drivectl/internal/tui"
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick an operation from an interactive menu",
		Long: `Open a menu of the available Drive operations, prompt for the chosen
operation's parameters and run it. This is the default when drivectl is
started without arguments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("interactive mode requires a terminal; use a subcommand instead (see --help)")
			}

			p := tea.NewProgram(tui.NewModel())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("interactive session failed: %w", err)
			}

			req, ok := final.(tui.Model).Result()
			if !ok {
				// User backed out; nothing to do.
				return nil
			}
			return dispatch(cmd, req)
		},
	}
}

// dispatch executes a confirmed menu request through the same code paths
// the subcommands use.
func dispatch(cmd *cobra.Command, req tui.Request) error {
	ctx := context.Background()
	client, err := newDriveClient(ctx)
	if err != nil {
		return err
	}

	args := req.Args
	switch req.Op {
	case tui.OpListFolder:
		return runLs(ctx, client, cmd.OutOrStdout(), args[tui.ArgFolder], false, false)
	case tui.OpDownload:
		dir := args[tui.ArgDir]
		if dir == "" {
			dir = "."
		}
		path, err := destinationPath(args[tui.ArgFile], "", dir, "")
		if err != nil {
			return err
		}
		return runDownload(ctx, client, args[tui.ArgFile], "", path, false)
	case tui.OpUpload:
		return runUpload(ctx, client, args[tui.ArgPath], "", args[tui.ArgParent], "", "", "", false)
	case tui.OpCreateFolder:
		return runMkdir(ctx, client, args[tui.ArgFolder], args[tui.ArgParent], "", false)
	case tui.OpDelete:
		return runRm(ctx, client, args[tui.ArgFile], "", false)
	case tui.OpCopy:
		return runCp(ctx, client, args[tui.ArgFile], "", args[tui.ArgNewName], args[tui.ArgParent], "", false)
	default:
		return fmt.Errorf("unknown operation %d", req.Op)
	}
}
