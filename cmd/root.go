package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avedra/drivectl/internal/config"
	"github.com/avedra/drivectl/internal/logging"
)

var (
	cfgFile string
	keyFile string
	debug   bool

	// cfg is loaded once in the persistent pre-run and read by every
	// subcommand.
	cfg *config.Config
)

// rootCmd represents the base command for the drivectl application
var rootCmd = &cobra.Command{
	Use:   "drivectl",
	Short: "Manage files in Google Drive from the command line",
	Long: `drivectl is a command-line tool for a Google Drive folder/file workflow,
authenticated as a service account.

It lists the files inside a named folder, downloads and uploads files,
creates folders, and deletes or copies files. Run it without arguments
for an interactive menu of the same operations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if keyFile != "" {
			cfg.KeyFile = keyFile
		}
		if debug {
			cfg.Log.Level = "debug"
		}
		logging.Setup(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "drivectl version %s\n" .Version}}`)

	// If no subcommand is provided, run the interactive menu by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "interactive")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default: <user config dir>/drivectl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&keyFile, "key-file", "", "path to the service account JSON key file (default: key.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newMkdirCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newCpCmd())
	rootCmd.AddCommand(newInteractiveCmd())
	rootCmd.AddCommand(newVersionCmd())
}
