package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tsubst/internal/version"
	"github.com/arthur-debert/tsubst/pkg/config"
	"github.com/arthur-debert/tsubst/pkg/core"
	"github.com/arthur-debert/tsubst/pkg/logging"
	"github.com/arthur-debert/tsubst/pkg/vars"
	"github.com/arthur-debert/tsubst/pkg/walker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool

		text      string
		filePath  string
		dirPath   string
		output    string
		silent    bool
		recursive bool
		extension string
		expand    bool
		useEnv    bool
	)
	srcs := &sourceList{}

	rootCmd := &cobra.Command{
		Use:     "tsubst",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags the user did not pass fall back to config values
			if !cmd.Flags().Changed("ext") {
				extension = cfg.Extension
			}
			if !cmd.Flags().Changed("recursive") {
				recursive = cfg.Recursive
			}
			if !cmd.Flags().Changed("expand") {
				expand = cfg.Expand
			}
			if !cmd.Flags().Changed("silent") {
				silent = cfg.Silent
			}

			sources := srcs.sources
			if useEnv {
				// The environment is the lowest precedence layer, no
				// matter where --env appeared on the command line
				sources = append([]vars.Source{vars.Environ{Pairs: os.Environ()}}, sources...)
			}

			walkOpts := walker.Options{
				File:      filePath,
				Dir:       dirPath,
				Output:    output,
				Extension: extension,
				Recursive: recursive,
			}
			if cmd.Flags().Changed("text") {
				walkOpts.Inline = &text
			}

			result, err := core.Run(core.RunOptions{
				Stdout:        cmd.OutOrStdout(),
				Sources:       sources,
				Walk:          walkOpts,
				ExpandVars:    expand,
				FailOnMissing: !silent,
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}

			renderReport(cmd.ErrOrStderr(), result)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	flags := rootCmd.Flags()
	flags.StringVarP(&text, "text", "t", "", MsgFlagText)
	flags.StringVarP(&filePath, "file", "f", "", MsgFlagFile)
	flags.StringVarP(&dirPath, "dir", "d", "", MsgFlagDir)
	flags.StringVarP(&output, "output", "o", "", MsgFlagOutput)
	flags.BoolVarP(&silent, "silent", "s", false, MsgFlagSilent)
	flags.BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	flags.StringVar(&extension, "ext", walker.DefaultExtension, MsgFlagExt)
	flags.BoolVar(&expand, "expand", false, MsgFlagExpand)
	flags.BoolVar(&useEnv, "env", false, MsgFlagUseEnv)
	flags.VarP(&assignmentValue{list: srcs}, "set", "e", MsgFlagSet)
	flags.Var(&varFileValue{list: srcs, mustExist: true}, "var-file", MsgFlagVarFile)
	flags.Var(&varFileValue{list: srcs, mustExist: false}, "optional-var-file", MsgFlagOptFile)

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tsubst version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long: `Print the effective configuration as TOML, suitable for seeding
` + config.FilePath(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
