package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/nepscript/goodsync/internal/config"
	"github.com/nepscript/goodsync/internal/pipeline"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Fetch owned materials and write the GOOD export file",
	Long: `Runs the full export pipeline: roster fetch -> requirement probe -> minimum cover -> inventory computation -> GOOD mapping -> file write.

COOKIES and UID are read from the environment or a .env file; flags override the remaining settings.`,
	RunE: runExportCmd,
}

var (
	exportOut     string
	exportRegion  string
	exportCount   int
	exportTimeout time.Duration
	exportVerbose bool
)

func init() {
	exportCommand.Flags().StringVarP(&exportOut, "out", "o", "", "Output path for the GOOD JSON file (default good_materials.json, or GOOD_OUT)")
	exportCommand.Flags().StringVar(&exportRegion, "region", "", "Account server region (default os_asia, or REGION)")
	exportCommand.Flags().IntVar(&exportCount, "count", 0, "Plan multiplier per selected roster entry; raise it when very large material stacks come back truncated")
	exportCommand.Flags().DurationVar(&exportTimeout, "timeout", 0, "HTTP timeout per calculator request")
	exportCommand.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// Flags override environment values only when explicitly set; the
	// credential itself is never accepted as a flag.
	if cmd.Flags().Changed("out") {
		cfg.OutPath = exportOut
	}
	if cmd.Flags().Changed("region") {
		cfg.Region = exportRegion
	}
	if cmd.Flags().Changed("count") {
		cfg.Count = exportCount
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = exportTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = exportVerbose
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.Run(context.Background(), pipeline.Options{Config: cfg})
}
