package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pable/splitstats/internal/config"
	"github.com/pable/splitstats/internal/logging"
)

var (
	configPath  string
	recordsPath string
	combosPath  string
	outputPath  string
	minPA       int
	logLevel    string
	logFormat   string

	cfg *config.Config

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "splitstats",
	Short: "Batting splits report tool",
	Long: `Compute AVG, OBP, SLG and OPS for hitters, pitchers and teams split by
handedness matchup (vs RHP/LHP/RHH/LHH) from plate-appearance data.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&recordsPath, "records", config.DefaultInputRecordsPath, "raw plate-appearance CSV")
	pf.StringVar(&combosPath, "combinations", config.DefaultCombinationsPath, "combinations list (Stat,Subject,Split)")
	pf.StringVar(&outputPath, "out", config.DefaultOutputPath, "report CSV to write")
	pf.IntVar(&minPA, "min-pa", 25, "minimum plate appearances for a subject to be reported")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(combosCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(summaryCmd)
}

// loadConfig layers defaults, the --config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("records") {
		c.InputRecordsPath = recordsPath
	}
	if flags.Changed("combinations") {
		c.CombinationsPath = combosPath
	}
	if flags.Changed("out") {
		c.OutputPath = outputPath
	}
	if flags.Changed("min-pa") {
		c.MinPA = minPA
	}
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		c.Log.Format = logFormat
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = c
	logger = logging.New(c.Log, os.Stderr)
	return nil
}
