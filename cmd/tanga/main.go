package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	"github.com/ulugbek-dev/tanga/pkg/config"
	"github.com/ulugbek-dev/tanga/pkg/models"
	"github.com/ulugbek-dev/tanga/pkg/parser"
	"github.com/ulugbek-dev/tanga/pkg/service"
	"github.com/ulugbek-dev/tanga/pkg/settle"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tanga",
	Short: "Extract transactions from receipts, SMS alerts and bank statements",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <path>",
	Short: "Extract transactions from files or directories into canonical CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}
			if info.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
				continue
			}
			if err := processor.ProcessFile(match); err != nil {
				logger.Warn("failed to process file", "error", err, "file", match)
			}
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Parse one file and dump the extracted transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		txs, err := parser.New(logger).ProcessBytes(data, filepath.Base(args[0]))
		if err != nil {
			return err
		}

		pp.Println(txs)
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Process every input listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		manifest, err := models.ManifestFromFile(args[0])
		if err != nil {
			return err
		}

		return service.NewProcessor(cfg, logger).ProcessManifest(manifest)
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle <balances.yaml>",
	Short: "Compute transfers that settle a set of net balances",
	Long: `Reads a YAML mapping of participant name to signed net balance
(positive = is owed money, negative = owes money) and prints the
transfers that settle the group.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		raw := map[string]float64{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("error parsing balances: %w", err)
		}

		balances := make(map[string]decimal.Decimal, len(raw))
		for name, bal := range raw {
			balances[name] = decimal.NewFromFloat(bal)
		}

		transfers := settle.Simplify(balances)
		if len(transfers) == 0 {
			fmt.Println("all settled")
			return nil
		}
		for _, t := range transfers {
			fmt.Printf("%s -> %s: %s\n", t.From, t.To, t.Amount.StringFixed(2))
		}
		return nil
	},
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "tanga",
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	extractCmd.Flags().StringP("output", "o", "", "Output directory (default: next to each input)")
	batchCmd.Flags().StringP("output", "o", "", "Output directory (default: next to each input)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(settleCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
