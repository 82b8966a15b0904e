package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"pantry/internal/config"
	"pantry/internal/models"
	"pantry/internal/pantry"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "pantry",
		Short: "Pantry analyzer: shopping-history profiles, missing essentials and restock suggestions",
		Long: `pantry turns a list or history of purchased item names into a categorized
frequency profile, a list of pantry essentials that appear to be missing, and
ranked restocking suggestions.

Examples:
  # Serve the HTTP API
  pantry serve --config configs/config.yaml

  # Analyze a shopping history (JSON array of records or names)
  pantry analyze history.json

  # Analyze a handful of item names without a history file
  pantry analyze --item pasta --item "olive oil"

  # Suggest complements and essentials for what is on hand
  pantry suggest pasta "olive oil"

  # Print an empty inventory template
  pantry template

  # Search the product list with price and brand filters
  pantry search "amul under 60"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to configuration file")

	root.AddCommand(
		newServeCmd(opts),
		newAnalyzeCmd(opts),
		newSuggestCmd(opts),
		newTemplateCmd(opts),
		newSearchCmd(),
	)
	return root
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a shopping history read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(opts)
			if err != nil {
				return err
			}

			if len(items) > 0 {
				if len(args) > 0 {
					return fmt.Errorf("--item cannot be combined with a history file")
				}
				return writeJSON(cmd.OutOrStdout(), analyzer.AnalyzeShoppingPatterns(models.RecordsFromNames(items)))
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open history: %w", err)
				}
				defer f.Close()
				in = f
			}

			var inputs []models.PurchaseRecordInput
			if err := json.NewDecoder(in).Decode(&inputs); err != nil {
				return fmt.Errorf("failed to decode history: %w", err)
			}
			records, err := models.RecordsFromInputs(inputs)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), analyzer.AnalyzeShoppingPatterns(records))
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "purchased item name; repeat instead of passing a history file")
	return cmd
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var smart bool

	cmd := &cobra.Command{
		Use:   "suggest [item...]",
		Short: "Suggest pantry complements and missing essentials for the given items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if smart {
				return writeJSON(cmd.OutOrStdout(), pantry.SmartSuggestions(args))
			}

			analyzer, err := loadAnalyzer(opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), analyzer.PantrySuggestions(args, nil))
		},
	}

	cmd.Flags().BoolVar(&smart, "smart", false, "use shopping-list suggestions (pairings, seasonal, substitutes)")
	return cmd
}

func newTemplateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print an empty pantry inventory template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := loadAnalyzer(opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), analyzer.InventoryTemplate())
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: `Search products, e.g. "milk under 50" or "organic between 50 and 150"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), pantry.Search(strings.Join(args, " ")))
		},
	}
}

func loadAnalyzer(opts *rootOptions) (*pantry.Analyzer, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return pantry.NewAnalyzer(catalog), nil
}

func loadCatalog(cfg *config.Config) (*pantry.Catalog, error) {
	if cfg.Catalog == "" {
		return pantry.DefaultCatalog(), nil
	}
	return pantry.LoadCatalog(cfg.Catalog)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
