package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mmrzaf/fakesheet/internal/app"
	"github.com/mmrzaf/fakesheet/internal/config"
	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/infra/repos/configs"
	"github.com/mmrzaf/fakesheet/internal/logging"
	"github.com/mmrzaf/fakesheet/internal/registry"
	"github.com/mmrzaf/fakesheet/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configsDir string
	logLevel   string
	sheetName  string
	maxRows    int
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "fakesheet",
		Short: "Fake spreadsheet data generator",
	}

	rootCmd.PersistentFlags().StringVar(&configsDir, "configs-dir", cfg.ConfigsDir, "Saved configurations directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet-name", cfg.SheetName, "Worksheet name")
	rootCmd.PersistentFlags().IntVar(&maxRows, "max-rows", cfg.MaxRows, "Maximum rows per document")

	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect generation rules",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List generation rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := registry.DefaultRuleRegistry().Catalog()

			if format == "json" {
				data, _ := json.MarshalIndent(catalog, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tSUPPORTED")
			for _, r := range catalog {
				fmt.Fprintf(w, "%s\t%s\t%t\n", r.Key, r.Label, r.Supported)
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	cmd.AddCommand(listCmd)
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage saved configurations",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := configs.NewFileRepository(configsDir)
			list, err := repo.List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLUMNS")
			for _, c := range list {
				fmt.Fprintf(w, "%s\t%d\n", c.Name, len(c.Columns))
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := configs.NewFileRepository(configsDir)
			saved, err := repo.Get(args[0])
			if err != nil {
				return err
			}

			data, _ := yaml.Marshal(saved)
			fmt.Println(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <name|path>",
		Short: "Validate a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := loadConfig(configs.NewFileRepository(configsDir), args[0])
			if err != nil {
				return err
			}

			validator := validation.NewValidator(registry.DefaultRuleRegistry(), maxRows)
			if err := validator.ValidateConfig(saved); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Config '%s' is valid\n", saved.Name)
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		configName string
		configPath string
		count      int
		outPath    string
		format     string
		seed       int64
		hasSeed    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a document from a saved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)
			defer func() { _ = logger.Sync() }()

			repo := configs.NewFileRepository(configsDir)

			var saved *domain.SavedConfig
			var err error
			switch {
			case configPath != "":
				saved, err = repo.GetByPath(configPath)
			case configName != "":
				saved, err = repo.Get(configName)
			default:
				return fmt.Errorf("either --config or --config-path required")
			}
			if err != nil {
				return err
			}

			rules := registry.DefaultRuleRegistry()
			svc := app.NewExportService(rules, logger.WithComponent("export"), sheetName, maxRows)
			if err := svc.Validator().ValidateConfig(saved); err != nil {
				return err
			}

			req := &domain.GenerationRequest{
				Columns:    saved.Columns,
				Count:      count,
				ConfigName: saved.Name,
				Format:     format,
			}
			if hasSeed {
				req.Seed = &seed
			}

			res, err := svc.Export(req)
			if err != nil {
				return err
			}

			target := outPath
			if target == "" {
				target = res.Filename
			} else if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
				target = filepath.Join(target, res.Filename)
			}
			if err := os.WriteFile(target, res.Data, 0o644); err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d rows, %d columns, seed %d)\n", target, res.Rows, res.Columns, res.Seed)
			return nil
		},
	}

	cmd.Flags().StringVar(&configName, "config", "", "Saved configuration name")
	cmd.Flags().StringVar(&configPath, "config-path", "", "Saved configuration file path")
	cmd.Flags().IntVarP(&count, "count", "n", 100, "Number of data rows")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file or directory (default: generated filename)")
	cmd.Flags().StringVar(&format, "format", domain.FormatXLSX, "Output format (xlsx|sqlite)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}
	return cmd
}

func loadConfig(repo *configs.FileRepository, ref string) (*domain.SavedConfig, error) {
	if strings.Contains(ref, "/") || strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") || strings.HasSuffix(ref, ".json") {
		return repo.GetByPath(ref)
	}
	return repo.Get(ref)
}
