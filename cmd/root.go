// Package cmd wires the tabula command line interface: flag parsing, config
// merging, data loading and table rendering.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tabula/internal/config"
	"github.com/oakwood-commons/tabula/internal/filter"
	"github.com/oakwood-commons/tabula/internal/loader"
	"github.com/oakwood-commons/tabula/pkg/logger"
	"github.com/oakwood-commons/tabula/pkg/settings"
	"github.com/oakwood-commons/tabula/pkg/table"
)

var (
	inputFormat    string
	outputWidth    int
	arrangement    string
	presetName     string
	roundCorners   bool
	noColor        bool
	filterExpr     string
	maxHeight      int
	paddingSpec    string
	alignSpecs     []string
	hideColumns    []int
	constraintSpec []string
	noHeader       bool
	configFile     string
	logLevel       string

	rootCtx = context.Background()
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Render structured data as a text table",
	Long: `tabula reads JSON, YAML, TOML, NDJSON or CSV data from a file or
standard input and renders it as a table, sized to the terminal.

Columns can be constrained, hidden, aligned and filtered; the frame style
is chosen with --preset.`,
	Example: `
  tabula servers.json
  tabula servers.yaml --preset utf8 --round-corners
  cat records.ndjson | tabula --filter '_.status == "active"'
  tabula wide.csv --width 100 --constraint '0:<=20' --hide 3`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lgr := logger.Get(levelFromName(logLevel))
		lgr = logger.WithValues(lgr,
			logger.RootCommandKey, settings.CliBinaryName,
			logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		run, err := buildRunSettings(cmd, args)
		if err != nil {
			return err
		}

		ds, err := loadDataset(run)
		if err != nil {
			return err
		}

		if filterExpr != "" {
			if err := applyFilter(ds, filterExpr); err != nil {
				return err
			}
		}

		tbl, err := buildTable(cmd, ds, run)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
		return nil
	},
}

// buildRunSettings merges defaults, the config file and flags into the
// settings for this invocation. Flags that the user set explicitly always
// win over config file values.
func buildRunSettings(cmd *cobra.Command, args []string) (*settings.Run, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	applyConfigDefaults(cmd, cfg)

	run := settings.NewCliParams()
	run.MinLogLevel = levelFromName(logLevel)
	run.NoColor = noColor
	run.InputSettings.Format = inputFormat
	if len(args) == 1 {
		run.InputSettings.FromStdin = false
		run.InputSettings.Path = args[0]
	}
	return run, nil
}

// applyConfigDefaults overwrites flag variables with config file values for
// flags the user did not pass on the command line.
func applyConfigDefaults(cmd *cobra.Command, cfg config.File) {
	flags := cmd.Flags()
	if !flags.Changed("preset") && cfg.Render.Preset != nil {
		presetName = *cfg.Render.Preset
	}
	if !flags.Changed("arrangement") && cfg.Render.Arrangement != nil {
		arrangement = *cfg.Render.Arrangement
	}
	if !flags.Changed("width") && cfg.Render.Width != nil {
		outputWidth = *cfg.Render.Width
	}
	if !flags.Changed("max-height") && cfg.Render.MaxHeight != nil {
		maxHeight = *cfg.Render.MaxHeight
	}
	if !flags.Changed("padding") && cfg.Render.PaddingLeft != nil && cfg.Render.PaddingRight != nil {
		paddingSpec = fmt.Sprintf("%d,%d", *cfg.Render.PaddingLeft, *cfg.Render.PaddingRight)
	}
	if !flags.Changed("round-corners") && cfg.Render.RoundCorners != nil {
		roundCorners = *cfg.Render.RoundCorners
	}
	if !flags.Changed("no-color") && cfg.Render.NoColor != nil {
		noColor = *cfg.Render.NoColor
	}
	if !flags.Changed("log-level") && cfg.Log.Level != nil {
		logLevel = *cfg.Log.Level
	}
}

func loadDataset(run *settings.Run) (*loader.Dataset, error) {
	if run.InputSettings.FromStdin {
		return loader.LoadReader(os.Stdin, run.InputSettings.Format)
	}
	return loader.LoadFile(run.InputSettings.Path, run.InputSettings.Format)
}

func applyFilter(ds *loader.Dataset, expr string) error {
	ev, err := filter.NewEvaluator(expr)
	if err != nil {
		return err
	}
	keep, err := ev.Apply(ds.Documents())
	if err != nil {
		return err
	}
	ds.Filter(keep)
	return nil
}

// buildTable constructs and configures the table from the dataset and the
// effective render options.
func buildTable(cmd *cobra.Command, ds *loader.Dataset, run *settings.Run) (*table.Table, error) {
	tbl := table.New()
	tbl.SetLogger(*logger.FromContext(rootCtx))

	preset, err := presetByName(presetName)
	if err != nil {
		return nil, err
	}
	tbl.LoadPreset(preset)
	if roundCorners {
		tbl.ApplyModifier(table.UTF8RoundCorners)
	}

	mode, err := arrangementByName(arrangement)
	if err != nil {
		return nil, err
	}
	tbl.SetArrangement(mode)

	if outputWidth > 0 {
		tbl.SetWidth(outputWidth)
	}
	if run.NoColor {
		tbl.DisableStyling()
	}

	if !noHeader && len(ds.Headers) > 0 {
		headerCells := make([]any, len(ds.Headers))
		for i, h := range ds.Headers {
			headerCells[i] = h
		}
		tbl.SetHeader(headerCells...)
	}

	for _, row := range ds.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = loader.FormatCell(v)
		}
		r := tbl.AddRow(cells...)
		if maxHeight > 0 {
			r.SetMaxHeight(maxHeight)
		}
	}

	if err := applyColumnFlags(tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}

// applyColumnFlags applies --padding, --align, --hide and --constraint to
// the table's columns. Column indexes past the table are an error so typos
// fail loudly instead of silently doing nothing.
func applyColumnFlags(tbl *table.Table) error {
	if paddingSpec != "" {
		left, right, err := parsePadding(paddingSpec)
		if err != nil {
			return err
		}
		for _, col := range tbl.Columns() {
			col.SetPadding(left, right)
		}
	}

	for _, spec := range alignSpecs {
		index, align, err := parseAlignSpec(spec)
		if err != nil {
			return err
		}
		col, err := tbl.ColumnByIndex(index)
		if err != nil {
			return fmt.Errorf("--align %s: %w", spec, err)
		}
		col.SetAlignment(align)
	}

	for _, index := range hideColumns {
		col, err := tbl.ColumnByIndex(index)
		if err != nil {
			return fmt.Errorf("--hide %d: %w", index, err)
		}
		col.SetConstraint(table.NewHidden())
	}

	for _, spec := range constraintSpec {
		index, constraint, err := parseConstraintSpec(spec)
		if err != nil {
			return err
		}
		col, err := tbl.ColumnByIndex(index)
		if err != nil {
			return fmt.Errorf("--constraint %s: %w", spec, err)
		}
		col.SetConstraint(constraint)
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&inputFormat, "format", "f", "", "input format: json|yaml|toml|csv|ndjson (default: detect)")
	rootCmd.Flags().IntVarP(&outputWidth, "width", "w", 0, "table width in columns (default: terminal width)")
	rootCmd.Flags().StringVar(&arrangement, "arrangement", "dynamic", "column sizing: disabled|dynamic|full-width")
	rootCmd.Flags().StringVar(&presetName, "preset", "ascii", "frame preset: ascii|ascii-no-borders|ascii-borders-only|ascii-horizontal|utf8|utf8-borders-only|nothing")
	rootCmd.Flags().BoolVar(&roundCorners, "round-corners", false, "round the corners of UTF8 frames")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().StringVar(&filterExpr, "filter", "", "CEL row predicate using '_' as the row, e.g. '_.status == \"active\"'")
	rootCmd.Flags().IntVar(&maxHeight, "max-height", 0, "maximum lines per row (0 = unlimited)")
	rootCmd.Flags().StringVar(&paddingSpec, "padding", "", "cell padding as LEFT,RIGHT or a single number for both")
	rootCmd.Flags().StringArrayVar(&alignSpecs, "align", nil, "column alignment as INDEX:left|center|right (repeatable)")
	rootCmd.Flags().IntSliceVar(&hideColumns, "hide", nil, "column index to hide (repeatable)")
	rootCmd.Flags().StringArrayVar(&constraintSpec, "constraint", nil, "column width constraint as INDEX:SPEC where SPEC is N, N%, content, >=N, <=N or >=N<=M (repeatable)")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "do not render a header row")
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file with render defaults")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
