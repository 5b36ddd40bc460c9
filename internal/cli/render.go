package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ballotviz/ballotviz/pkg/config"
	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/pipeline"
)

// renderFlags holds all flags for the render command.
type renderFlags struct {
	dir        string
	output     string
	vizType    string
	formats    string
	style      string
	legend     bool
	arrows     bool
	configPath string
	noCache    bool
	refresh    bool

	width       float64
	height      float64
	padding     float64
	rowCount    int
	innerRadius float64
	outerRadius float64
	areaDivisor float64
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a dataset as a visualization",
		Long: `Render an electoral dataset as a visualization.

The dataset name is the file stem of a CSV (tabular results) or GeoJSON
(geographic grid) file in the datasets directory. When no dataset is
given, an interactive picker lists the available files.

Examples:
  ballotviz render 2024-legislative
  ballotviz render 2024-legislative --type treemap --format svg,json
  ballotviz render districts --type gridmap --arrows -o out/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "datasets", "Directory containing dataset files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".", "Output directory for rendered files")
	cmd.Flags().StringVarP(&flags.vizType, "type", "t", pipeline.DefaultVizType, "Visualization type (parliament, gridmap, treemap, bars)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", pipeline.FormatSVG, "Output formats, comma-separated (svg, json)")
	cmd.Flags().StringVar(&flags.style, "style", pipeline.DefaultStyle, "Visual style")
	cmd.Flags().BoolVar(&flags.legend, "legend", false, "Include a legend (parliament)")
	cmd.Flags().BoolVar(&flags.arrows, "arrows", false, "Draw flow arrows (gridmap)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a TOML config file")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "Disable the render cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "Re-parse the dataset even when cached")

	cmd.Flags().Float64Var(&flags.width, "width", 0, "Viewport width in pixels")
	cmd.Flags().Float64Var(&flags.height, "height", 0, "Viewport height in pixels")
	cmd.Flags().Float64Var(&flags.padding, "padding", -1, "Viewport padding in pixels")
	cmd.Flags().IntVar(&flags.rowCount, "rows", 0, "Seat rows in the parliament arc")
	cmd.Flags().Float64Var(&flags.innerRadius, "inner-radius", 0, "Inner arc radius")
	cmd.Flags().Float64Var(&flags.outerRadius, "outer-radius", 0, "Outer arc radius")
	cmd.Flags().Float64Var(&flags.areaDivisor, "area-divisor", 0, "Seat area divisor (parliament)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	ctx = withLogger(ctx, c.Logger)

	dataset := ""
	if len(args) > 0 {
		dataset = args[0]
	} else {
		dataset, err = c.pickDataset(ctx, flags.dir)
		if err != nil {
			return err
		}
		if dataset == "" {
			printInfo("No dataset selected")
			return nil
		}
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts := pipeline.Options{
		Dir:     flags.dir,
		Dataset: dataset,
		Refresh: flags.refresh,
		VizType: flags.vizType,
		Formats: parseFormats(flags.formats),
		Style:   flags.style,
		Legend:  flags.legend,
		Arrows:  flags.arrows,
		Colors:  cfg.Parties,
		Logger:  c.Logger,

		Width:       cfg.Viewport.Width,
		Height:      cfg.Viewport.Height,
		Padding:     cfg.Viewport.Padding,
		RowCount:    cfg.Layout.RowCount,
		InnerRadius: cfg.Layout.InnerRadius,
		OuterRadius: cfg.Layout.OuterRadius,
		AreaDivisor: cfg.Layout.AreaDivisor,
	}

	// Explicit flags win over config file values.
	if flags.width > 0 {
		opts.Width = flags.width
	}
	if flags.height > 0 {
		opts.Height = flags.height
	}
	if flags.padding >= 0 {
		opts.Padding = flags.padding
	}
	if flags.rowCount > 0 {
		opts.RowCount = flags.rowCount
	}
	if flags.innerRadius > 0 {
		opts.InnerRadius = flags.innerRadius
	}
	if flags.outerRadius > 0 {
		opts.OuterRadius = flags.outerRadius
	}
	if flags.areaDivisor > 0 {
		opts.AreaDivisor = flags.areaDivisor
	}

	var spinner *Spinner
	if c.Logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", dataset))
		spinner.Start()
	}

	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
		if spinner.Cancelled() {
			return ctx.Err()
		}
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(flags.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	printSuccess("Rendered %s (%s)", dataset, opts.VizType)
	partyCount := 0
	if result.Dataset.Kind == pipeline.DatasetTabular {
		order, _ := election.ByParty(result.Dataset.Records)
		partyCount = len(order)
	}
	printStats(result.Stats.RecordCount, partyCount, result.CacheInfo.RenderHit)

	for _, format := range opts.Formats {
		path := filepath.Join(flags.output, dataset+"."+format)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printNewline()
	printNextStep("Serve over HTTP", fmt.Sprintf("ballotviz serve --datasets %s", flags.dir))
	return nil
}

// pickDataset runs the interactive dataset picker and returns the chosen
// dataset name, or "" when the user quit without selecting.
func (c *CLI) pickDataset(ctx context.Context, dir string) (string, error) {
	datasets, err := ListDatasets(dir)
	if err != nil {
		return "", err
	}
	loggerFromContext(ctx).Debug("scanned datasets", "dir", dir, "count", len(datasets))
	if len(datasets) == 0 {
		printWarning("No datasets found in %s", dir)
		return "", nil
	}

	model := NewDatasetListModel(datasets)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("dataset picker: %w", err)
	}
	m, ok := final.(DatasetListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Name, nil
}

// loadConfig loads the TOML config at path, or the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
