package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ballotviz/ballotviz/pkg/classify"
	"github.com/ballotviz/ballotviz/pkg/pipeline"
)

// classifyCommand creates the classify command.
func (c *CLI) classifyCommand() *cobra.Command {
	var (
		dir     string
		classes int
	)

	cmd := &cobra.Command{
		Use:   "classify <dataset>",
		Short: "Compute natural-breaks classes for a dataset's vote counts",
		Long: `Classify the vote counts of a tabular dataset into natural-breaks
classes using the Jenks optimization method. The printed break values
are upper class bounds; they can seed choropleth color scales for grid
maps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClassify(args[0], dir, classes)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "datasets", "Directory containing dataset files")
	cmd.Flags().IntVar(&classes, "classes", 5, "Number of classes")

	return cmd
}

func (c *CLI) runClassify(dataset, dir string, classes int) error {
	prog := newProgress(c.Logger)
	opts := pipeline.Options{
		Dir:     dir,
		Dataset: dataset,
		VizType: pipeline.VizTypeParliament,
	}
	ds, _, err := pipeline.Load(opts)
	if err != nil {
		return err
	}

	values := make([]float64, 0, len(ds.Records))
	for _, rec := range ds.Records {
		values = append(values, float64(rec.VoteCount))
	}

	breaks, err := classify.JenksBreaks(values, classes)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("classified %d vote counts into %d classes", len(values), len(breaks)))
	printSuccess("Classified %s", dataset)
	printKeyValue("Median", fmt.Sprintf("%.0f", classify.Median(values)))
	printKeyValue("P90", fmt.Sprintf("%.0f", classify.Quantile(values, 0.9)))

	bounds := make([]string, len(breaks))
	for i, b := range breaks {
		bounds[i] = fmt.Sprintf("%.0f", b)
	}
	printKeyValue("Breaks", strings.Join(bounds, ", "))
	return nil
}
