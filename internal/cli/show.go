package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ppiankov/typechart/internal/classify"
	"github.com/ppiankov/typechart/internal/model"
	"github.com/ppiankov/typechart/internal/pipeline"
	"github.com/ppiankov/typechart/internal/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// showCmd prints the 16 buckets of one type's chart
var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Print one type's matchup buckets",
	Long: `Show prints every non-empty (from, to) bucket for a type, where "from" is
how hard the listed types hit it and "to" is how hard it hits them.

Example:
  typechart show fire
  typechart show fire --bucket SR
  typechart show fire --against water
  typechart show DRAGON --table my-table.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// classifyCmd classifies raw multipliers
var classifyCmd = &cobra.Command{
	Use:   "classify <multiplier>...",
	Short: "Classify damage multipliers",
	Long: `Classify buckets each multiplier into immune, resist, neutral or super.
Values of 1.7 and above are outside the domain and fail.

Example:
  typechart classify 1.6 0.625 0.390625`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

var (
	showBucket  string
	showAgainst string
)

func init() {
	showCmd.Flags().StringVar(&showBucket, "bucket", "", "print only this bucket, e.g. SR (from super, to resist)")
	showCmd.Flags().StringVar(&showAgainst, "against", "", "also print the raw multipliers against this type")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(classifyCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := model.ParseType(args[0])
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(model.TypeNames(), ", "))
	}

	only := ""
	if showBucket != "" {
		from, to, err := parseBucketKey(showBucket)
		if err != nil {
			return err
		}
		only = model.BucketKey(from, to)
	}

	var other model.Type = -1
	if showAgainst != "" {
		if other, err = model.ParseType(showAgainst); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)
	tbl, err := p.LoadTable()
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	report, err := p.Build(tbl)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	c := report.Chart(t)
	if c == nil {
		return fmt.Errorf("no chart for %s in table %s", t, report.Table)
	}

	w := cmd.OutOrStdout()
	printChart(w, c, only)
	if other >= 0 {
		return printMatchup(w, tbl, t, other)
	}
	return nil
}

// parseBucketKey decodes a two-letter bucket key such as "SR"
func parseBucketKey(key string) (from, to model.Symbol, err error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if len(key) != 2 {
		return 0, 0, fmt.Errorf("bucket key %q: want two letters from I, R, N, S", key)
	}
	if from, err = model.ParseSymbol(key[:1]); err != nil {
		return 0, 0, fmt.Errorf("bucket key %q: %w", key, err)
	}
	if to, err = model.ParseSymbol(key[1:]); err != nil {
		return 0, 0, fmt.Errorf("bucket key %q: %w", key, err)
	}
	return from, to, nil
}

// printChart prints every non-empty bucket. A non-empty only restricts the
// output to that bucket key.
func printChart(w io.Writer, c *model.MatchupChart, only string) {
	fmt.Fprintf(w, "%s (%s)\n", c.Type.Label(), c.Type.Abbr())
	for _, from := range model.AllSymbols() {
		for _, to := range model.AllSymbols() {
			bucket := c.Bucket(from, to)
			if len(bucket) == 0 {
				continue
			}
			if only != "" && model.BucketKey(from, to) != only {
				continue
			}
			names := lo.Map(bucket, func(t model.Type, _ int) string { return t.Label() })
			fmt.Fprintf(w, "  %s  from %-7s to %-7s  %s\n",
				model.BucketKey(from, to), from, to, strings.Join(names, ", "))
		}
	}
}

func printMatchup(w io.Writer, tbl *table.Effectiveness, a, b model.Type) error {
	pairs := [][2]model.Type{{a, b}, {b, a}}
	if a == b {
		pairs = pairs[:1]
	}
	for _, pair := range pairs {
		m, err := tbl.Multiplier(pair[0], pair[1])
		if err != nil {
			return err
		}
		s, err := classify.Classify(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s -> %s = %v (%s)\n", pair[0].Label(), pair[1].Label(), m, s)
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		s, err := classify.Classify(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, s)
	}
	return nil
}
