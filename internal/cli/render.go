package cli

import (
	"fmt"

	"github.com/ppiankov/typechart/internal/model"
	"github.com/ppiankov/typechart/internal/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var noCache bool

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Classify the effectiveness table and render every matchup chart",
	Long: `Render builds one matchup chart per type and writes them as a page:
- Classify every multiplier as immune, resisted, neutral or super effective
- Partition all types by (incoming, outgoing) class for each type
- Write HTML tables, Markdown tables or JSON

Example:
  typechart render > index.html
  typechart render --format md --out charts.md
  typechart render --format json --table my-table.yaml`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	defaults := model.DefaultConfig().Output

	renderCmd.Flags().StringP("format", "f", defaults.Format, "output format (html, json, md)")
	renderCmd.Flags().StringP("out", "o", "", "output path (default: stdout)")
	renderCmd.Flags().String("title", defaults.Title, "page title")
	renderCmd.Flags().String("stylesheet", defaults.Stylesheet, "HTML stylesheet href")
	renderCmd.Flags().Int("collapse-neutral", defaults.CollapseNeutral, "show the neutral/neutral cell as a count at this many types (0 never)")
	renderCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable chart memoization")

	_ = viper.BindPFlag("output.format", renderCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.path", renderCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("output.title", renderCmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("output.stylesheet", renderCmd.Flags().Lookup("stylesheet"))
	_ = viper.BindPFlag("output.collapse_neutral", renderCmd.Flags().Lookup("collapse-neutral"))
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	log.Debug().
		Str("format", cfg.Output.Format).
		Str("table", tableLabel(cfg.Table)).
		Bool("cache", cfg.Cache.Enabled).
		Msg("rendering")

	p := pipeline.NewPipeline(cfg)

	report, err := p.Run()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	log.Debug().Int("charts", len(report.Charts)).Str("table", report.Table).Msg("classified table")

	if err := p.RenderReport(report); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func tableLabel(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
