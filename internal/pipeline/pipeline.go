package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/typechart/internal/cache"
	"github.com/ppiankov/typechart/internal/chart"
	"github.com/ppiankov/typechart/internal/classify"
	"github.com/ppiankov/typechart/internal/model"
	"github.com/ppiankov/typechart/internal/table"
	"github.com/rs/zerolog/log"
)

// Pipeline orchestrates load -> classify -> build -> render
type Pipeline struct {
	cache    cache.Cache // nil when memoization is disabled
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	return &Pipeline{
		cache:    c,
		renderer: NewRenderer(cfg.Output),
		config:   cfg,
	}
}

// LoadTable returns the configured effectiveness table, or the embedded one
func (p *Pipeline) LoadTable() (*table.Effectiveness, error) {
	if p.config.Table == "" {
		log.Debug().Msg("using embedded effectiveness table")
		return table.Default()
	}
	log.Debug().Str("path", p.config.Table).Msg("loading effectiveness table")
	return table.Load(p.config.Table)
}

// Build classifies the table and builds every matchup chart. Any malformed
// entry aborts the whole build; no partial report is returned.
func (p *Pipeline) Build(t *table.Effectiveness) (*model.Report, error) {
	key := cache.Key(t.Digest())
	if p.cache != nil {
		if cached, ok := p.cache.Get(key); ok {
			log.Debug().Str("table", t.Name()).Msg("chart cache hit")
			return p.titled(cached), nil
		}
	}

	types := t.Types()

	// 1. Classify every multiplier
	symbolic, err := classify.BuildSymbolicMatrix(t, types)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", t.Name(), err)
	}

	// 2. Partition each type's matchups
	charts, err := chart.Build(types, t, symbolic)
	if err != nil {
		return nil, fmt.Errorf("build charts: %w", err)
	}

	report := &model.Report{
		Table:    t.Name(),
		Digest:   t.Digest(),
		Types:    types,
		Symbolic: symbolic,
		Charts:   charts,
	}

	log.Debug().
		Str("table", t.Name()).
		Int("types", len(types)).
		Str("digest", t.Digest()[:12]).
		Msg("built matchup charts")

	if p.cache != nil {
		p.cache.Set(key, report, p.config.Cache.TTL)
		log.Debug().Int("cached", p.cache.Len()).Msg("stored matchup charts")
	}

	return p.titled(report), nil
}

// Run loads the configured table and builds its report
func (p *Pipeline) Run() (*model.Report, error) {
	t, err := p.LoadTable()
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	return p.Build(t)
}

// RenderReport writes the report in the configured format to the configured
// path, or to stdout when no path is set
func (p *Pipeline) RenderReport(report *model.Report) (err error) {
	var w io.Writer = os.Stdout

	if path := p.config.Output.Path; path != "" {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()
		w = f
	}

	if err := p.renderer.Render(w, report, p.config.Output.Format); err != nil {
		return fmt.Errorf("render %s: %w", p.config.Output.Format, err)
	}

	if p.config.Output.Path != "" {
		log.Info().Str("format", p.config.Output.Format).Str("path", p.config.Output.Path).Msg("wrote report")
	}
	return nil
}

// titled returns a shallow copy carrying this pipeline's title, so cached
// reports are never mutated
func (p *Pipeline) titled(r *model.Report) *model.Report {
	out := *r
	out.Title = p.config.Output.Title
	return &out
}
