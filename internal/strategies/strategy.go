// Package strategies holds one suggestion generator per suggestion type and a
// registry that dispatches on the type.
package strategies

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ideaforge/internal/models"
	"ideaforge/internal/templates"
	"ideaforge/pkg/analyzer"
	"ideaforge/pkg/categorizer"
)

// Generator produces unranked candidates for one suggestion type. Generators
// must tolerate a sparse context: nil slices are empty, zero behavior is idle.
type Generator interface {
	Type() models.SuggestionType
	Generate(uctx models.UserContext, input string) []models.Suggestion
}

// Registry maps each suggestion type to its generator.
type Registry struct {
	generators map[models.SuggestionType]Generator
}

// NewRegistry registers gens; a later generator replaces an earlier one of the
// same type.
func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{generators: make(map[models.SuggestionType]Generator, len(gens))}
	for _, g := range gens {
		r.Register(g)
	}
	return r
}

// Register adds or replaces the generator for g.Type().
func (r *Registry) Register(g Generator) {
	r.generators[g.Type()] = g
}

// Lookup returns models.ErrUnknownSuggestionType for unregistered types.
func (r *Registry) Lookup(t models.SuggestionType) (Generator, error) {
	g, ok := r.generators[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownSuggestionType, t)
	}
	return g, nil
}

// Deps are the leaves shared by the built-in generators.
type Deps struct {
	Analyzer    analyzer.ContentAnalyzer
	Categorizer categorizer.ContentCategorizer
	Templates   *templates.Engine
	Sentences   analyzer.SentenceSplitter
	Trends      []Trend
	Now         func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Analyzer == nil {
		d.Analyzer = analyzer.New()
	}
	if d.Categorizer == nil {
		d.Categorizer = categorizer.NewKeywordCategorizer(nil)
	}
	if d.Templates == nil {
		d.Templates = templates.NewEngine(nil, d.Now)
	}
	if d.Sentences == nil {
		d.Sentences = analyzer.NewSentenceSplitter()
	}
	if d.Trends == nil {
		d.Trends = DefaultTrends()
	}
	return d
}

// DefaultRegistry wires the five built-in generators over deps, filling any
// missing dependency with its default.
func DefaultRegistry(deps Deps) *Registry {
	deps = deps.withDefaults()
	return NewRegistry(
		NewContentGenerator(deps),
		NewTitleGenerator(deps),
		NewCategoryGenerator(deps),
		NewImprovementGenerator(deps),
		NewNextActionGenerator(deps),
	)
}

// builder stamps every suggestion of one generator with its type and clock.
type builder struct {
	kind models.SuggestionType
	now  func() time.Time
}

func (b builder) build(content string, confidence float64, reasoning string, source models.SuggestionSource, meta models.SuggestionMetadata) models.Suggestion {
	return models.NewSuggestion(b.kind, content, confidence, reasoning, source, meta, b.now())
}

func hasInput(input string) bool {
	return strings.TrimSpace(input) != ""
}

// averageFit is the mean platform fit over the user's platforms, or over every
// scored platform when the user named none.
func averageFit(analysis models.ContentAnalysis, platforms []string) float64 {
	var sum float64
	n := 0
	for _, p := range platforms {
		if v, ok := analysis.PlatformFit[normalize(p)]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		names := make([]string, 0, len(analysis.PlatformFit))
		for name := range analysis.PlatformFit {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sum += analysis.PlatformFit[name]
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(list []string, v string) bool {
	v = normalize(v)
	for _, item := range list {
		if normalize(item) == v {
			return true
		}
	}
	return false
}
