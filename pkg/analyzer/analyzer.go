// Package analyzer turns raw text into a models.ContentAnalysis using fixed,
// rule-based heuristics. Analysis is pure: the same text always produces the
// same result and no state is kept between calls.
package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"ideaforge/internal/models"
)

// Step scores are counted in tenths and divided once, so thresholds such as
// engagement < 0.7 compare against exactly the same float64 as the literal.
const (
	maxKeywords          = 10
	minKeywordRunes      = 4
	engagementBaseTenths = 5
	originalityPenalty   = 2
	originalityFloor     = 3
)

// ContentAnalyzer is the contract the strategies depend on.
type ContentAnalyzer interface {
	Analyze(text string) models.ContentAnalysis
}

// Analyzer implements ContentAnalyzer over a Lexicon.
type Analyzer struct {
	positive   map[string]struct{}
	negative   map[string]struct{}
	stopwords  map[string]struct{}
	topics     []Bucket
	cliches    []string
	platforms  []PlatformProfile
	engagement []*regexp.Regexp
}

var _ ContentAnalyzer = (*Analyzer)(nil)

// New returns an Analyzer using DefaultLexicon.
func New() *Analyzer {
	return NewWithLexicon(DefaultLexicon())
}

// NewWithLexicon returns an Analyzer over custom word lists.
func NewWithLexicon(lex Lexicon) *Analyzer {
	a := &Analyzer{
		positive:  toSet(lex.Positive),
		negative:  toSet(lex.Negative),
		stopwords: toSet(lex.Stopwords),
		topics:    lex.Topics,
		cliches:   lex.Cliches,
		platforms: lex.Platforms,
	}
	for _, p := range engagementPatterns {
		a.engagement = append(a.engagement, regexp.MustCompile(p))
	}
	return a
}

// Analyze never fails; empty text yields neutral sentiment, no keywords and
// readability 1.
func (a *Analyzer) Analyze(text string) models.ContentAnalysis {
	lower := strings.ToLower(text)
	tokens := Tokenize(lower)
	keywords := a.keywords(tokens)

	return models.ContentAnalysis{
		Sentiment:           a.sentiment(tokens),
		Keywords:            keywords,
		Topics:              a.topicsFor(keywords),
		Readability:         readability(tokens),
		EngagementPotential: a.engagementPotential(lower),
		Originality:         a.originality(lower),
		PlatformFit:         a.platformFit(tokens),
	}
}

// Tokenize splits lowercased text on whitespace and trims leading and trailing
// punctuation from each token. Tokens that are only punctuation are dropped.
func Tokenize(lower string) []string {
	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func (a *Analyzer) sentiment(tokens []string) models.Sentiment {
	pos, neg := 0, 0
	for _, t := range tokens {
		if _, ok := a.positive[t]; ok {
			pos++
		}
		if _, ok := a.negative[t]; ok {
			neg++
		}
	}
	switch {
	case pos > neg:
		return models.SentimentPositive
	case neg > pos:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func (a *Analyzer) keywords(tokens []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < minKeywordRunes {
			continue
		}
		if _, stop := a.stopwords[t]; stop {
			continue
		}
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	// order is first-seen, so a stable sort keeps that order among ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

func (a *Analyzer) topicsFor(keywords []string) []string {
	kw := toSet(keywords)
	var topics []string
	for _, b := range a.topics {
		for _, w := range b.Words {
			if _, ok := kw[w]; ok {
				topics = append(topics, b.Name)
				break
			}
		}
	}
	return topics
}

func readability(tokens []string) float64 {
	if len(tokens) == 0 {
		return 1
	}
	total := 0
	for _, t := range tokens {
		total += utf8.RuneCountInString(t)
	}
	avg := float64(total) / float64(len(tokens))
	return models.Clamp01(1 - (avg-5)/10)
}

func (a *Analyzer) engagementPotential(lower string) float64 {
	tenths := engagementBaseTenths
	for _, re := range a.engagement {
		if re.MatchString(lower) {
			tenths++
		}
	}
	return models.Clamp01(float64(tenths) / 10)
}

func (a *Analyzer) originality(lower string) float64 {
	tenths := 10
	for _, c := range a.cliches {
		if strings.Contains(lower, c) {
			tenths -= originalityPenalty
		}
	}
	if tenths < originalityFloor {
		tenths = originalityFloor
	}
	return float64(tenths) / 10
}

func (a *Analyzer) platformFit(tokens []string) map[string]float64 {
	present := toSet(tokens)
	fit := make(map[string]float64, len(a.platforms))
	for _, p := range a.platforms {
		tenths := int(math.Round(p.Base * 10))
		for _, w := range p.Indicators {
			if _, ok := present[w]; ok {
				tenths++
			}
		}
		fit[p.Name] = models.Clamp01(float64(tenths) / 10)
	}
	return fit
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
