// Package templates fills title templates from a content analysis and the
// user's context.
package templates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"ideaforge/internal/models"
)

// Placeholder names understood by the engine.
const (
	Keyword  = "keyword"
	Topic    = "topic"
	Number   = "number"
	Action   = "action"
	Year     = "year"
	Benefit  = "benefit"
	Audience = "audience"
	Problem  = "problem"
	Solution = "solution"
	Method   = "method"
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Template is a title pattern with {placeholder} slots.
type Template struct {
	Pattern      string
	Placeholders []string
}

// NewTemplate parses the placeholders out of pattern.
func NewTemplate(pattern string) Template {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(pattern, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return Template{Pattern: pattern, Placeholders: names}
}

// DefaultTemplates is the fixed title set.
func DefaultTemplates() []Template {
	patterns := []string{
		"{number} Dicas de {keyword} que Você Precisa Conhecer",
		"Como {action} {keyword} em {year}",
		"O Guia Completo de {topic} para {audience}",
		"{keyword}: {benefit} em Poucos Passos",
		"Por que {problem} Não Precisa Ser um Problema: {solution} na Prática",
		"{action} {keyword} com o Método {method}",
		"{number} Erros de {topic} que Todo {audience} Comete",
	}
	out := make([]Template, len(patterns))
	for i, p := range patterns {
		out[i] = NewTemplate(p)
	}
	return out
}

// Filled is a template whose placeholders were all resolved.
type Filled struct {
	Text     string
	Template Template
}

// Specificity is p/(p+1) for p placeholders: more slots filled from the
// user's own text make a more specific title. Always in [0,1).
func (f Filled) Specificity() float64 {
	p := float64(len(f.Template.Placeholders))
	return p / (p + 1)
}

// Engine resolves placeholders and fills templates.
type Engine struct {
	templates []Template
	now       func() time.Time
}

// NewEngine uses DefaultTemplates when templates is empty and time.Now when
// now is nil.
func NewEngine(templates []Template, now func() time.Time) *Engine {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{templates: templates, now: now}
}

// Fill returns every template whose placeholders can all be resolved, in
// template order.
func (e *Engine) Fill(analysis models.ContentAnalysis, uctx models.UserContext) []Filled {
	vars := e.Resolve(analysis, uctx)
	var out []Filled
	for _, t := range e.templates {
		text, ok := apply(t, vars)
		if !ok {
			continue
		}
		out = append(out, Filled{Text: text, Template: t})
	}
	return out
}

// Resolve computes every placeholder value that the analysis and context
// support. Missing keys mean "unresolvable".
func (e *Engine) Resolve(analysis models.ContentAnalysis, uctx models.UserContext) map[string]string {
	vars := map[string]string{
		Year:   strconv.Itoa(e.now().Year()),
		Number: strconv.Itoa(listNumbers[len(analysis.Keywords)%len(listNumbers)]),
	}

	kw := analysis.Keywords
	if len(kw) > 0 {
		vars[Keyword] = titleCase(kw[0])
		vars[Solution] = titleCase(kw[0])
	}
	if len(kw) > 1 {
		vars[Problem] = titleCase(kw[1])
	}
	if len(kw) > 2 {
		vars[Method] = titleCase(kw[2])
	}

	topic := ""
	if len(analysis.Topics) > 0 {
		topic = analysis.Topics[0]
	} else if len(uctx.PreferredCategories) > 0 {
		topic = strings.ToLower(strings.TrimSpace(uctx.PreferredCategories[0]))
	}
	vars[Action] = defaultAction
	if topic != "" {
		vars[Topic] = titleCase(topic)
		if v, ok := actionByTopic[topic]; ok {
			vars[Action] = v
		}
		if v, ok := benefitByTopic[topic]; ok {
			vars[Benefit] = v
		}
		if v, ok := audienceByTopic[topic]; ok {
			vars[Audience] = v
		}
	}
	return vars
}

func apply(t Template, vars map[string]string) (string, bool) {
	pairs := make([]string, 0, 2*len(t.Placeholders))
	for _, name := range t.Placeholders {
		v, ok := vars[name]
		if !ok || v == "" {
			return "", false
		}
		pairs = append(pairs, "{"+name+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(t.Pattern), true
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var listNumbers = []int{3, 5, 7, 10}

const defaultAction = "Dominar"

var actionByTopic = map[string]string{
	"tecnologia":     "Dominar",
	"educação":       "Aprender",
	"entretenimento": "Curtir",
	"negócios":       "Escalar",
	"saúde":          "Melhorar",
}

var benefitByTopic = map[string]string{
	"tecnologia":     "Automatize Tarefas e Ganhe Tempo",
	"educação":       "Aprenda Mais Rápido",
	"entretenimento": "Diversão Garantida",
	"negócios":       "Aumente Suas Vendas",
	"saúde":          "Mais Energia no Dia a Dia",
}

var audienceByTopic = map[string]string{
	"tecnologia":     "Desenvolvedor",
	"educação":       "Iniciante",
	"entretenimento": "Fã",
	"negócios":       "Empreendedor",
	"saúde":          "Atleta de Fim de Semana",
}
