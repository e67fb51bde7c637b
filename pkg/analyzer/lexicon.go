package analyzer

// Lexicon holds the fixed word lists the heuristics run against. All entries
// are lowercase. The default lexicon targets Portuguese with common English
// terms mixed in, matching the audience the engine was built for.
type Lexicon struct {
	Positive  []string
	Negative  []string
	Stopwords []string
	// Topics maps a topic bucket to the words that signal it.
	Topics []Bucket
	// Cliches are phrases that lower originality when present.
	Cliches []string
	// Platforms lists each platform with its base fit and indicator words.
	Platforms []PlatformProfile
}

// Bucket is a named group of indicator words.
type Bucket struct {
	Name  string
	Words []string
}

// PlatformProfile describes how text is scored against one platform.
type PlatformProfile struct {
	Name       string
	Base       float64
	Indicators []string
}

// DefaultLexicon returns the built-in word lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"incrível", "ótimo", "ótima", "excelente", "bom", "boa", "melhor", "fantástico",
			"perfeito", "sucesso", "feliz", "fácil", "amazing", "great", "excellent", "love", "best",
		},
		Negative: []string{
			"ruim", "péssimo", "terrível", "pior", "problema", "difícil", "fracasso", "erro",
			"triste", "bad", "terrible", "hate", "worst", "fail",
		},
		Stopwords: []string{
			"para", "como", "mais", "esse", "essa", "este", "esta", "isso", "isto", "pelo",
			"pela", "pelos", "pelas", "sobre", "quando", "onde", "porque", "muito", "muita",
			"também", "seus", "suas", "todo", "toda", "todos", "todas", "entre", "depois",
			"antes", "ainda", "mesmo", "aqui", "cada", "qual", "quais", "você", "vocês",
			"the", "and", "with", "from", "this", "that", "your", "have", "will", "what",
			"about", "into", "they", "them", "then", "than", "were", "been",
		},
		Topics: []Bucket{
			{Name: "tecnologia", Words: []string{"tecnologia", "programação", "software", "python", "código", "javascript", "inteligência", "aplicativo", "dados"}},
			{Name: "educação", Words: []string{"tutorial", "curso", "aprender", "aula", "iniciantes", "guia", "dicas", "estudo"}},
			{Name: "entretenimento", Words: []string{"filme", "música", "jogo", "série", "diversão", "humor", "games"}},
			{Name: "negócios", Words: []string{"negócio", "negócios", "empreendedorismo", "marketing", "vendas", "dinheiro", "investimento", "empresa"}},
			{Name: "saúde", Words: []string{"saúde", "exercício", "treino", "dieta", "bem-estar", "fitness", "sono"}},
		},
		Cliches: []string{
			"neste vídeo", "não perca", "clique aqui", "o melhor de todos", "você não vai acreditar",
			"se inscreva", "deixe seu like", "in this video", "don't miss", "click here",
		},
		Platforms: []PlatformProfile{
			{Name: "youtube", Base: 0.7, Indicators: []string{"tutorial", "vídeo", "review", "vlog", "aprenda", "guia"}},
			{Name: "instagram", Base: 0.6, Indicators: []string{"foto", "visual", "estética", "reels", "stories", "inspiração"}},
			{Name: "tiktok", Base: 0.8, Indicators: []string{"trend", "desafio", "rápido", "viral", "dança", "humor"}},
			{Name: "linkedin", Base: 0.5, Indicators: []string{"carreira", "profissional", "negócios", "liderança", "mercado", "empresa"}},
		},
	}
}

// engagementPatterns are matched against the lowercased text; each match adds
// a fixed bonus. Word boundaries are written with \p{L} because RE2's \b is
// ASCII-only and would miss accented words.
var engagementPatterns = []string{
	`\?`,
	`!`,
	`(^|[^\p{L}])(como|por que|porque|quando|onde|qual|quais|quem|what|how|why|when|where|which)([^\p{L}]|$)`,
	`(^|[^\p{L}])(segredo|segredos|descubra|surpreendente|incrível|revelado|curiosidade|secret|discover|surprising)([^\p{L}]|$)`,
	`(^|[^\p{L}])(você|vocês|seu|sua|seus|suas|you|your)([^\p{L}]|$)`,
}
