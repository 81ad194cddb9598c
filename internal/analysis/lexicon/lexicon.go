// Package lexicon holds the static word tables used by the analysis engine.
// All tables are read-only after construction and safe to share across
// concurrent analyses. Tables cover English and Russian; adding a language
// means extending these lists without touching scoring logic.
package lexicon

// Lexicon groups every word table the analyzer matches against.
type Lexicon struct {
	StopWords      map[string]struct{}
	PowerWords     []string
	ClickbaitWords []string
	UrgencyWords   []string
	CTAPatterns    map[string][]string
	SocialDomains  map[string]string
	TrendTriggers  map[string][]string
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	return &Lexicon{
		StopWords:      stopWords(),
		PowerWords:     []string{"best", "top", "ultimate", "complete", "лучший", "топ", "полный", "гайд"},
		ClickbaitWords: []string{"shocking", "amazing", "secret", "never", "шок", "срочно", "жесть", "секрет"},
		UrgencyWords:   []string{"now", "today", "urgent", "limited", "сейчас", "сегодня", "срочно"},
		CTAPatterns: map[string][]string{
			"subscribe": {"subscribe", "подпис"},
			"like":      {"like", "лайк", "👍"},
			"comment":   {"comment", "коммент", "напиш"},
			"share":     {"share", "поделись", "расскаж"},
			"bell":      {"bell", "колокол", "🔔"},
			"join":      {"join", "вступ", "присоедин"},
		},
		SocialDomains: map[string]string{
			"instagram": "instagram.com/",
			"telegram":  "t.me/",
			"twitter":   "twitter.com/",
			"facebook":  "facebook.com/",
			"tiktok":    "tiktok.com/@",
			"vk":        "vk.com/",
		},
		TrendTriggers: map[string][]string{
			"ai":         {"ai", "artificial intelligence", "chatgpt", "midjourney", "ии", "искусственный интеллект"},
			"shorts":     {"shorts", "short", "шортс", "короткое видео"},
			"trends":     {"trend", "trending", "viral", "тренд", "вирус"},
			"challenges": {"challenge", "челлендж", "вызов"},
			"reaction":   {"reaction", "reacts", "реакция"},
			"tutorial":   {"tutorial", "how to", "guide", "обучение", "как сделать", "гайд"},
			"review":     {"review", "обзор", "распаковка", "unboxing"},
			"podcast":    {"podcast", "подкаст", "интервью", "interview"},
		},
	}
}

// IsStopWord reports whether the word is a function word in any
// supported language.
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.StopWords[word]
	return ok
}

func stopWords() map[string]struct{} {
	words := []string{
		// English function words
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "up", "out", "off", "over", "under",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"do", "does", "did", "doing", "have", "has", "had", "having",
		"will", "would", "can", "could", "should", "shall", "may", "might", "must",
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their", "this", "that", "these", "those",
		"what", "which", "who", "whom", "where", "when", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
		"not", "no", "nor", "only", "own", "same", "so", "than", "too", "very",
		"just", "now", "then", "here", "there", "about", "into", "through", "during",
		"before", "after", "above", "below", "again", "further", "once", "as", "if",
		"because", "while", "until", "against", "between",
		// Russian function words
		"и", "в", "на", "с", "по", "за", "к", "от", "до", "из", "о", "об",
		"это", "как", "что", "все", "она", "так", "его", "но", "да", "ты",
		"он", "мы", "вы", "они", "я", "же", "бы", "был", "была", "было", "были",
		"для", "не", "ни", "или", "если", "когда", "где", "кто", "чем", "тем",
		"при", "под", "над", "без", "после", "перед", "между", "через",
		"есть", "быть", "уже", "еще", "ещё", "тоже", "также", "вот", "ведь",
		"только", "можно", "нужно", "надо", "очень", "самый", "который", "которая",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
