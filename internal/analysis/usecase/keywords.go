package usecase

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	topKeywordsFrequency = 10
	topKeywordsWeighted  = 10
	weightedCandidates   = 15
	weightedVocabSize    = 100
	maxKeywords          = 20
	topKeywordsCount     = 5
	minTextLength        = 10
)

var (
	urlRe         = regexp.MustCompile(`http\S+|www\.\S+`)
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// tokenize lowercases the text, strips URLs and punctuation and splits
// on whitespace. Shared by both extraction methods.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = urlRe.ReplaceAllString(text, "")
	text = punctuationRe.ReplaceAllString(text, " ")
	return strings.Fields(text)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

type rankedTerm struct {
	term  string
	count int
	first int
}

// rankByCount orders terms by descending count, ties broken by first
// occurrence in the source text.
func rankByCount(counts map[string]int, firstSeen map[string]int) []rankedTerm {
	ranked := make([]rankedTerm, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, rankedTerm{term: term, count: count, first: firstSeen[term]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})
	return ranked
}

// extractKeywordsFrequency returns the top-N tokens by frequency,
// skipping stop-words, pure digits and tokens of length ≤2.
func (uc *implUseCase) extractKeywordsFrequency(text string, topN int) []string {
	if text == "" {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, word := range tokenize(text) {
		if len([]rune(word)) <= 2 || uc.lex.IsStopWord(word) || isDigits(word) {
			continue
		}
		if _, seen := counts[word]; !seen {
			firstSeen[word] = i
		}
		counts[word]++
	}

	ranked := rankByCount(counts, firstSeen)
	keywords := make([]string, 0, topN)
	for _, t := range ranked {
		if len(keywords) >= topN {
			break
		}
		keywords = append(keywords, t.term)
	}
	return keywords
}

// extractKeywordsWeighted is the term-importance method: it scores
// unigrams, bigrams and trigrams over a bounded vocabulary and returns
// the best-scoring n-grams. With a single document the importance
// ranking reduces to n-gram frequency with deterministic tie-breaks.
func (uc *implUseCase) extractKeywordsWeighted(text string) []string {
	if len(strings.TrimSpace(text)) < minTextLength {
		return nil
	}

	tokens := make([]string, 0, 64)
	for _, word := range tokenize(text) {
		if len([]rune(word)) < 2 || uc.lex.IsStopWord(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	pos := 0
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			if _, seen := counts[gram]; !seen {
				firstSeen[gram] = pos
			}
			counts[gram]++
			pos++
		}
	}

	ranked := rankByCount(counts, firstSeen)
	if len(ranked) > weightedVocabSize {
		ranked = ranked[:weightedVocabSize]
	}

	candidates := ranked
	if len(candidates) > weightedCandidates {
		candidates = candidates[:weightedCandidates]
	}

	keywords := make([]string, 0, topKeywordsWeighted)
	for _, t := range candidates {
		if len(keywords) >= topKeywordsWeighted {
			break
		}
		if len([]rune(t.term)) <= 2 || uc.lex.IsStopWord(t.term) {
			continue
		}
		keywords = append(keywords, t.term)
	}
	return keywords
}

// mergeKeywords unions both method outputs preserving order of first
// appearance, truncated to max.
func mergeKeywords(weighted, frequency []string, max int) []string {
	seen := make(map[string]struct{}, len(weighted)+len(frequency))
	merged := make([]string, 0, max)
	for _, list := range [][]string{weighted, frequency} {
		for _, kw := range list {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			merged = append(merged, kw)
			if len(merged) >= max {
				return merged
			}
		}
	}
	return merged
}

func topN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
