package usecase

import (
	"regexp"
	"strings"

	"insight-srv/internal/analysis"
)

var (
	emojiRe    = regexp.MustCompile(`[^\p{L}\p{N}\s_,.\-]`)
	digitRe    = regexp.MustCompile(`\d`)
	letterRe   = regexp.MustCompile(`\p{L}`)
	capsRunRe  = regexp.MustCompile(`[A-Z]{2,}`)
	bracketsRe = regexp.MustCompile(`[\[({]`)
	quotesRe   = regexp.MustCompile(`["']`)
)

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// analyzeTitle runs the structural title detectors and computes the
// title score: length in [40,60] +2, numbers +2, power words +1,
// emoji +1, question +1, capped at 10.
func (uc *implUseCase) analyzeTitle(title string) analysis.TitleFeatures {
	lower := strings.ToLower(title)

	f := analysis.TitleFeatures{
		Length:         len([]rune(title)),
		WordCount:      len(strings.Fields(title)),
		HasEmoji:       emojiRe.MatchString(title),
		HasNumbers:     digitRe.MatchString(title),
		HasCaps:        capsRunRe.MatchString(title) || (letterRe.MatchString(title) && title == strings.ToUpper(title)),
		HasQuestion:    strings.Contains(title, "?"),
		HasExclamation: strings.Contains(title, "!"),
		HasBrackets:    bracketsRe.MatchString(title),
		HasQuotes:      quotesRe.MatchString(title),
		HasPowerWords:  containsAny(lower, uc.lex.PowerWords),
		HasClickbait:   containsAny(lower, uc.lex.ClickbaitWords),
		HasUrgency:     containsAny(lower, uc.lex.UrgencyWords),
	}

	score := 0
	if f.Length >= 40 && f.Length <= 60 {
		score += 2
	}
	if f.HasNumbers {
		score += 2
	}
	if f.HasPowerWords {
		score++
	}
	if f.HasEmoji {
		score++
	}
	if f.HasQuestion {
		score++
	}
	if score > 10 {
		score = 10
	}
	f.Score = score

	return f
}
