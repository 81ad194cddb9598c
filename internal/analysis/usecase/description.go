package usecase

import (
	"regexp"
	"sort"
	"strings"

	"insight-srv/internal/analysis"
)

var (
	linkRe      = regexp.MustCompile(`http\S+|www\.\S+`)
	emailRe     = regexp.MustCompile(`\S+@\S+`)
	phoneRe     = regexp.MustCompile(`\+?\(?[0-9]{1,3}\)?[-\s.]?\(?[0-9]{1,3}\)?[-\s.]?[0-9]{3,5}[-\s.]?[0-9]{3,5}`)
	hashtagRe   = regexp.MustCompile(`#\w+`)
	mentionRe   = regexp.MustCompile(`@\w+`)
	timestampRe = regexp.MustCompile(`\d{1,2}:\d{2}`)
	chaptersRe  = regexp.MustCompile(`0:00|00:00`)
)

// analyzeDescription runs the structural description detectors and
// computes the description score: length ≥150 +2, timestamps +2,
// links +1, 3..10 hashtags +1, CTA +1, social links +1, capped at 10.
// A missing description yields zeroed features with score 0.
func (uc *implUseCase) analyzeDescription(description string) analysis.DescriptionFeatures {
	if description == "" {
		return analysis.DescriptionFeatures{}
	}

	lower := strings.ToLower(description)

	f := analysis.DescriptionFeatures{
		Length:         len([]rune(description)),
		WordCount:      len(strings.Fields(description)),
		LineCount:      len(strings.Split(description, "\n")),
		LinkCount:      len(linkRe.FindAllString(description, -1)),
		EmailCount:     len(emailRe.FindAllString(description, -1)),
		PhoneCount:     len(phoneRe.FindAllString(description, -1)),
		HashtagCount:   len(hashtagRe.FindAllString(description, -1)),
		MentionCount:   len(mentionRe.FindAllString(description, -1)),
		HasTimestamps:  timestampRe.MatchString(description),
		HasChapters:    chaptersRe.MatchString(description),
		TimestampCount: len(timestampRe.FindAllString(description, -1)),
		SocialLinks:    map[string]int{},
	}

	for platform, marker := range uc.lex.SocialDomains {
		if count := strings.Count(lower, marker); count > 0 {
			f.SocialLinks[platform] = count
		}
	}

	ctaTypes := make([]string, 0, len(uc.lex.CTAPatterns))
	for ctaType, patterns := range uc.lex.CTAPatterns {
		if containsAny(lower, patterns) {
			ctaTypes = append(ctaTypes, ctaType)
		}
	}
	sort.Strings(ctaTypes)
	f.CTATypes = ctaTypes
	f.CTACount = len(ctaTypes)
	f.HasCTA = f.CTACount > 0

	score := 0
	if f.Length >= 150 {
		score += 2
	}
	if f.HasTimestamps {
		score += 2
	}
	if f.LinkCount > 0 {
		score++
	}
	if f.HashtagCount >= 3 && f.HashtagCount <= 10 {
		score++
	}
	if f.HasCTA {
		score++
	}
	if len(f.SocialLinks) > 0 {
		score++
	}
	if score > 10 {
		score = 10
	}
	f.Score = score

	return f
}
