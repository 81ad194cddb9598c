package usecase

import (
	"strings"

	"insight-srv/internal/analysis"
)

const wellOptimizedMessage = "Video is well optimized! Focus on content quality."

const (
	headerHigh   = "HIGH PRIORITY:"
	headerMedium = "MEDIUM PRIORITY:"
	headerLow    = "LOW PRIORITY:"
)

// recommendations evaluates the rule list against the computed
// features. All matching rules fire; output is grouped by priority
// tier, high first. When nothing fires the fixed fallback is returned.
func (uc *implUseCase) recommendations(input analysis.AnalyzeInput, result analysis.AnalysisResult) string {
	var high, medium, low []string

	title := result.Title
	desc := result.Description

	// Title rules
	if title.Length < 40 {
		high = append(high, "Lengthen the title to 50-60 characters for a better CTR")
	} else if title.Length > 70 {
		high = append(high, "Shorten the title to 60-70 characters so it is not cut off")
	}
	if !title.HasNumbers && !input.IsShort {
		high = append(high, "Add numbers to the title (Top 5, 10 ways) - raises CTR noticeably")
	}
	if title.Score < 5 {
		high = append(high, "Strengthen the title: add emotional words or a question")
	}

	// Description rules
	if desc.Length < 150 {
		high = append(high, "Expand the description to at least 150 characters with keywords")
	}
	if !desc.HasTimestamps && input.DurationSeconds >= 60 {
		high = append(high, "Add timestamps for easier navigation")
	}

	// Engagement
	if input.EngagementRate < 2 {
		high = append(high, "Critically low engagement! Ask viewers a question at the end of the video")
	}

	// Medium priority
	if !title.HasEmoji && input.IsShort {
		medium = append(medium, "Add one or two emoji to the title for Shorts")
	}
	if desc.LinkCount == 0 {
		medium = append(medium, "Add useful links: social profiles, related videos")
	}
	if desc.HashtagCount < 3 {
		medium = append(medium, "Use 3-5 relevant hashtags (#shorts #top)")
	}
	if len(desc.SocialLinks) == 0 {
		medium = append(medium, "Add social media links to grow subscribers")
	}

	// Low priority
	if !desc.HasCTA {
		low = append(low, "Add a call to action to the description")
	}
	if desc.CTACount > 5 {
		low = append(low, "Too many calls to action - keep the 2-3 main ones")
	}

	// Shorts-specific
	if input.IsShort {
		if input.DurationSeconds > 45 {
			high = append(high, "Shorten the video to 15-30 seconds for Shorts")
		}
		medium = append(medium, "Use the vertical 9:16 format")
		medium = append(medium, "Add dynamic transitions every 3-5 seconds")
	}

	var sections []string
	if len(high) > 0 {
		sections = append(sections, headerHigh+"\n"+strings.Join(high, "\n"))
	}
	if len(medium) > 0 {
		sections = append(sections, headerMedium+"\n"+strings.Join(medium, "\n"))
	}
	if len(low) > 0 {
		sections = append(sections, headerLow+"\n"+strings.Join(low, "\n"))
	}

	if len(sections) == 0 {
		return wellOptimizedMessage
	}
	return strings.Join(sections, "\n\n")
}
