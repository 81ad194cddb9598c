package usecase

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/analysis/lexicon"
	"insight-srv/pkg/log"
)

func newTestUseCase() *implUseCase {
	return &implUseCase{
		l:   log.NewNop(),
		lex: lexicon.Default(),
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestAnalyzeIdempotence(t *testing.T) {
	uc := newTestUseCase()
	asOf := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	input := analysis.AnalyzeInput{
		Title:       "Top 10 AI Secrets You Never Knew!",
		Description: "Subscribe for more! #ai #tech #tutorial\n0:00 Intro\n2:30 Main part\nhttps://example.com",
		Views:       150_000,
		Likes:       9_000,
		Comments:    1_200,
		PublishedAt: timePtr(asOf.AddDate(0, 0, -7)),
		AsOf:        asOf,
	}

	first, err := uc.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	second, err := uc.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze() is not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestViewLevelBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		views int64
		want  string
	}{
		{"exactly one million", 1_000_000, analysis.ViewLevelMegaViral},
		{"just below one million", 999_999, analysis.ViewLevelViral},
		{"exactly one hundred thousand", 100_000, analysis.ViewLevelViral},
		{"ten thousand", 10_000, analysis.ViewLevelPopular},
		{"one thousand", 1_000, analysis.ViewLevelModerate},
		{"below one thousand", 999, analysis.ViewLevelLow},
		{"zero views", 0, analysis.ViewLevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewLevel(tt.views); got != tt.want {
				t.Errorf("viewLevel(%d) = %q, want %q", tt.views, got, tt.want)
			}
		})
	}
}

func TestEngagementDefaults(t *testing.T) {
	uc := newTestUseCase()

	got := uc.analyzeMetrics(analysis.AnalyzeInput{Views: 0, Likes: 0, Comments: 0}, time.Now())

	if got.EngagementQuality != analysis.EngagementNoData {
		t.Errorf("engagement quality = %q, want %q", got.EngagementQuality, analysis.EngagementNoData)
	}
	if got.DiscussionLevel != analysis.DiscussionNoData {
		t.Errorf("discussion level = %q, want %q", got.DiscussionLevel, analysis.DiscussionNoData)
	}
	if got.GrowthRate != analysis.GrowthUnknown {
		t.Errorf("growth rate = %q, want %q", got.GrowthRate, analysis.GrowthUnknown)
	}
}

func TestEngagementQualityLadder(t *testing.T) {
	tests := []struct {
		likeRate float64
		want     string
	}{
		{10, analysis.EngagementExceptional},
		{9.99, analysis.EngagementExcellent},
		{5, analysis.EngagementExcellent},
		{3, analysis.EngagementGood},
		{1, analysis.EngagementAverage},
		{0.5, analysis.EngagementPoor},
	}

	for _, tt := range tests {
		if got := engagementQuality(tt.likeRate); got != tt.want {
			t.Errorf("engagementQuality(%v) = %q, want %q", tt.likeRate, got, tt.want)
		}
	}
}

func TestDiscussionLevelWithoutLikes(t *testing.T) {
	uc := newTestUseCase()

	got := uc.analyzeMetrics(analysis.AnalyzeInput{Views: 5_000, Likes: 0, Comments: 10}, time.Now())
	if got.DiscussionLevel != analysis.DiscussionNone {
		t.Errorf("discussion level = %q, want %q", got.DiscussionLevel, analysis.DiscussionNone)
	}
}

func TestTitleScore(t *testing.T) {
	uc := newTestUseCase()

	t.Run("empty title scores zero", func(t *testing.T) {
		got := uc.analyzeTitle("")
		if got.Score != 0 {
			t.Errorf("title score = %d, want 0", got.Score)
		}
		if got.Length != 0 || got.WordCount != 0 {
			t.Errorf("empty title features = %+v, want zeroed", got)
		}
	})

	t.Run("length plus number plus power word", func(t *testing.T) {
		// inside the 40-60 sweet spot, contains a digit and "best"
		title := "The best way to learn 5 languages fast this year!"
		got := uc.analyzeTitle(title)
		if got.Length < 40 || got.Length > 60 {
			t.Fatalf("title length = %d, want within [40,60]", got.Length)
		}
		if got.Score < 5 {
			t.Errorf("title score = %d, want >= 5", got.Score)
		}
	})

	t.Run("score capped at 10", func(t *testing.T) {
		got := uc.analyzeTitle("Best TOP 10 secrets? Ultimate guide now ✨ amazing!")
		if got.Score > 10 {
			t.Errorf("title score = %d, want <= 10", got.Score)
		}
	})
}

func TestTitleDetectors(t *testing.T) {
	uc := newTestUseCase()

	got := uc.analyzeTitle(`ТОП-5 [SHOCKING] "secrets" now?!`)

	if !got.HasNumbers {
		t.Error("HasNumbers = false, want true")
	}
	if !got.HasQuestion {
		t.Error("HasQuestion = false, want true")
	}
	if !got.HasExclamation {
		t.Error("HasExclamation = false, want true")
	}
	if !got.HasBrackets {
		t.Error("HasBrackets = false, want true")
	}
	if !got.HasQuotes {
		t.Error("HasQuotes = false, want true")
	}
	if !got.HasCaps {
		t.Error("HasCaps = false, want true")
	}
	if !got.HasClickbait {
		t.Error("HasClickbait = false, want true")
	}
	if !got.HasUrgency {
		t.Error("HasUrgency = false, want true")
	}
}

func TestDescriptionMissing(t *testing.T) {
	uc := newTestUseCase()

	got := uc.analyzeDescription("")
	if got.Score != 0 {
		t.Errorf("description score = %d, want 0", got.Score)
	}
	if got.Length != 0 {
		t.Errorf("description length = %d, want 0", got.Length)
	}
}

func TestDescriptionFeatures(t *testing.T) {
	uc := newTestUseCase()

	description := strings.Join([]string{
		"In this video we cover everything you need to know about building channels. " +
			"Subscribe and hit the bell, like the video and leave a comment below!",
		"0:00 Intro",
		"2:30 Deep dive",
		"12:45 Conclusion",
		"Follow me: https://instagram.com/creator and https://t.me/creator",
		"#youtube #growth #tutorial #analytics",
	}, "\n")

	got := uc.analyzeDescription(description)

	if got.LinkCount != 2 {
		t.Errorf("link count = %d, want 2", got.LinkCount)
	}
	if got.HashtagCount != 4 {
		t.Errorf("hashtag count = %d, want 4", got.HashtagCount)
	}
	if !got.HasTimestamps {
		t.Error("HasTimestamps = false, want true")
	}
	if !got.HasChapters {
		t.Error("HasChapters = false, want true")
	}
	if got.TimestampCount != 3 {
		t.Errorf("timestamp count = %d, want 3", got.TimestampCount)
	}
	if _, ok := got.SocialLinks["instagram"]; !ok {
		t.Error("instagram social link not detected")
	}
	if _, ok := got.SocialLinks["telegram"]; !ok {
		t.Error("telegram social link not detected")
	}
	if !got.HasCTA {
		t.Error("HasCTA = false, want true")
	}
	for _, want := range []string{"subscribe", "like", "comment", "bell"} {
		found := false
		for _, cta := range got.CTATypes {
			if cta == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("CTA type %q not detected in %v", want, got.CTATypes)
		}
	}
	// length>=150 +2, timestamps +2, links +1, hashtags in range +1, cta +1, social +1
	if got.Score != 8 {
		t.Errorf("description score = %d, want 8", got.Score)
	}
}

func TestKeywordFrequencyTopResult(t *testing.T) {
	uc := newTestUseCase()

	unique := []string{
		"mountain", "river", "forest", "desert", "ocean", "valley", "meadow",
		"canyon", "glacier", "volcano", "island", "prairie", "tundra", "lagoon",
	}
	var words []string
	for i := 0; i < 10; i++ {
		words = append(words, "photography")
		if i < len(unique) {
			words = append(words, unique[i])
		}
	}
	text := strings.Join(words, " ")

	got := uc.extractKeywordsFrequency(text, topKeywordsFrequency)
	if len(got) == 0 {
		t.Fatal("extractKeywordsFrequency() returned no keywords")
	}
	if got[0] != "photography" {
		t.Errorf("top keyword = %q, want %q", got[0], "photography")
	}
}

func TestKeywordFrequencyFilters(t *testing.T) {
	uc := newTestUseCase()

	got := uc.extractKeywordsFrequency("the and 123 456 ok go russia россия и в на", topKeywordsFrequency)

	for _, kw := range got {
		switch kw {
		case "the", "and", "123", "456", "ok", "go", "и", "в", "на":
			t.Errorf("keyword %q should have been filtered", kw)
		}
	}
}

func TestKeywordWeightedDegenerateInput(t *testing.T) {
	uc := newTestUseCase()

	if got := uc.extractKeywordsWeighted("   short  "); got != nil {
		t.Errorf("extractKeywordsWeighted(degenerate) = %v, want nil", got)
	}
}

func TestMergeKeywords(t *testing.T) {
	weighted := []string{"alpha", "beta", "gamma"}
	frequency := []string{"beta", "delta", "alpha", "epsilon"}

	got := mergeKeywords(weighted, frequency, 4)
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeKeywords() = %v, want %v", got, want)
	}
}

func TestMatchTrends(t *testing.T) {
	uc := newTestUseCase()

	t.Run("two categories make it trendy", func(t *testing.T) {
		got := uc.matchTrends("ChatGPT tutorial: how to build an assistant")
		if !got.IsTrendy {
			t.Errorf("IsTrendy = false, want true (categories %v)", got.Categories)
		}
		if got.Score != len(got.Categories)*10 {
			t.Errorf("trend score = %d, want %d", got.Score, len(got.Categories)*10)
		}
	})

	t.Run("single category is not trendy", func(t *testing.T) {
		got := uc.matchTrends("my morning walk podcast episode")
		if len(got.Categories) != 1 || got.Categories[0] != "podcast" {
			t.Fatalf("categories = %v, want [podcast]", got.Categories)
		}
		if got.IsTrendy {
			t.Error("IsTrendy = true, want false")
		}
	})

	t.Run("no categories", func(t *testing.T) {
		got := uc.matchTrends("quiet afternoon birdwatching")
		if len(got.Categories) != 0 || got.Score != 0 || got.IsTrendy {
			t.Errorf("got %+v, want empty trend features", got)
		}
	})
}

func TestViralScoreCap(t *testing.T) {
	got := viralScore(2_000_000, 15, 2, analysis.GrowthExplosive)
	if got > 100 {
		t.Errorf("viral score = %d, want <= 100", got)
	}
}

func TestPotentialScoreBounds(t *testing.T) {
	uc := newTestUseCase()
	asOf := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	inputs := []analysis.AnalyzeInput{
		{},
		{Title: "x"},
		{
			Title:        "Best ULTIMATE top 10 secrets guide you need right now!",
			Description:  strings.Repeat("great content #a #b #c 0:00 https://example.com subscribe ", 10),
			Views:        50_000_000,
			Likes:        9_000_000,
			Comments:     2_000_000,
			PublishedAt:  timePtr(asOf.AddDate(0, 0, -1)),
			HasCC:        true,
			HasChapters:  true,
			VideoQuality: analysis.Quality4K,
			AsOf:         asOf,
		},
	}

	for i, input := range inputs {
		got, err := uc.Analyze(context.Background(), input)
		if err != nil {
			t.Fatalf("Analyze(#%d) error = %v", i, err)
		}
		if got.Potential.Total < 0 || got.Potential.Total > 100 {
			t.Errorf("Analyze(#%d) total = %v, want within [0,100]", i, got.Potential.Total)
		}
	}
}

func TestPotentialVerdictBoundaries(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{80, analysis.VerdictMustReplicate},
		{79.9, analysis.VerdictRecommended},
		{60, analysis.VerdictRecommended},
		{59.9, analysis.VerdictPossible},
		{40, analysis.VerdictPossible},
		{39.9, analysis.VerdictNotRecommended},
		{0, analysis.VerdictNotRecommended},
	}

	for _, tt := range tests {
		var got string
		switch {
		case tt.total >= 80:
			got = analysis.VerdictMustReplicate
		case tt.total >= 60:
			got = analysis.VerdictRecommended
		case tt.total >= 40:
			got = analysis.VerdictPossible
		default:
			got = analysis.VerdictNotRecommended
		}
		if got != tt.want {
			t.Errorf("verdict(%v) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestTechnicalBonusCap(t *testing.T) {
	uc := newTestUseCase()

	input := analysis.AnalyzeInput{
		HasCC:        true,
		HasChapters:  true,
		VideoQuality: analysis.QualityHD,
	}
	got := uc.potentialScore(input, analysis.AnalysisResult{})
	if got.Technical != 15 {
		t.Errorf("technical = %v, want 15", got.Technical)
	}
}

func TestRecommendationsNeverEmpty(t *testing.T) {
	uc := newTestUseCase()

	inputs := []analysis.AnalyzeInput{
		{},
		{Title: "Some plain title"},
		{
			Title:       "The best way to learn 5 languages fast this year!",
			Description: strings.Repeat("detail ", 30) + "#one #two #three 0:00 intro subscribe https://example.com https://instagram.com/me",
			Views:       100_000,
			Likes:       10_000,
			Comments:    2_000,
		},
	}

	for i, input := range inputs {
		got, err := uc.Analyze(context.Background(), input)
		if err != nil {
			t.Fatalf("Analyze(#%d) error = %v", i, err)
		}
		if strings.TrimSpace(got.Recommendations) == "" {
			t.Errorf("Analyze(#%d) recommendations are empty", i)
		}
	}
}

func TestRecommendationPriorities(t *testing.T) {
	uc := newTestUseCase()

	input := analysis.AnalyzeInput{
		Title:           "short",
		Description:     "tiny",
		Views:           1_000,
		Likes:           5,
		Comments:        1,
		DurationSeconds: 300,
	}
	input.ComputeDerivedRates()

	got, err := uc.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !strings.Contains(got.Recommendations, headerHigh) {
		t.Errorf("recommendations missing high priority section:\n%s", got.Recommendations)
	}
	if !strings.Contains(got.Recommendations, "Lengthen the title") {
		t.Errorf("short title rule did not fire:\n%s", got.Recommendations)
	}
	if !strings.Contains(got.Recommendations, "Expand the description") {
		t.Errorf("short description rule did not fire:\n%s", got.Recommendations)
	}
	if !strings.Contains(got.Recommendations, "Add timestamps") {
		t.Errorf("timestamps rule did not fire:\n%s", got.Recommendations)
	}
	if idx := strings.Index(got.Recommendations, headerHigh); idx != 0 {
		t.Errorf("high priority section is not first:\n%s", got.Recommendations)
	}
}

func TestCompetitiveAdvantage(t *testing.T) {
	uc := newTestUseCase()

	t.Run("no advantages", func(t *testing.T) {
		got := uc.competitiveAdvantage(analysis.AnalyzeInput{Views: 100})
		if got != noAdvantageMessage {
			t.Errorf("got %q, want %q", got, noAdvantageMessage)
		}
	})

	t.Run("multiple advantages are pipe joined", func(t *testing.T) {
		input := analysis.AnalyzeInput{
			Views:           500_000,
			EngagementRate:  8,
			CommentRatio:    1.5,
			HasChapters:     true,
			DurationSeconds: 900,
		}
		got := uc.competitiveAdvantage(input)
		if !strings.Contains(got, " | ") {
			t.Errorf("advantages not pipe joined: %q", got)
		}
		if !strings.Contains(got, "Mass audience reach") {
			t.Errorf("views advantage missing: %q", got)
		}
		if !strings.Contains(got, "Long format with strong retention") {
			t.Errorf("long format advantage missing: %q", got)
		}
	})
}

func TestAnalyzeEndToEnd(t *testing.T) {
	uc := newTestUseCase()
	asOf := time.Date(2026, 4, 17, 19, 0, 0, 0, time.UTC)

	description := "Everything about modern AI tools and how to use them effectively in your daily workflow. " +
		"0:00 Intro\n3:15 Overview\nhttps://example.com/course https://instagram.com/creator " +
		"#ai #tools #productivity #learning"

	input := analysis.AnalyzeInput{
		Title:       "Top 10 AI Secrets You Never Knew!",
		Description: description,
		Views:       150_000,
		Likes:       9_000,
		Comments:    1_200,
		PublishedAt: timePtr(asOf.AddDate(0, 0, -7)),
		AsOf:        asOf,
	}
	input.ComputeDerivedRates()

	got, err := uc.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if got.Metrics.ViewLevel != analysis.ViewLevelViral {
		t.Errorf("view level = %q, want %q", got.Metrics.ViewLevel, analysis.ViewLevelViral)
	}
	// like rate 9000/150000 = 6% -> excellent
	if got.Metrics.EngagementQuality != analysis.EngagementExcellent {
		t.Errorf("engagement quality = %q, want %q", got.Metrics.EngagementQuality, analysis.EngagementExcellent)
	}
	foundAI := false
	for _, cat := range got.Trends.Categories {
		if cat == "ai" {
			foundAI = true
		}
	}
	if !foundAI {
		t.Errorf("trend categories = %v, want to include %q", got.Trends.Categories, "ai")
	}
	if got.Potential.Recommendation != analysis.VerdictRecommended &&
		got.Potential.Recommendation != analysis.VerdictMustReplicate {
		t.Errorf("potential recommendation = %q (total %v), want recommended or must-replicate",
			got.Potential.Recommendation, got.Potential.Total)
	}
	if len(got.Keywords) == 0 || len(got.Keywords) > 20 {
		t.Errorf("keywords length = %d, want within (0,20]", len(got.Keywords))
	}
	if len(got.TopKeywords) > 5 {
		t.Errorf("top keywords length = %d, want <= 5", len(got.TopKeywords))
	}
	if got.SuccessAnalysis == "" || got.ContentStrategy == "" {
		t.Error("success analysis and content strategy must be populated")
	}
}

func TestSuccessScoreClamped(t *testing.T) {
	uc := newTestUseCase()
	asOf := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

	// Every success axis maxed out: clickbait title with numbers, Friday
	// prime-time publish, exceptional engagement, viral Short, two trend
	// categories, captions plus chapters.
	input := analysis.AnalyzeInput{
		Title:           "SHOCKING How To Review: Top 5 Secrets!",
		Description:     "Full tutorial and review inside.",
		Views:           1_000_000,
		Likes:           150_000,
		Comments:        20_000,
		PublishedAt:     timePtr(time.Date(2026, 3, 6, 19, 0, 0, 0, time.UTC)),
		IsShort:         true,
		DurationSeconds: 30,
		HasCC:           true,
		HasChapters:     true,
		AsOf:            asOf,
	}
	input.ComputeDerivedRates()

	got, err := uc.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !strings.Contains(got.SuccessAnalysis, "Success score: 100%") {
		header, _, _ := strings.Cut(got.SuccessAnalysis, "\n")
		t.Errorf("success header = %q, want \"Success score: 100%%\"", header)
	}
}

func TestTitleCapsRequiresLetter(t *testing.T) {
	uc := newTestUseCase()

	if got := uc.analyzeTitle("123?"); got.HasCaps {
		t.Error("HasCaps = true for a title without letters, want false")
	}
	if got := uc.analyzeTitle("ПРИВЕТ"); !got.HasCaps {
		t.Error("HasCaps = false for an all-caps title, want true")
	}
}

func TestContentMixOrder(t *testing.T) {
	uc := newTestUseCase()

	var result analysis.AnalysisResult
	result.Trends.Categories = []string{"reaction", "review", "tutorial"}

	got := uc.contentStrategy(analysis.AnalyzeInput{}, result)

	tutorials := strings.Index(got, "- Tutorials (40%)")
	reviews := strings.Index(got, "- Reviews and unboxings (30%)")
	reactions := strings.Index(got, "- Reactions and opinions (20%)")
	if tutorials == -1 || reviews == -1 || reactions == -1 {
		t.Fatalf("content mix lines missing:\n%s", got)
	}
	if !(tutorials < reviews && reviews < reactions) {
		t.Errorf("content mix out of order (%d, %d, %d):\n%s", tutorials, reviews, reactions, got)
	}
}
