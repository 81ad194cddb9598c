package analysis

import "time"

// Video quality labels accepted in AnalyzeInput.
const (
	QualitySD = "sd"
	QualityHD = "hd"
	Quality4K = "4k"
)

// AnalyzeInput is the video snapshot the engine scores. It is treated as
// immutable for the duration of the analysis.
type AnalyzeInput struct {
	VideoID   string
	ChannelID string

	// Text
	Title       string
	Description string
	Transcript  string

	// Metrics
	Views    int64
	Likes    int64
	Comments int64

	// Derived metrics, percentages. Supplied by the caller; see
	// ComputeDerivedRates for the canonical formulas.
	EngagementRate float64
	CommentRatio   float64

	// Temporal. PublishedAt may be nil when unknown.
	PublishedAt *time.Time

	// Flags
	IsShort         bool
	DurationSeconds int64
	HasCC           bool
	HasChapters     bool
	VideoQuality    string // sd | hd | 4k

	// AsOf pins the analysis clock so results are reproducible. The zero
	// value means "now".
	AsOf time.Time
}

// ComputeDerivedRates fills EngagementRate and CommentRatio from the raw
// counters when the caller has not supplied them.
func (in *AnalyzeInput) ComputeDerivedRates() {
	if in.Views <= 0 {
		return
	}
	if in.EngagementRate == 0 {
		in.EngagementRate = float64(in.Likes+in.Comments) / float64(in.Views) * 100
	}
	if in.CommentRatio == 0 {
		in.CommentRatio = float64(in.Comments) / float64(in.Views) * 100
	}
}

// TitleFeatures holds the structural title detectors and the title score.
type TitleFeatures struct {
	Length         int  `json:"title_length"`
	WordCount      int  `json:"title_word_count"`
	HasEmoji       bool `json:"has_emoji"`
	HasNumbers     bool `json:"has_numbers"`
	HasCaps        bool `json:"has_caps"`
	HasQuestion    bool `json:"has_question"`
	HasExclamation bool `json:"has_exclamation"`
	HasBrackets    bool `json:"has_brackets"`
	HasQuotes      bool `json:"has_quotes"`
	HasPowerWords  bool `json:"has_power_words"`
	HasClickbait   bool `json:"has_clickbait"`
	HasUrgency     bool `json:"has_urgency"`
	Score          int  `json:"title_score"` // 0..10
}

// DescriptionFeatures holds the structural description detectors and the
// description score.
type DescriptionFeatures struct {
	Length         int            `json:"description_length"`
	WordCount      int            `json:"description_word_count"`
	LineCount      int            `json:"description_line_count"`
	LinkCount      int            `json:"links_count"`
	EmailCount     int            `json:"email_count"`
	PhoneCount     int            `json:"phone_count"`
	HashtagCount   int            `json:"hashtags_count"`
	MentionCount   int            `json:"mentions_count"`
	HasTimestamps  bool           `json:"has_timestamps"`
	HasChapters    bool           `json:"has_chapters"`
	TimestampCount int            `json:"timestamp_count"`
	SocialLinks    map[string]int `json:"social_links"`
	CTATypes       []string       `json:"cta_types"`
	HasCTA         bool           `json:"has_cta"`
	CTACount       int            `json:"cta_count"`
	Score          int            `json:"description_score"` // 0..10
}

// Categorical labels produced by the metric classifier.
const (
	ViewLevelMegaViral = "mega_viral"
	ViewLevelViral     = "viral"
	ViewLevelPopular   = "popular"
	ViewLevelModerate  = "moderate"
	ViewLevelLow       = "low"

	EngagementExceptional = "exceptional"
	EngagementExcellent   = "excellent"
	EngagementGood        = "good"
	EngagementAverage     = "average"
	EngagementPoor        = "poor"
	EngagementNoData      = "no_data"

	DiscussionHigh     = "high"
	DiscussionModerate = "moderate"
	DiscussionLow      = "low"
	DiscussionNone     = "none"
	DiscussionNoData   = "no_data"

	GrowthExplosive = "explosive"
	GrowthRapid     = "rapid"
	GrowthSteady    = "steady"
	GrowthSlow      = "slow"
	GrowthUnknown   = "unknown"
)

// MetricFeatures holds the metric-derived tiers and the viral score.
type MetricFeatures struct {
	ViewLevel         string  `json:"view_level"`
	EngagementQuality string  `json:"engagement_quality"`
	DiscussionLevel   string  `json:"discussion_level"`
	GrowthRate        string  `json:"growth_rate"`
	LikeRate          float64 `json:"like_rate"`
	CommentRate       float64 `json:"comment_rate"`
	ViewsPerDay       float64 `json:"views_per_day"`
	ViralScore        int     `json:"viral_score"` // 0..100
}

// TrendFeatures holds the matched trend categories.
type TrendFeatures struct {
	Categories []string `json:"trend_categories"`
	Score      int      `json:"trend_score"`
	IsTrendy   bool     `json:"is_trendy"`
}

// Potential score recommendation labels, ordered best to worst.
const (
	VerdictMustReplicate = "must-replicate"
	VerdictRecommended   = "recommended"
	VerdictPossible      = "possible with adaptation"
	VerdictNotRecommended = "not recommended"
)

// PotentialScore is the final composite score with its breakdown.
type PotentialScore struct {
	Total          float64 `json:"total_score"` // 0..100, one decimal
	ViralPotential float64 `json:"viral_potential"`
	Optimization   float64 `json:"optimization"`
	Trendiness     float64 `json:"trendiness"`
	Engagement     float64 `json:"engagement"`
	Technical      float64 `json:"technical"`
	Recommendation string  `json:"recommendation"`
}

// AnalysisResult is the full output of one analysis run.
type AnalysisResult struct {
	VideoID   string `json:"video_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`

	Keywords    []string `json:"keywords"`     // deduplicated, ≤20
	TopKeywords []string `json:"top_keywords"` // first 5 of Keywords

	Title       TitleFeatures       `json:"title_features"`
	Description DescriptionFeatures `json:"description_features"`
	Metrics     MetricFeatures      `json:"metric_features"`
	Trends      TrendFeatures       `json:"trend_features"`

	CompetitiveAdvantage string `json:"competitive_advantage"`
	Recommendations      string `json:"recommendations"`
	SuccessAnalysis      string `json:"success_analysis"`
	ContentStrategy      string `json:"content_strategy"`

	Potential PotentialScore `json:"potential_score"`

	AnalyzedAt time.Time `json:"analyzed_at"`
}
