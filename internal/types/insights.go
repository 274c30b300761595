package types

// Effort levels for position-improvement work.
const (
	EffortLow    = "low"
	EffortMedium = "medium"
	EffortHigh   = "high"
)

// Priority levels used by content gaps and action items.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// QuickWinOpportunity is a keyword ranked 4-20 where a realistic position
// improvement yields meaningful extra clicks.
type QuickWinOpportunity struct {
	Keyword         string `json:"keyword"`
	SearchVolume    int    `json:"searchVolume"`
	CurrentPosition int    `json:"currentPosition"`
	TargetPosition  int    `json:"targetPosition"`
	CurrentClicks   int    `json:"currentClicks"`
	PotentialClicks int    `json:"potentialClicks"`
	ClickUplift     int    `json:"clickUplift"`
	Effort          string `json:"effort"`
	URL             string `json:"url,omitempty"`
	Category        string `json:"category,omitempty"`
	Reasoning       string `json:"reasoning"`
}

// Hidden-gem opportunity types.
const (
	GemRisingTrend = "rising-trend"
	GemFirstMover  = "first-mover"
	GemEasyWin     = "easy-win"
)

// HiddenGem is a low-competition, high-volume keyword not yet fully captured.
type HiddenGem struct {
	Keyword             string  `json:"keyword"`
	SearchVolume        int     `json:"searchVolume"`
	Position            int     `json:"position"`
	Difficulty          float64 `json:"difficulty"`
	DifficultyEstimated bool    `json:"difficultyEstimated"`
	OpportunityType     string  `json:"opportunityType"`
	TargetPosition      int     `json:"targetPosition"`
	PotentialClicks     int     `json:"potentialClicks"`
	MatchesBrandContext bool    `json:"matchesBrandContext"`
	Reasoning           string  `json:"reasoning"`
}

// Cannibalization recommendations.
const (
	RecommendConsolidate   = "consolidate"
	RecommendRedirect      = "redirect"
	RecommendDifferentiate = "differentiate"
)

// CompetingURL is one of the brand's own pages competing for a keyword.
type CompetingURL struct {
	URL           string  `json:"url"`
	Position      int     `json:"position"`
	VisibleVolume float64 `json:"visibleVolume"`
}

// CannibalizationIssue describes multiple own pages ranking for the same
// keyword and the recommended resolution.
type CannibalizationIssue struct {
	Keyword        string         `json:"keyword"`
	SearchVolume   int            `json:"searchVolume"`
	CompetingURLs  []CompetingURL `json:"competingUrls"`
	Recommendation string         `json:"recommendation"`
	ImpactScore    float64        `json:"impactScore"`
}

// Category standing labels for the per-category SOV breakdown.
const (
	CategoryLeading     = "leading"
	CategoryCompetitive = "competitive"
	CategoryWeak        = "weak"
)

// CategorySOV is the share-of-voice breakdown for one topical category.
type CategorySOV struct {
	Category      string  `json:"category"`
	KeywordCount  int     `json:"keywordCount"`
	TotalVolume   int     `json:"totalVolume"`
	VisibleVolume float64 `json:"visibleVolume"`
	Share         float64 `json:"share"`
	AvgPosition   float64 `json:"avgPosition"`
	Status        string  `json:"status"`
	TopKeyword    string  `json:"topKeyword,omitempty"`
}

// ContentGap flags a category whose aggregate ranking quality implies
// under-investment in content.
type ContentGap struct {
	Category              string   `json:"category"`
	KeywordCount          int      `json:"keywordCount"`
	WeakKeywordCount      int      `json:"weakKeywordCount"`
	AvgPosition           float64  `json:"avgPosition"`
	WeakVolume            int      `json:"weakVolume"`
	SuggestedContentCount int      `json:"suggestedContentCount"`
	SuggestedContentTypes []string `json:"suggestedContentTypes"`
	Priority              string   `json:"priority"`
	EstimatedTrafficGain  int      `json:"estimatedTrafficGain"`
}

// KeywordBattle is a simulated head-to-head comparison on one keyword. The
// opposing position is a modeled estimate derived from the competitor's
// estimated share of voice, not an observed ranking.
type KeywordBattle struct {
	Keyword       string `json:"keyword"`
	SearchVolume  int    `json:"searchVolume"`
	YourPosition  int    `json:"yourPosition"`
	TheirPosition int    `json:"theirPosition"`
}

// CompetitorStrength is an approximate strength profile for one detected
// competitor brand. Estimated is always true: every figure here is derived
// from first-party data plus competitor brand-search volume as a proxy.
type CompetitorStrength struct {
	Competitor      string          `json:"competitor"`
	BrandVolume     int             `json:"brandVolume"`
	EstimatedSOV    float64         `json:"estimatedSov"`
	YouWin          int             `json:"youWin"`
	TheyWin         int             `json:"theyWin"`
	Ties            int             `json:"ties"`
	WinningKeywords []KeywordBattle `json:"winningKeywords,omitempty"`
	LosingKeywords  []KeywordBattle `json:"losingKeywords,omitempty"`
	Estimated       bool            `json:"estimated"`
}

// FunnelStageAnalysis aggregates keyword coverage for one funnel stage.
type FunnelStageAnalysis struct {
	Stage        string  `json:"stage"`
	KeywordCount int     `json:"keywordCount"`
	TotalVolume  int     `json:"totalVolume"`
	AvgPosition  float64 `json:"avgPosition"`
	VolumeShare  float64 `json:"volumeShare"`
}

// IntentOpportunity is a strategically valuable keyword with headroom left
// in its current position.
type IntentOpportunity struct {
	Keyword           string `json:"keyword"`
	SearchVolume      int    `json:"searchVolume"`
	Position          int    `json:"position"`
	Intent            string `json:"intent"`
	FunnelStage       string `json:"funnelStage"`
	StrategicValue    string `json:"strategicValue"`
	RecommendedAction string `json:"recommendedAction"`
}

// Action item types emitted by the prioritization engine.
const (
	ActionQuickWin        = "quick-win"
	ActionHiddenGem       = "hidden-gem"
	ActionCannibalization = "fix-cannibalization"
	ActionBuildCategory   = "build-category"
	ActionDefend          = "defend-competitor"
	ActionMonitor         = "monitor-category"
)

// ActionItem is one entry of the final ranked action list.
type ActionItem struct {
	Type              string  `json:"type"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Priority          float64 `json:"priority"`
	IsRecommended     bool    `json:"isRecommended"`
	RecommendedReason string  `json:"recommendedReason,omitempty"`
}

// InsightsSummary is the roll-up attached to every analysis result.
type InsightsSummary struct {
	TotalQuickWinPotential int            `json:"totalQuickWinPotential"`
	StrongCategories       int            `json:"strongCategories"`
	WeakCategories         int            `json:"weakCategories"`
	HiddenGemCount         int            `json:"hiddenGemCount"`
	DifficultyDataUsed     bool           `json:"difficultyDataUsed"`
	CannibalizationCount   int            `json:"cannibalizationCount"`
	TopAction              string         `json:"topAction,omitempty"`
	FunnelVolume           map[string]int `json:"funnelVolume"`
}

// ActionableInsights bundles the complete output of one analysis run.
type ActionableInsights struct {
	QuickWins             []QuickWinOpportunity  `json:"quickWins"`
	CategoryBreakdown     []CategorySOV          `json:"categoryBreakdown"`
	CompetitorStrengths   []CompetitorStrength   `json:"competitorStrengths"`
	HiddenGems            []HiddenGem            `json:"hiddenGems"`
	CannibalizationIssues []CannibalizationIssue `json:"cannibalizationIssues"`
	ContentGaps           []ContentGap           `json:"contentGaps"`
	FunnelAnalysis        []FunnelStageAnalysis  `json:"funnelAnalysis"`
	IntentOpportunities   []IntentOpportunity    `json:"intentOpportunities"`
	ActionList            []ActionItem           `json:"actionList"`
	Summary               InsightsSummary        `json:"summary"`
}
