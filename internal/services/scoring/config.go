package scoring

// Config carries every band edge and weight used by the dimension scorers
// and the aggregation. The values are empirically chosen defaults carried
// over from the production dashboards; they are configuration, not
// constants to tune away.
type Config struct {
	Weights DimensionWeights `yaml:"weights"`

	Volatility VolatilityBands `yaml:"volatility"`
	Growth     GrowthBands     `yaml:"growth"`
	Scarcity   ScarcityBands   `yaml:"scarcity"`
	Sentiment  SentimentBands  `yaml:"sentiment"`
	Macro      MacroBands      `yaml:"macro"`
}

// DimensionWeights are the speculation-total weights; they must sum to 1.
type DimensionWeights struct {
	Volatility float64 `yaml:"volatility"`
	Growth     float64 `yaml:"growth"`
	Scarcity   float64 `yaml:"scarcity"`
	Sentiment  float64 `yaml:"sentiment"`
	Macro      float64 `yaml:"macro"`
}

// VolatilityBands controls the inverse CV-to-score mapping.
type VolatilityBands struct {
	// MaxCV is the coefficient-of-variation (percent) at or above which
	// the score bottoms out at 0.
	MaxCV float64 `yaml:"max_cv"`
}

// GrowthBands controls the trend-to-score mapping.
type GrowthBands struct {
	// Neutral is the score of a perfectly flat series.
	Neutral float64 `yaml:"neutral"`
	// Slope scales total percent change into score points.
	Slope float64 `yaml:"slope"`
}

// PopulationBand maps a PSA10 population ceiling to a base score.
type PopulationBand struct {
	MaxPop int     `yaml:"max_pop"`
	Score  float64 `yaml:"score"`
}

// ScarcityBands controls the population-based scarcity score. Lower
// scores mean scarcer, more investable cards.
type ScarcityBands struct {
	PopulationBands []PopulationBand `yaml:"population_bands"`
	DefaultScore    float64          `yaml:"default_score"`

	HighSharePct     float64 `yaml:"high_share_pct"`
	HighSharePenalty float64 `yaml:"high_share_penalty"`
	LowSharePct      float64 `yaml:"low_share_pct"`
	LowShareBonus    float64 `yaml:"low_share_bonus"`

	VintageOffset float64 `yaml:"vintage_offset"`
}

// MentionBand maps a weighted-mention ceiling to a buzz score.
type MentionBand struct {
	MaxMentions float64 `yaml:"max_mentions"`
	Score       float64 `yaml:"score"`
}

// SentimentBands controls the social-sentiment fusion.
type SentimentBands struct {
	RedditWeight  float64 `yaml:"reddit_weight"`
	TwitterWeight float64 `yaml:"twitter_weight"`
	YouTubeWeight float64 `yaml:"youtube_weight"`
	DiscordWeight float64 `yaml:"discord_weight"`

	BuzzBands    []MentionBand `yaml:"buzz_bands"`
	BuzzMaxScore float64       `yaml:"buzz_max_score"`

	BuzzTermWeight       float64 `yaml:"buzz_term_weight"`
	RatioTermWeight      float64 `yaml:"ratio_term_weight"`
	HypeTermWeight       float64 `yaml:"hype_term_weight"`
	PopularityTermWeight float64 `yaml:"popularity_term_weight"`

	GradedHypeBonus   float64            `yaml:"graded_hype_bonus"`
	GradedScoreFloor  float64            `yaml:"graded_score_floor"`
	RareHypeBonus     float64            `yaml:"rare_hype_bonus"`
	PopularityTiers   map[string]float64 `yaml:"popularity_tiers"`
	DefaultPopularity float64            `yaml:"default_popularity"`
}

// MacroBands controls the additive macro-environment score.
type MacroBands struct {
	BTCStrongPct   float64 `yaml:"btc_strong_pct"`
	BTCStrongAdd   float64 `yaml:"btc_strong_add"`
	BTCModeratePct float64 `yaml:"btc_moderate_pct"`
	BTCModerateAdd float64 `yaml:"btc_moderate_add"`
	BTCPositiveAdd float64 `yaml:"btc_positive_add"`
	BTCCrashPct    float64 `yaml:"btc_crash_pct"`
	BTCCrashSub    float64 `yaml:"btc_crash_sub"`

	FGEuphoric    float64 `yaml:"fg_euphoric"`
	FGEuphoricAdd float64 `yaml:"fg_euphoric_add"`
	FGGreedy      float64 `yaml:"fg_greedy"`
	FGGreedyAdd   float64 `yaml:"fg_greedy_add"`
	FGNeutral     float64 `yaml:"fg_neutral"`
	FGNeutralAdd  float64 `yaml:"fg_neutral_add"`
	FGFearful     float64 `yaml:"fg_fearful"`
	FGFearfulSub  float64 `yaml:"fg_fearful_sub"`

	VIXCalm       float64 `yaml:"vix_calm"`
	VIXCalmAdd    float64 `yaml:"vix_calm_add"`
	VIXNormal     float64 `yaml:"vix_normal"`
	VIXNormalAdd  float64 `yaml:"vix_normal_add"`
	VIXStressed   float64 `yaml:"vix_stressed"`
	VIXStressedSub float64 `yaml:"vix_stressed_sub"`
}

// DefaultConfig returns the production band edges and weights.
func DefaultConfig() *Config {
	return &Config{
		Weights: DimensionWeights{
			Volatility: 0.25,
			Growth:     0.25,
			Scarcity:   0.20,
			Sentiment:  0.15,
			Macro:      0.15,
		},
		Volatility: VolatilityBands{MaxCV: 80},
		Growth:     GrowthBands{Neutral: 50, Slope: 1.0},
		Scarcity: ScarcityBands{
			PopulationBands: []PopulationBand{
				{MaxPop: 100, Score: 5},
				{MaxPop: 500, Score: 15},
				{MaxPop: 2000, Score: 30},
				{MaxPop: 10000, Score: 60},
			},
			DefaultScore:     85,
			HighSharePct:     30,
			HighSharePenalty: 10,
			LowSharePct:      5,
			LowShareBonus:    10,
			VintageOffset:    10,
		},
		Sentiment: SentimentBands{
			RedditWeight:  1.0,
			TwitterWeight: 1.2,
			YouTubeWeight: 1.5,
			DiscordWeight: 0.8,
			BuzzBands: []MentionBand{
				{MaxMentions: 10, Score: 10},
				{MaxMentions: 50, Score: 25},
				{MaxMentions: 200, Score: 50},
				{MaxMentions: 1000, Score: 75},
			},
			BuzzMaxScore:         100,
			BuzzTermWeight:       0.30,
			RatioTermWeight:      0.25,
			HypeTermWeight:       0.25,
			PopularityTermWeight: 0.20,
			GradedHypeBonus:      15,
			GradedScoreFloor:     9.5,
			RareHypeBonus:        10,
			PopularityTiers: map[string]float64{
				"charizard": 100,
				"pikachu":   95,
				"mewtwo":    90,
				"mew":       88,
				"umbreon":   85,
				"rayquaza":  85,
				"eevee":     80,
				"gengar":    78,
				"lugia":     78,
				"blastoise": 75,
				"venusaur":  72,
				"snorlax":   65,
			},
			DefaultPopularity: 40,
		},
		Macro: MacroBands{
			BTCStrongPct:   50,
			BTCStrongAdd:   30,
			BTCModeratePct: 20,
			BTCModerateAdd: 20,
			BTCPositiveAdd: 10,
			BTCCrashPct:    -20,
			BTCCrashSub:    15,

			FGEuphoric:    80,
			FGEuphoricAdd: 40,
			FGGreedy:      60,
			FGGreedyAdd:   25,
			FGNeutral:     40,
			FGNeutralAdd:  10,
			FGFearful:     20,
			FGFearfulSub:  20,

			VIXCalm:        15,
			VIXCalmAdd:     30,
			VIXNormal:      20,
			VIXNormalAdd:   15,
			VIXStressed:    30,
			VIXStressedSub: 20,
		},
	}
}

// clamp bounds v to [0,100]. Applied once, at the end of each scorer;
// negative intermediate contributions are expected.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
