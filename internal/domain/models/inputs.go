package models

import "strings"

// PopulationReport is the grading-population input for the scarcity
// dimension, as returned by the population provider.
type PopulationReport struct {
	CardName    string `json:"cardName"`
	SetID       string `json:"setId"`
	PSA10Count  int    `json:"psa10Count"`
	TotalGraded int    `json:"totalGraded"`
	Rarity      string `json:"rarity"`
	IsVintage   bool   `json:"isVintage"`
}

// SocialMentions holds raw mention counts per channel. Channels are
// weighted differently when fused into the sentiment buzz metric.
type SocialMentions struct {
	Reddit  int `json:"reddit"`
	Twitter int `json:"twitter"`
	YouTube int `json:"youtube"`
	Discord int `json:"discord"`
}

// SentimentInput bundles everything the sentiment dimension consumes.
type SentimentInput struct {
	Mentions           SocialMentions `json:"mentions"`
	BuyOrders          int            `json:"buyOrders"`
	SellOrders         int            `json:"sellOrders"`
	SearchVolumeChange float64        `json:"searchVolumeChange"` // percent
	PokemonName        string         `json:"pokemonName"`
	Rarity             string         `json:"rarity"`
	IsGraded           bool           `json:"isGraded"`
	GradedScore        float64        `json:"gradedScore"`
}

// MacroSnapshot is the market-environment input for the macro dimension.
type MacroSnapshot struct {
	BTCChange30d   float64 `json:"btcChange30d"` // percent
	FearGreedIndex float64 `json:"fearGreedIndex"`
	VIX            float64 `json:"vix"`
}

// Verdict is the enumerated form of an external qualitative analysis.
// Free text from the AI collaborator is mapped to a Verdict exactly once
// at ingestion; the aggregation logic never re-matches substrings.
type Verdict string

const (
	VerdictBuy     Verdict = "buy"
	VerdictSell    Verdict = "sell"
	VerdictNeutral Verdict = "neutral"
)

// verdict keyword tables; the upstream analysis mixes English and French.
var (
	buyKeywords  = []string{"buy", "achat", "acheter"}
	sellKeywords = []string{"sell", "vente", "vendre"}
)

// ParseVerdict maps a free-text analysis to a Verdict. Keywords are
// matched on whole words so unrelated words containing "buy" or "sell"
// as substrings do not trigger a vote.
func ParseVerdict(text string) Verdict {
	if text == "" {
		return VerdictNeutral
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, w := range words {
		for _, k := range buyKeywords {
			if w == k {
				return VerdictBuy
			}
		}
		for _, k := range sellKeywords {
			if w == k {
				return VerdictSell
			}
		}
	}
	return VerdictNeutral
}
