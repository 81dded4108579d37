package sentiment

import (
	"github.com/jonreiter/govader"
)

// VaderScorer scores polarity with the VADER lexicon. The compound score is
// normalised to [-1, 1].
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (s *VaderScorer) Polarity(text string) float64 {
	if text == "" {
		return 0
	}
	return s.analyzer.PolarityScores(text).Compound
}
