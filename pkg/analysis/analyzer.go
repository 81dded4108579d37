package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/content-analyzer/pkg/domain"
	"github.com/NeuralTrust/content-analyzer/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// SentimentScorer returns the polarity of a text, negative for negative tone
// and positive for positive tone.
type SentimentScorer interface {
	Polarity(text string) float64
}

type Analyzer struct {
	bannedWords []string
	scorer      SentimentScorer
}

func NewAnalyzer(bannedWords []string, scorer SentimentScorer) *Analyzer {
	words := make([]string, 0, len(bannedWords))
	for _, w := range bannedWords {
		w = cases.Lower(language.Und).String(norm.NFC.String(w))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return &Analyzer{
		bannedWords: words,
		scorer:      scorer,
	}
}

// BannedWords returns a copy of the folded list the analyzer matches against.
func (a *Analyzer) BannedWords() []string {
	words := make([]string, len(a.bannedWords))
	copy(words, a.bannedWords)
	return words
}

// Analyze builds the report for text. Empty text yields types.EmptyReport
// without consulting the sentiment scorer.
func (a *Analyzer) Analyze(ctx context.Context, text string) (report types.Report, err error) {
	if err := ctx.Err(); err != nil {
		return types.Report{}, domain.NewAnalysisError(domain.AnalysisFailure, err)
	}
	if text == "" {
		return types.EmptyReport(), nil
	}

	defer func() {
		if r := recover(); r != nil {
			report = types.Report{}
			err = domain.NewAnalysisError(
				domain.AnalysisFailure,
				fmt.Errorf("sentiment scoring panicked: %v", r),
			)
		}
	}()

	sentiment, err := a.polarity(text)
	if err != nil {
		return types.Report{}, err
	}

	hasBadWords := a.HasBadWords(text)
	return types.Report{
		WordCount:     len(strings.Fields(text)),
		CharCount:     utf8.RuneCountInString(text),
		HasBadWords:   hasBadWords,
		Sentiment:     sentiment,
		IsAppropriate: !hasBadWords,
	}, nil
}

// HasBadWords reports whether any banned word occurs anywhere in text,
// ignoring case. Matching is by substring, so a banned word inside a longer
// word counts as a hit.
func (a *Analyzer) HasBadWords(text string) bool {
	for _, folded := range foldings(text) {
		for _, w := range a.bannedWords {
			if strings.Contains(folded, w) {
				return true
			}
		}
	}
	return false
}

func (a *Analyzer) polarity(text string) (float64, error) {
	if a.scorer == nil {
		return 0, nil
	}
	score := a.scorer.Polarity(text)
	if math.IsNaN(score) {
		return 0, domain.NewAnalysisError(domain.AnalysisFailure, domain.ErrNaNScore)
	}
	return math.Max(-1, math.Min(1, score)), nil
}

// foldings lowercases text under the root and Turkish casing rules. The
// Turkish pass maps I to ı and İ to i, which the root rules do not.
func foldings(text string) []string {
	normalized := norm.NFC.String(text)
	root := cases.Lower(language.Und).String(normalized)
	turkish := cases.Lower(language.Turkish).String(normalized)
	if root == turkish {
		return []string{root}
	}
	return []string{root, turkish}
}
