package moderation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/NeuralTrust/content-analyzer/pkg/analysis"
	"github.com/NeuralTrust/content-analyzer/pkg/app/moderation"
	"github.com/NeuralTrust/content-analyzer/pkg/domain"
	"github.com/NeuralTrust/content-analyzer/pkg/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedScorer float64

func (s fixedScorer) Polarity(string) float64 {
	return float64(s)
}

type failingAnalyzer struct {
	err error
}

func (f failingAnalyzer) Analyze(context.Context, string) (types.Report, error) {
	return types.Report{}, f.err
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRunner(score float64) *moderation.Runner {
	return moderation.NewRunner(
		analysis.NewAnalyzer(analysis.DefaultBannedWords(), fixedScorer(score)),
		newLogger(),
	)
}

func writeLine(t *testing.T, result moderation.Result) string {
	t.Helper()
	var buf bytes.Buffer
	n, err := result.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	return buf.String()
}

func TestRunner_Run_EmptyContent(t *testing.T) {
	runner := newRunner(0.8)
	expected := `{"word_count":0,"char_count":0,"has_bad_words":false,"sentiment":0,"is_appropriate":true}` + "\n"

	for _, input := range []string{`{"content": ""}`, `{}`, `{"content": 7}`, `[1, 2]`} {
		result := runner.Run(context.Background(), []byte(input))

		require.True(t, result.IsOk(), input)
		assert.Equal(t, moderation.ExitOK, result.ExitCode())
		assert.Equal(t, expected, writeLine(t, result), input)
	}
}

func TestRunner_Run_BadWords(t *testing.T) {
	runner := newRunner(-0.5)

	result := runner.Run(context.Background(), []byte(`{"content": "Bu çok aptal bir şey"}`))

	require.True(t, result.IsOk())
	assert.Equal(t, 0, result.ExitCode())

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(writeLine(t, result)), &out))
	assert.Equal(t, true, out["has_bad_words"])
	assert.Equal(t, false, out["is_appropriate"])
	assert.Equal(t, float64(5), out["word_count"])
	assert.Equal(t, -0.5, out["sentiment"])
	assert.NotContains(t, out, "error")
}

func TestRunner_Run_CleanContent(t *testing.T) {
	runner := newRunner(0.3)

	result := runner.Run(context.Background(), []byte(`{"content": "have a nice day"}`))

	require.True(t, result.IsOk())
	assert.Equal(t, types.Report{
		WordCount:     4,
		CharCount:     15,
		Sentiment:     0.3,
		IsAppropriate: true,
	}, result.Report)
	assert.Equal(t,
		`{"word_count":4,"char_count":15,"has_bad_words":false,"sentiment":0.3,"is_appropriate":true}`+"\n",
		writeLine(t, result),
	)
}

func TestRunner_Run_Failures(t *testing.T) {
	runner := newRunner(0)

	tests := []struct {
		name    string
		input   string
		kind    domain.ErrorKind
		message string
	}{
		{name: "empty stdin", input: "", kind: domain.EmptyInput, message: "empty input"},
		{name: "blank stdin", input: "   \n", kind: domain.EmptyInput, message: "empty input"},
		{name: "not json", input: "not json", kind: domain.MalformedJSON, message: "malformed json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runner.Run(context.Background(), []byte(tt.input))

			require.False(t, result.IsOk())
			assert.Equal(t, moderation.ExitFailure, result.ExitCode())
			assert.Equal(t, tt.kind, result.Kind)

			var out map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(writeLine(t, result)), &out))
			require.Len(t, out, 2)
			assert.Contains(t, out["error"], tt.message)
			assert.Equal(t, false, out["is_appropriate"])
		})
	}
}

func TestRunner_Run_AnalysisFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "plain error", err: errors.New("scorer unavailable")},
		{name: "domain error", err: domain.NewAnalysisError(domain.EmptyInput, errors.New("scorer unavailable"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := moderation.NewRunner(failingAnalyzer{err: tt.err}, newLogger())

			result := runner.Run(context.Background(), []byte(`{"content": "hello"}`))

			require.False(t, result.IsOk())
			assert.Equal(t, domain.AnalysisFailure, result.Kind)
			assert.Equal(t, 1, result.ExitCode())
			assert.Equal(t, `{"error":"scorer unavailable","is_appropriate":false}`+"\n", writeLine(t, result))
		})
	}
}

func TestRunner_Run_Idempotent(t *testing.T) {
	runner := newRunner(0.1)
	input := []byte(`{"content": "Salak mısın sen, normal davran"}`)

	first := writeLine(t, runner.Run(context.Background(), input))
	second := writeLine(t, runner.Run(context.Background(), input))

	assert.Equal(t, first, second)
}

func TestResult_FromError(t *testing.T) {
	result := moderation.FromError(domain.NewMalformedJSONError(errors.New("unexpected token")))

	assert.False(t, result.IsOk())
	assert.Equal(t, domain.MalformedJSON, result.Kind)
	assert.Equal(t, "malformed json: unexpected token", result.Message)

	result = moderation.FromError(errors.New("boom"))
	assert.Equal(t, domain.AnalysisFailure, result.Kind)
}

func TestResult_WriteTo_SingleLine(t *testing.T) {
	result := moderation.Err(domain.MalformedJSON, "bad\ninput")

	line := writeLine(t, result)

	assert.Equal(t, 1, bytes.Count([]byte(line), []byte("\n")))
	assert.Equal(t, byte('\n'), line[len(line)-1])
}
