package moderation

import (
	"context"
	"encoding/json"
	"io"

	"github.com/NeuralTrust/content-analyzer/pkg/domain"
	"github.com/NeuralTrust/content-analyzer/pkg/types"
	"github.com/sirupsen/logrus"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

type ContentAnalyzer interface {
	Analyze(ctx context.Context, text string) (types.Report, error)
}

// Result is either a report (Ok) or a classified failure.
type Result struct {
	Report  types.Report
	Kind    domain.ErrorKind
	Message string
	ok      bool
}

func Ok(report types.Report) Result {
	return Result{Report: report, ok: true}
}

func Err(kind domain.ErrorKind, msg string) Result {
	return Result{Kind: kind, Message: msg}
}

// FromError classifies err with domain.KindOf.
func FromError(err error) Result {
	return Err(domain.KindOf(err), err.Error())
}

func (r Result) IsOk() bool {
	return r.ok
}

func (r Result) ExitCode() int {
	if r.ok {
		return ExitOK
	}
	return ExitFailure
}

// WriteTo writes the result as a single JSON line.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var (
		payload []byte
		err     error
	)
	if r.ok {
		payload, err = json.Marshal(r.Report)
	} else {
		payload, err = json.Marshal(types.NewErrorReport(r.Message))
	}
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(payload, '\n'))
	return int64(n), err
}

type Runner struct {
	analyzer ContentAnalyzer
	logger   logrus.FieldLogger
}

func NewRunner(analyzer ContentAnalyzer, logger logrus.FieldLogger) *Runner {
	return &Runner{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Run decodes input, analyzes its content and returns the verdict. It never
// panics and never returns an error; failures are carried by the Result.
func (r *Runner) Run(ctx context.Context, input []byte) Result {
	req, err := DecodeRequest(input)
	if err != nil {
		r.logger.WithError(err).WithField("kind", domain.KindOf(err)).Warn("failed to decode input")
		return FromError(err)
	}
	if !req.Present {
		r.logger.Debug("no string content in input, analyzing empty text")
	}

	report, err := r.analyzer.Analyze(ctx, req.Content)
	if err != nil {
		r.logger.WithError(err).Error("content analysis failed")
		return Err(domain.AnalysisFailure, err.Error())
	}

	entry := r.logger.WithFields(logrus.Fields{
		"word_count":     report.WordCount,
		"char_count":     report.CharCount,
		"has_bad_words":  report.HasBadWords,
		"sentiment":      report.Sentiment,
		"is_appropriate": report.IsAppropriate,
	})
	if reason := report.Reason(); reason != "" {
		entry.Info(reason)
	} else {
		entry.Debug("content analyzed")
	}
	return Ok(report)
}
