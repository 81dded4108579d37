package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NeuralTrust/content-analyzer/pkg/analysis"
	"github.com/NeuralTrust/content-analyzer/pkg/app/moderation"
	"github.com/NeuralTrust/content-analyzer/pkg/config"
	"github.com/NeuralTrust/content-analyzer/pkg/domain"
	"github.com/NeuralTrust/content-analyzer/pkg/infra/logger"
	"github.com/NeuralTrust/content-analyzer/pkg/infra/sentiment"
	"github.com/NeuralTrust/content-analyzer/pkg/version"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr))
}

// run analyzes one payload read from stdin and writes the verdict line to
// stdout. Logs only ever go to stderr or the configured log file.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	envErr := godotenv.Load(envFile)

	cfg, cfgErr := config.Load(os.Getenv("CONFIG_PATH"))
	if cfgErr != nil {
		cfg = &config.Config{Log: config.LogConfig{Level: config.DefaultLogLevel}}
	}

	log, closeLog, err := logger.NewLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger, using stderr only: %v\n", err)
		log, closeLog, _ = logger.NewLogger(config.LogConfig{Level: cfg.Log.Level}, stderr)
	}
	defer closeLog()

	entry := log.WithField("analysis_id", uuid.New().String())
	if envErr != nil {
		entry.WithField("env_file", envFile).Debug("no .env file found, using system environment variables")
	}
	if cfgErr != nil {
		entry.WithError(cfgErr).Warn("failed to load config, using defaults")
	}
	entry.WithFields(logrus.Fields(version.GetInfo().Fields())).Debug("starting content analysis")

	runner := moderation.NewRunner(
		analysis.NewAnalyzer(analysis.DefaultBannedWords(), sentiment.NewVaderScorer()),
		entry,
	)

	var result moderation.Result
	input, err := io.ReadAll(stdin)
	if err != nil {
		entry.WithError(err).Error("failed to read stdin")
		result = moderation.Err(domain.AnalysisFailure, fmt.Sprintf("failed to read input: %v", err))
	} else {
		result = runner.Run(ctx, input)
	}

	if _, err := result.WriteTo(stdout); err != nil {
		entry.WithError(err).Error("failed to write result")
		return moderation.ExitFailure
	}
	return result.ExitCode()
}
