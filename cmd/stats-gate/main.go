package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aescanero/stats-gate/internal/config"
	"github.com/aescanero/stats-gate/internal/eval/cel"
	"github.com/aescanero/stats-gate/internal/eval/template"
	"github.com/aescanero/stats-gate/internal/gate"
	"github.com/aescanero/stats-gate/internal/publish"
	"github.com/aescanero/stats-gate/internal/report"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

const (
	exitPass = 0
	exitFail = 1
)

func main() {
	passed, err := run(context.Background(), os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(exitFail)
	}

	if !passed {
		os.Exit(exitFail)
	}
	os.Exit(exitPass)
}

// run evaluates the configured conditions. A non-nil error means the run could not
// evaluate at all (bad arguments or an unreadable report), which is distinct from
// a verdict that failed.
func run(ctx context.Context, args []string, stdout io.Writer) (bool, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return false, err
	}

	engine := template.NewEngine()

	if cfg.Help {
		if err := printHelp(stdout, engine); err != nil {
			return false, err
		}
		return true, nil
	}

	logger, err := initLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return false, fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration loaded",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("config", cfg.String()),
	)

	if cfg.Verbose {
		logger.Info("evaluating stats file", zap.String("file", cfg.StatsFile))
	}

	doc, err := report.Load(cfg.StatsFile)
	if err != nil {
		return false, fmt.Errorf("failed to load stats file: %w", err)
	}

	evaluator := gate.NewEvaluator(cel.NewComparator(), logger, gate.Options{
		Verbose: cfg.Verbose,
		Lenient: cfg.Lenient,
	})
	verdict := evaluator.Evaluate(doc, cfg.Conditions)

	if cfg.Verbose {
		if err := printSummary(stdout, engine, verdict); err != nil {
			logger.Error("failed to render summary", zap.Error(err))
		}
	}

	if cfg.PublishEnabled() {
		publishVerdict(ctx, cfg, logger, publish.NewEvent(doc.Source(), cfg.Conditions, verdict))
	}

	return verdict.Passed, nil
}

// publishVerdict sends the verdict to Redis. Failures never change the verdict.
func publishVerdict(ctx context.Context, cfg *config.Config, logger *zap.Logger, event publish.Event) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close redis connection", zap.Error(err))
		}
	}()

	publisher := publish.NewPublisher(redisClient, cfg.ResultStream, cfg.PublishTimeout, logger)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish verdict",
			zap.String("addr", cfg.RedisAddr),
			zap.String("stream", cfg.ResultStream),
			zap.Error(err),
		)
	}
}

// initLogger initializes the logger
func initLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if format == "console" {
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
