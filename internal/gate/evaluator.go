package gate

import (
	"errors"
	"strings"

	"github.com/aescanero/stats-gate/internal/eval/cel"
	"github.com/aescanero/stats-gate/internal/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Separator delimits conditions in a condition list
const Separator = ";"

// Document resolves numeric fields by path
type Document interface {
	Number(path []string) (float64, error)
}

// Comparator applies a comparison operator
type Comparator interface {
	Compare(op string, lhs, rhs float64) (bool, error)
}

// Options controls parsing and diagnostics
type Options struct {
	// Verbose logs per-condition diagnostics at info level instead of debug
	Verbose bool

	// Lenient accepts conditions with trailing text after a valid prefix
	Lenient bool
}

// Evaluator evaluates condition lists against a report
type Evaluator struct {
	comparator Comparator
	logger     *zap.Logger
	opts       Options
}

// NewEvaluator creates a new evaluator
func NewEvaluator(comparator Comparator, logger *zap.Logger, opts Options) *Evaluator {
	return &Evaluator{
		comparator: comparator,
		logger:     logger,
		opts:       opts,
	}
}

// Evaluate evaluates every condition in list and ANDs the results
func (e *Evaluator) Evaluate(doc Document, list string) *Verdict {
	parts := strings.Split(list, Separator)
	verdict := &Verdict{
		Outcomes: make([]Outcome, 0, len(parts)),
		Passed:   true,
	}

	for i, raw := range parts {
		outcome := e.evaluateOne(doc, i, raw)
		verdict.Outcomes = append(verdict.Outcomes, outcome)
		verdict.Passed = verdict.Passed && outcome.Passed()
	}

	passed, failed := verdict.Counts()
	e.diag("verdict",
		zap.Bool("passed", verdict.Passed),
		zap.Int("conditions", len(verdict.Outcomes)),
		zap.Int("passed_count", passed),
		zap.Int("failed_count", failed),
	)

	return verdict
}

// evaluateOne evaluates a single raw condition
func (e *Evaluator) evaluateOne(doc Document, index int, raw string) Outcome {
	e.diag("evaluating condition",
		zap.Int("condition_index", index),
		zap.String("condition", raw),
	)

	outcome := Outcome{Condition: raw}

	cond, err := ParseCondition(raw, e.opts.Lenient)
	if err != nil {
		return e.finish(index, outcome, StatusParseFailure, err)
	}
	outcome.Field = cond.Field
	outcome.Operator = cond.Operator
	outcome.Threshold = cond.Threshold

	value, err := doc.Number(cond.Path)
	switch {
	case errors.Is(err, report.ErrNotNumber):
		return e.finish(index, outcome, StatusNonNumericField, err)
	case err != nil:
		return e.finish(index, outcome, StatusFieldNotFound, err)
	}
	outcome.Value = &value

	matched, err := e.comparator.Compare(cond.Operator, value, cond.Threshold)
	switch {
	case errors.Is(err, cel.ErrInvalidOperator):
		return e.finish(index, outcome, StatusInvalidOperator, err)
	case err != nil:
		// comparator failures other than the operator collapse to a plain fail
		return e.finish(index, outcome, StatusFail, err)
	case !matched:
		return e.finish(index, outcome, StatusFail, nil)
	}

	return e.finish(index, outcome, StatusPass, nil)
}

// finish sets the outcome status and logs it
func (e *Evaluator) finish(index int, outcome Outcome, status Status, err error) Outcome {
	outcome.Status = status
	if err != nil {
		outcome.Message = err.Error()
	}

	fields := []zap.Field{
		zap.Int("condition_index", index),
		zap.String("condition", outcome.Condition),
		zap.String("status", string(status)),
	}
	if outcome.Value != nil {
		fields = append(fields,
			zap.Float64("value", *outcome.Value),
			zap.Float64("threshold", outcome.Threshold),
		)
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	e.diag("condition evaluated", fields...)

	return outcome
}

// diag writes a diagnostic entry, visible at the default level only in verbose mode
func (e *Evaluator) diag(msg string, fields ...zap.Field) {
	level := zapcore.DebugLevel
	if e.opts.Verbose {
		level = zapcore.InfoLevel
	}

	if ce := e.logger.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}
