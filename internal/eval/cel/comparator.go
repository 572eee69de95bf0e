package cel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// ErrInvalidOperator is returned for operator text outside the supported set
var ErrInvalidOperator = errors.New("invalid operator")

// operators maps each supported symbol to its CEL expression
var operators = map[string]string{
	"<":  "lhs < rhs",
	">":  "lhs > rhs",
	"<=": "lhs <= rhs",
	">=": "lhs >= rhs",
	"==": "lhs == rhs",
	"!=": "lhs != rhs",
}

// IsOperator reports whether op is a supported comparison operator
func IsOperator(op string) bool {
	_, ok := operators[op]
	return ok
}

// Comparator evaluates threshold comparisons
type Comparator struct {
	env   *cel.Env
	cache map[string]cel.Program
	mu    sync.RWMutex
}

// NewComparator creates a new comparator
func NewComparator() *Comparator {
	env, err := cel.NewEnv(
		cel.Variable("lhs", cel.DoubleType),
		cel.Variable("rhs", cel.DoubleType),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create CEL environment: %v", err))
	}

	return &Comparator{
		env:   env,
		cache: make(map[string]cel.Program),
	}
}

// Compare applies op to lhs and rhs
func (c *Comparator) Compare(op string, lhs, rhs float64) (bool, error) {
	program, err := c.getProgram(op)
	if err != nil {
		return false, err
	}

	out, _, err := program.Eval(map[string]interface{}{
		"lhs": lhs,
		"rhs": rhs,
	})
	if err != nil {
		return false, fmt.Errorf("evaluation failed: %w", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("comparison %q returned %T, expected bool", op, out.Value())
	}

	return result, nil
}

// getProgram gets a compiled program from cache or compiles it
func (c *Comparator) getProgram(op string) (cel.Program, error) {
	expression, ok := operators[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}

	c.mu.RLock()
	if program, ok := c.cache[op]; ok {
		c.mu.RUnlock()
		return program, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Check again in case another goroutine compiled it
	if program, ok := c.cache[op]; ok {
		return program, nil
	}

	ast, issues := c.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("parse error: %w", issues.Err())
	}

	program, err := c.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program generation error: %w", err)
	}

	c.cache[op] = program

	return program, nil
}
