package gate

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned when condition text does not match the grammar
var ErrInvalidExpression = errors.New("invalid expression")

var conditionPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.]*)([<>=!]+)([0-9]+(?:\.[0-9]+)?)`)

// Condition is a single parsed threshold check
type Condition struct {
	Raw       string
	Field     string
	Path      []string
	Operator  string
	Threshold float64
}

// ParseCondition parses one condition. Surrounding whitespace is ignored. Unless
// lenient is set the whole text must match; lenient parsing ignores anything after
// a valid prefix. The operator is not validated here.
func ParseCondition(raw string, lenient bool) (*Condition, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty condition", ErrInvalidExpression)
	}

	m := conditionPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpression, text)
	}

	if !lenient && len(m[0]) != len(text) {
		return nil, fmt.Errorf("%w: unexpected trailing text %q", ErrInvalidExpression, text[len(m[0]):])
	}

	field := m[1]
	path := strings.Split(field, ".")
	for _, segment := range path {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in field %q", ErrInvalidExpression, field)
		}
	}

	threshold, err := strconv.ParseFloat(m[3], 64)
	if err != nil || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: threshold %q must be a finite number", ErrInvalidExpression, m[3])
	}

	return &Condition{
		Raw:       raw,
		Field:     field,
		Path:      path,
		Operator:  m[2],
		Threshold: threshold,
	}, nil
}
