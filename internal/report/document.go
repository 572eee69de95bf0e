package report

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrDocument is returned when a report cannot be read or is not valid JSON
	ErrDocument = errors.New("invalid report document")

	// ErrFieldNotFound is returned when a path segment is missing or its parent is not an object
	ErrFieldNotFound = errors.New("field not found")

	// ErrNotNumber is returned when the resolved value is not a JSON number
	ErrNotNumber = errors.New("field must be a number")
)

// Document is a validated JSON report
type Document struct {
	source string
	root   gjson.Result
}

// Load reads and validates the report at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.source = path

	return doc, nil
}

// Parse validates raw JSON and wraps it in a Document
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrDocument)
	}

	return &Document{root: gjson.ParseBytes(data)}, nil
}

// Source returns the path the document was loaded from, empty for parsed documents
func (d *Document) Source() string {
	return d.source
}

// Lookup walks path through nested objects and returns the value found there
func (d *Document) Lookup(path []string) (gjson.Result, error) {
	current := d.root
	for i, segment := range path {
		if !current.IsObject() {
			return gjson.Result{}, fmt.Errorf("%w: %s is not an object", ErrFieldNotFound, joinPath(path[:i]))
		}

		next := current.Get(gjson.Escape(segment))
		if !next.Exists() {
			return gjson.Result{}, fmt.Errorf("%w: %s", ErrFieldNotFound, joinPath(path[:i+1]))
		}
		current = next
	}

	return current, nil
}

// Number resolves path and returns its value when it is a JSON number.
// Booleans are not numbers.
func (d *Document) Number(path []string) (float64, error) {
	value, err := d.Lookup(path)
	if err != nil {
		return 0, err
	}

	if value.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s is %s", ErrNotNumber, joinPath(path), describe(value))
	}

	return value.Num, nil
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}

	return strings.Join(path, ".")
}

func describe(value gjson.Result) string {
	switch {
	case value.Type == gjson.True, value.Type == gjson.False:
		return "a boolean"
	case value.Type == gjson.String:
		return "a string"
	case value.Type == gjson.Null:
		return "null"
	case value.IsObject():
		return "an object"
	case value.IsArray():
		return "an array"
	default:
		return value.Type.String()
	}
}
