package template

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aymerick/raymond"
)

// raymond keeps helpers in a global registry and panics on duplicates
var registerOnce sync.Once

// Engine renders Handlebars templates
type Engine struct {
	cache map[string]*raymond.Template
	mu    sync.RWMutex
}

// NewEngine creates a new template engine
func NewEngine() *Engine {
	registerOnce.Do(registerHelpers)

	return &Engine{
		cache: make(map[string]*raymond.Template),
	}
}

// Render renders a template with the given data
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*raymond.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	e.cache[templateStr] = tmpl

	return tmpl, nil
}

func registerHelpers() {
	raymond.RegisterHelper("uppercase", func(str string) string {
		return strings.ToUpper(str)
	})

	raymond.RegisterHelper("default", func(value interface{}, defaultValue interface{}) interface{} {
		if value == nil || value == "" {
			return defaultValue
		}
		return value
	})
}
