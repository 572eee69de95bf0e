package main

import (
	"fmt"
	"io"

	"github.com/aescanero/stats-gate/internal/eval/template"
	"github.com/aescanero/stats-gate/internal/gate"
)

const helpTemplate = `  JMeter Stats Evaluator (v{{version}}):
    Post-processing step for JMeter 5.1.1+ load tests which optionally
    generate summary stats in JSON format on test completion.

  Command line arguments:
    NOTE: All arguments with values must be supplied in the form: --key=value

    --if:      The input file to process (required, env STATS_FILE)

    --eval:    A semicolon-delimited list of conditions to evaluate on the input
               JSON file (required, env STATS_EVAL):
                The left-hand side of a condition is a fully-qualified JSON property name
                The right-hand side of a condition is a numeric value
                The following operators are allowed between both operands:
                <, >, <=, >=, ==, !=
                Example: "Total.errorPct<5;Total.pct2ResTime<1000"

    --verbose: Enable verbose output (env VERBOSE)
    --lenient: Ignore trailing text after a valid condition (env LENIENT_PARSE)
    --help:    Print this help message

  Exit codes:
    {{pass}}: All evaluations successful
    {{fail}}: Evaluations failed or other runtime errors occurred
`

const summaryTemplate = `{{#each outcomes}}{{number}}. {{{condition}}} ....({{uppercase status}}){{#if message}} {{{message}}}{{/if}}
{{/each}}
----------------------------------------------
Conditions evaluated ({{total}}), Passed ({{passed}}), Failed ({{failed}})
{{#if verdict}}All conditions passed.{{else}}{{failed}} condition(s) failed.{{/if}}
`

func printHelp(w io.Writer, engine *template.Engine) error {
	out, err := engine.Render(helpTemplate, map[string]interface{}{
		"version": Version,
		"pass":    exitPass,
		"fail":    exitFail,
	})
	if err != nil {
		return fmt.Errorf("failed to render help: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func printSummary(w io.Writer, engine *template.Engine, verdict *gate.Verdict) error {
	outcomes := make([]map[string]interface{}, 0, len(verdict.Outcomes))
	for i, o := range verdict.Outcomes {
		outcomes = append(outcomes, map[string]interface{}{
			"number":    i + 1,
			"condition": o.Condition,
			"status":    string(o.Status),
			"message":   o.Message,
		})
	}

	passed, failed := verdict.Counts()
	out, err := engine.Render(summaryTemplate, map[string]interface{}{
		"outcomes": outcomes,
		"total":    len(verdict.Outcomes),
		"passed":   passed,
		"failed":   failed,
		"verdict":  verdict.Passed,
	})
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
