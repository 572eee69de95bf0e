// Package template provides a Handlebars template engine for rendering CLI output.
//
// The engine renders the help text and the verdict summary printed in verbose mode.
//
// Example usage:
//
//	engine := template.NewEngine()
//
//	data := map[string]interface{}{
//	    "version": "1.1",
//	    "status":  "pass",
//	}
//
//	result, err := engine.Render("stats-gate v{{version}}: {{uppercase status}}", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Output: stats-gate v1.1: PASS
//
// Use triple braces for values that may contain comparison operators, double braces
// HTML-escape their output:
//
//	{{{condition}}}                        # "Total.errorPct<5"
//
// Built-in helpers:
//   - uppercase - Convert string to uppercase
//   - default - Return default value if first arg is empty
package template
