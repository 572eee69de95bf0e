// Package gate evaluates threshold conditions against a JMeter summary report.
//
// A condition list is a semicolon-delimited string of checks, each of the form
// field-path, operator, number:
//
//	Total.errorPct<5;Total.pct2ResTime<1000
//
// The field path addresses nested objects in the report, the operator is one of
// <, >, <=, >=, ==, != and the threshold is a decimal literal. The verdict is the
// logical AND of every condition. All conditions are evaluated even after one
// fails, so diagnostics cover the whole list.
//
// Example usage:
//
//	doc, err := report.Load("statistics.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	evaluator := gate.NewEvaluator(cel.NewComparator(), logger, gate.Options{Verbose: true})
//	verdict := evaluator.Evaluate(doc, "Total.errorPct<5;Total.pct2ResTime<1000")
//	if !verdict.Passed {
//	    os.Exit(1)
//	}
//
// A condition never aborts evaluation. Malformed text, missing fields, non-numeric
// values and unknown operators all make that single condition false and are
// recorded in its Outcome.
package gate
