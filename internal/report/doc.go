// Package report loads JMeter summary reports and resolves numeric fields in them.
//
// A report is the statistics.json file JMeter 5.1.1+ writes when a test run is
// generated with the dashboard option. The document is validated once on load
// and then navigated in place with gjson, so lookups never re-decode the file.
//
// Example usage:
//
//	doc, err := report.Load("results/statistics.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pct, err := doc.Number([]string{"Total", "errorPct"})
//	switch {
//	case errors.Is(err, report.ErrFieldNotFound):
//	    // path does not exist
//	case errors.Is(err, report.ErrNotNumber):
//	    // value exists but is a string, bool, null, object or array
//	}
//
// Field paths address nested objects only. Arrays are never indexed, even when a
// segment is numeric.
package report
