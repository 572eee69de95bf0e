// Package cel compares report values against thresholds using CEL (Common Expression Language).
//
// Each of the six supported relational operators is expressed as a CEL program over two
// double variables, lhs and rhs. Programs are compiled on first use and cached, so a single
// Comparator can be shared across goroutines.
//
// Example usage:
//
//	comparator := cel.NewComparator()
//
//	ok, err := comparator.Compare("<=", 212.5, 500)
//	if errors.Is(err, cel.ErrInvalidOperator) {
//	    // operator was not one of <, >, <=, >=, ==, !=
//	}
//
// Supported operators:
//   - Relational: <, <=, >, >=
//   - Equality: ==, !=
package cel
