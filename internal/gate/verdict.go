package gate

// Status is the result category of a single condition
type Status string

const (
	// StatusPass means the comparison held
	StatusPass Status = "pass"

	// StatusFail means the comparison was evaluated and did not hold
	StatusFail Status = "fail"

	// StatusParseFailure means the text did not match the condition grammar
	StatusParseFailure Status = "parse_failure"

	// StatusFieldNotFound means the field path does not exist in the report
	StatusFieldNotFound Status = "field_not_found"

	// StatusNonNumericField means the field exists but is not a number
	StatusNonNumericField Status = "non_numeric_field"

	// StatusInvalidOperator means the operator is not one of <, >, <=, >=, ==, !=
	StatusInvalidOperator Status = "invalid_operator"
)

// Outcome records how one condition evaluated
type Outcome struct {
	Condition string   `json:"condition"`
	Status    Status   `json:"status"`
	Field     string   `json:"field,omitempty"`
	Operator  string   `json:"operator,omitempty"`
	Threshold float64  `json:"threshold"`
	Value     *float64 `json:"value,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// Passed reports whether the condition held
func (o Outcome) Passed() bool {
	return o.Status == StatusPass
}

// Verdict is the result of evaluating a condition list
type Verdict struct {
	Outcomes []Outcome `json:"outcomes"`
	Passed   bool      `json:"passed"`
}

// Counts returns the number of passing and failing conditions
func (v *Verdict) Counts() (passed, failed int) {
	for _, o := range v.Outcomes {
		if o.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
