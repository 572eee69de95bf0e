package cel

import (
	"errors"
	"sync"
	"testing"
)

func TestCompare(t *testing.T) {
	c := NewComparator()

	tests := []struct {
		op       string
		lhs, rhs float64
		want     bool
	}{
		{"<", 2, 5, true},
		{"<", 5, 5, false},
		{">", 6, 5, true},
		{">", 5, 5, false},
		{"<=", 5, 5, true},
		{"<=", 5.01, 5, false},
		{">=", 5, 5, true},
		{">=", 4.99, 5, false},
		{"==", 100, 100, true},
		{"==", 2, 100, false},
		{"!=", 2, 100, true},
		{"!=", 0.5, 0.5, false},
	}

	for _, tt := range tests {
		got, err := c.Compare(tt.op, tt.lhs, tt.rhs)
		if err != nil {
			t.Fatalf("%v %s %v: unexpected error: %v", tt.lhs, tt.op, tt.rhs, err)
		}
		if got != tt.want {
			t.Errorf("%v %s %v: expected %v, got %v", tt.lhs, tt.op, tt.rhs, tt.want, got)
		}
	}
}

func TestCompare_InvalidOperator(t *testing.T) {
	c := NewComparator()

	for _, op := range []string{"<>", "=", "!", "=<", "===", "!==", ""} {
		got, err := c.Compare(op, 1, 1)
		if !errors.Is(err, ErrInvalidOperator) {
			t.Errorf("%q: expected ErrInvalidOperator, got %v", op, err)
		}
		if got {
			t.Errorf("%q: expected false", op)
		}
	}
}

func TestIsOperator(t *testing.T) {
	for _, op := range []string{"<", ">", "<=", ">=", "==", "!="} {
		if !IsOperator(op) {
			t.Errorf("expected %q to be an operator", op)
		}
	}
	if IsOperator("<>") {
		t.Error("expected <> to be rejected")
	}
}

func TestCompare_Concurrent(t *testing.T) {
	c := NewComparator()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := c.Compare("<", float64(i), 8)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != (i < 8) {
				t.Errorf("%d < 8: got %v", i, got)
			}
		}(i)
	}
	wg.Wait()
}
