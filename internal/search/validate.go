package search

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultTopN = 5
	maxTopN     = 20

	dayFormat = "2006-01-02"
)

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// normalize trims string fields and applies the topN default and cap.
func (r *Request) normalize() {
	r.District = strings.TrimSpace(r.District)
	r.Purpose = strings.TrimSpace(r.Purpose)
	r.CheckIn = strings.TrimSpace(r.CheckIn)
	r.CheckOut = strings.TrimSpace(r.CheckOut)
	if r.TopN == 0 {
		r.TopN = defaultTopN
	}
	if r.TopN > maxTopN {
		r.TopN = maxTopN
	}
}

// validate enforces the request contract before the core is invoked: the
// ranking core assumes an ordered budget band and an ordered stay window and
// is not required to re-check them.
func (r *Request) validate() error {
	if r.District == "" {
		return &ValidationError{Msg: "district is required"}
	}
	if r.Purpose == "" {
		return &ValidationError{Msg: "purpose is required"}
	}
	if r.BudgetMin < 0 || r.BudgetMax < 0 {
		return &ValidationError{Msg: "budget bounds cannot be negative"}
	}
	if r.BudgetMax < r.BudgetMin {
		return &ValidationError{Msg: "budget_max must be >= budget_min"}
	}
	if r.TopN < 1 {
		return &ValidationError{Msg: "topN must be >= 1"}
	}

	ci, err := time.Parse(dayFormat, r.CheckIn)
	if err != nil {
		return &ValidationError{Msg: fmt.Sprintf("check_in must be YYYY-MM-DD, got %q", r.CheckIn)}
	}
	co, err := time.Parse(dayFormat, r.CheckOut)
	if err != nil {
		return &ValidationError{Msg: fmt.Sprintf("check_out must be YYYY-MM-DD, got %q", r.CheckOut)}
	}
	if co.Before(ci) {
		return &ValidationError{Msg: "check_out must be >= check_in"}
	}
	return nil
}
