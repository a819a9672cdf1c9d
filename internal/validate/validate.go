package validate

import (
	"math"
	"strconv"

	"budgetd/internal/apperr"
	"budgetd/internal/model"
)

// Candidate is a raw envelope payload as it arrives in a request body.
// ID and Amount are untyped because clients may send them as JSON numbers
// or numeric strings; coercion happens here.
type Candidate struct {
	ID     any    `json:"id"`
	Name   string `json:"name"`
	Amount any    `json:"amount"`
}

// Normalized is the validated record ready for persistence. ID is nil when
// the client left assignment to the database.
type Normalized struct {
	ID     *int64
	Name   string
	Amount float64
}

// Envelope decides whether a candidate is acceptable for insert or update.
// byID and byName are the current rows matching the candidate's id and name
// (nil when absent); lookups are the caller's job so this stays pure.
//
// Checks run identity, then name, then amount, and the first failure wins.
func Envelope(c Candidate, byID, byName *model.Envelope) (Normalized, error) {
	var n Normalized

	if id, ok := ParseID(c.ID); ok {
		if byID != nil && byID.Name != c.Name {
			return Normalized{}, apperr.ErrDuplicateID
		}
		n.ID = &id
	}

	if c.Name == "" {
		return Normalized{}, apperr.ErrInvalidInput
	}
	if byName != nil {
		self := n.ID != nil && *n.ID == byName.ID && byName.Name == c.Name
		if !self {
			return Normalized{}, apperr.ErrDuplicateName
		}
	}
	n.Name = c.Name

	amount, ok := ParseAmount(c.Amount)
	if !ok {
		return Normalized{}, apperr.ErrInvalidInput
	}
	if amount < 0 {
		return Normalized{}, apperr.ErrNegativeAmount
	}
	n.Amount = amount

	return n, nil
}

// ParseID coerces a client-supplied id (JSON number, numeric string, or path
// parameter) into a non-negative integer. Fractional values don't qualify.
func ParseID(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || t != math.Trunc(t) || t < 0 || t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case int64:
		if t < 0 {
			return 0, false
		}
		return t, true
	case string:
		id, err := strconv.ParseInt(t, 10, 64)
		if err != nil || id < 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// ParseAmount coerces a client-supplied amount into a float64. Zero is a
// valid amount; absent or non-numeric values are not.
func ParseAmount(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) {
			return 0, false
		}
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
