package validate

import (
	"testing"

	"budgetd/internal/apperr"
	"budgetd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"json number", float64(3), 3, true},
		{"zero", float64(0), 0, true},
		{"numeric string", "42", 42, true},
		{"fractional", 3.5, 0, false},
		{"negative", float64(-1), 0, false},
		{"negative string", "-1", 0, false},
		{"word", "talk", 0, false},
		{"absent", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"json number", 77.77, 77.77, true},
		{"zero", float64(0), 0, true},
		{"negative passes coercion", -5.0, -5.0, true},
		{"numeric string", "12.5", 12.5, true},
		{"nan string", "NaN", 0, false},
		{"word", "lots", 0, false},
		{"absent", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEnvelopeAccepted(t *testing.T) {
	n, err := Envelope(Candidate{ID: float64(3), Name: "toys", Amount: 77.77}, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, n.ID)
	assert.Equal(t, int64(3), *n.ID)
	assert.Equal(t, "toys", n.Name)
	assert.Equal(t, 77.77, n.Amount)
}

func TestEnvelopeWithoutID(t *testing.T) {
	n, err := Envelope(Candidate{Name: "toys", Amount: 10.0}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, n.ID)
}

func TestEnvelopeDuplicateID(t *testing.T) {
	home := &model.Envelope{ID: 0, Name: "home", Amount: 0}
	_, err := Envelope(Candidate{ID: float64(0), Name: "greed", Amount: 77.77}, home, nil)
	assert.ErrorIs(t, err, apperr.ErrDuplicateID)
}

func TestEnvelopeIdentityCheckedBeforeName(t *testing.T) {
	// an existing id with a mismatched name wins over a missing name
	home := &model.Envelope{ID: 0, Name: "home", Amount: 0}
	_, err := Envelope(Candidate{ID: float64(0), Name: "", Amount: 10.0}, home, nil)
	assert.ErrorIs(t, err, apperr.ErrDuplicateID)
}

func TestEnvelopeMissingName(t *testing.T) {
	_, err := Envelope(Candidate{Amount: 10.0}, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestEnvelopeDuplicateName(t *testing.T) {
	home := &model.Envelope{ID: 0, Name: "home", Amount: 0}

	// different id owns the name
	_, err := Envelope(Candidate{ID: float64(5), Name: "home", Amount: 77.77}, nil, home)
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)

	// no id supplied at all
	_, err = Envelope(Candidate{Name: "home", Amount: 77.77}, nil, home)
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)
}

func TestEnvelopeSelfReference(t *testing.T) {
	home := &model.Envelope{ID: 0, Name: "home", Amount: 0}
	n, err := Envelope(Candidate{ID: float64(0), Name: "home", Amount: 77.77}, home, home)
	require.NoError(t, err)
	assert.Equal(t, "home", n.Name)
}

func TestEnvelopeZeroAmountAllowed(t *testing.T) {
	// the legacy truthiness check rejected an explicit 0; that was a bug
	n, err := Envelope(Candidate{Name: "empty", Amount: float64(0)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(0), n.Amount)
}

func TestEnvelopeMissingAmount(t *testing.T) {
	_, err := Envelope(Candidate{Name: "toys"}, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestEnvelopeNegativeAmount(t *testing.T) {
	_, err := Envelope(Candidate{ID: float64(5), Name: "hunger", Amount: -77.77}, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrNegativeAmount)
}

func TestEnvelopeFirstFailureWins(t *testing.T) {
	// missing name and bad amount in one payload: name reported, amount never reached
	_, err := Envelope(Candidate{ID: "talk", Amount: "given"}, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
