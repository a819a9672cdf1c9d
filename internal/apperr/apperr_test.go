package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{ErrInvalidInput, http.StatusMethodNotAllowed, "Invalid input"},
		{ErrDuplicateID, http.StatusMethodNotAllowed, "Envelope ID already exists"},
		{ErrDuplicateName, http.StatusMethodNotAllowed, "Envelope name already exists"},
		{ErrNegativeAmount, http.StatusMethodNotAllowed, "Negative amount"},
		{ErrNotEmpty, http.StatusMethodNotAllowed, "Envelope not empty"},
		{ErrInsufficientFunds, http.StatusMethodNotAllowed, "Incufficient funds"},
		{ErrUseUpdate, http.StatusBadRequest, `Use PUT "/envelopes/{envelopeID}" for updating`},
		{ErrUnexpected, http.StatusInternalServerError, "Something unexpected went wrong"},
	}
	for _, tt := range tests {
		status, msg := Translate(tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.message, msg)
	}
}

func TestTranslateWrapped(t *testing.T) {
	status, msg := Translate(fmt.Errorf("transfer: %w", ErrInsufficientFunds))
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "Incufficient funds", msg)
}

func TestTranslateFallback(t *testing.T) {
	status, msg := Translate(errors.New("driver: bad connection"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Something unexpected went wrong", msg)
}
