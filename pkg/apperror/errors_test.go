package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("group 3: %w", ErrNotFound), want: http.StatusNotFound},
		{name: "invalid input", err: ErrInvalidInput, want: http.StatusBadRequest},
		{name: "event not approved", err: ErrEventNotApproved, want: http.StatusBadRequest},
		{name: "invalid transition", err: ErrInvalidTransition, want: http.StatusBadRequest},
		{name: "duplicate", err: ErrDuplicate, want: http.StatusConflict},
		{name: "app error code wins", err: New(http.StatusTeapot, "teapot", nil), want: http.StatusTeapot},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatus(tt.err))
		})
	}
}
