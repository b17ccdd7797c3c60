package validator

import (
	"errors"
	"testing"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventForm struct {
	Title         string    `binding:"required,min=2"`
	StartDateTime time.Time `binding:"required"`
	EndDateTime   time.Time `binding:"required,gtfield=StartDateTime"`
	Gender        string    `binding:"omitempty,oneof=MASCULINO FEMENINO"`
}

func validate(t *testing.T, form eventForm) error {
	t.Helper()
	v := playground.New()
	v.SetTagName("binding")
	return v.Struct(form)
}

func TestFormatValidationError(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		form eventForm
		want string
	}{
		{
			name: "missing title",
			form: eventForm{StartDateTime: start, EndDateTime: start.Add(time.Hour)},
			want: "Title is required",
		},
		{
			name: "short title",
			form: eventForm{Title: "x", StartDateTime: start, EndDateTime: start.Add(time.Hour)},
			want: "Title must be at least 2 characters",
		},
		{
			name: "end before start",
			form: eventForm{Title: "Retreat", StartDateTime: start, EndDateTime: start.Add(-time.Hour)},
			want: "End date must be after Start date",
		},
		{
			name: "bad gender value",
			form: eventForm{Title: "Retreat", StartDateTime: start, EndDateTime: start.Add(time.Hour), Gender: "OTRO"},
			want: "Gender must be one of: MASCULINO FEMENINO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(t, tt.form)
			require.Error(t, err)
			assert.Contains(t, FormatValidationError(err), tt.want)
		})
	}
}

func TestFormatValidationErrorPassthrough(t *testing.T) {
	err := errors.New("unexpected EOF")
	assert.Equal(t, "unexpected EOF", FormatValidationError(err))
}
