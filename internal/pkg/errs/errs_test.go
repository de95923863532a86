package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	dbDown := errors.New("connection refused")
	badFormat := errors.New("missing @")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "parcel not found",
			err:      errs.NewObjectNotFoundError("parcel", "PKG1A2B3C"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: parcel PKG1A2B3C",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("delivery", 42, dbDown),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: delivery 42 (cause: connection refused)",
		},
		{
			name:     "invalid email",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email",
		},
		{
			name:     "invalid email with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("email", badFormat),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email (cause: missing @)",
		},
		{
			name:     "weight out of range",
			err:      errs.NewValueIsOutOfRangeError("weight", -2.5, 0.1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -2.5 is weight, min value is 0.1, max value is 1000",
		},
		{
			name:     "attempts out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("attempts", 4, 0, 3, badFormat),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 4 is attempts, min value is 0, max value is 3 (cause: missing @)",
		},
		{
			name:     "name required",
			err:      errs.NewValueIsRequiredError("recipient.name"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: recipient.name",
		},
		{
			name:     "courier required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("courier", badFormat),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: courier (cause: missing @)",
		},
		{
			name:     "access denied",
			err:      errs.NewAccessDeniedError("read delivery", "not the assigned courier"),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: read delivery (not the assigned courier)",
		},
		{
			name:     "access denied without reason",
			err:      errs.NewAccessDeniedError("delete parcel", ""),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: delete parcel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handler: %w", tt.err), tt.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	cause := errors.New("row scan")

	notFound := errs.NewObjectNotFoundErrorWithCause("user", "u-1", cause)
	assert.Equal(t, "user", notFound.ParamName)
	assert.Equal(t, "u-1", notFound.ID)
	assert.Equal(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("cost", 0.0, 0.01, 10000.0)
	assert.Equal(t, "cost", outOfRange.ParamName)
	assert.Equal(t, 0.0, outOfRange.Value)
	assert.Equal(t, 0.01, outOfRange.Min)
	assert.Equal(t, 10000.0, outOfRange.Max)
	require.NoError(t, outOfRange.Cause)

	denied := errs.NewAccessDeniedError("list deliveries", "couriers only")
	assert.Equal(t, "list deliveries", denied.Action)
	assert.Equal(t, "couriers only", denied.Reason)
}

func TestMessagesStayOnOneLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("notes", "left at\r\nfront door", 0, 500)
	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "left at  front door")

	notFound := errs.NewObjectNotFoundError("parcel", "PKG\nINJECTED")
	assert.Equal(t, "object not found: parcel PKG INJECTED", notFound.Error())
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errs.NewValueIsInvalidError("email"), true},
		{errs.NewValueIsRequiredError("name"), true},
		{errs.NewValueIsOutOfRangeError("weight", -1, 0, 100), true},
		{fmt.Errorf("wrapped: %w", errs.NewValueIsInvalidError("status")), true},
		{errors.Join(errs.NewValueIsRequiredError("street"), errs.NewValueIsRequiredError("city")), true},
		{errs.NewObjectNotFoundError("parcel", "1"), false},
		{errs.NewAccessDeniedError("update", ""), false},
		{errors.New("boom"), false},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errs.IsValidation(tt.err), fmt.Sprint(tt.err))
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrAccessDenied,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
