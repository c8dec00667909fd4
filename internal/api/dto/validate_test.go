package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	err := Validate(&CreateRequestRequest{Date: "01/06/2024"})
	require.Error(t, err)

	de := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	assert.Equal(t, "required", de.Details["title"])
	assert.Equal(t, "datetime=2006-01-02", de.Details["date"])
}

func TestValidateNestedRecipients(t *testing.T) {
	err := Validate(&AssignRequestRequest{Section: "scribes"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	err = Validate(&AssignRequestRequest{
		Section:    "scribes",
		Recipients: []RecipientPayload{{AssignedToEmail: "not-an-email"}},
	})
	require.Error(t, err)

	assert.NoError(t, Validate(&AssignRequestRequest{
		Section:    "scribes",
		Recipients: []RecipientPayload{{AssignedTo: "s1", AssignedToEmail: "s1@x.com"}},
	}))
}

func TestValidateAvailabilityNeedsFlag(t *testing.T) {
	assert.Error(t, Validate(&SetAvailabilityRequest{Notes: "x"}))
	open := false
	assert.NoError(t, Validate(&SetAvailabilityRequest{Available: &open}))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("date", "2024-06-01"))
	for _, bad := range []string{"", "June 1st", "2024-13-01", "01/06/2024"} {
		err := ValidateDate("date", bad)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation), bad)
	}
}
