package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatorCollectsAllIssues(t *testing.T) {
	v := NewValidator()
	v.Required("firstName", "", "First name is required")
	v.Required("lastName", " ", "Last name is required")
	v.Email("email", "not-an-email", "Valid email is required")

	issues := v.Issues()
	require.Len(t, issues, 3)
	require.Equal(t, "firstName", issues[0].Field)
}

func TestEnumPassesEmptyValue(t *testing.T) {
	v := NewValidator()
	v.Enum("status", "", []string{"active", "inactive"}, "must be one of active, inactive")
	require.False(t, v.HasIssues())

	v.Enum("status", "retired", []string{"active", "inactive"}, "must be one of active, inactive")
	require.True(t, v.HasIssues())
}

func TestFloatRangeNilPasses(t *testing.T) {
	v := NewValidator()
	v.FloatRange("overallRating", nil, 1, 5, "must be between 1 and 5")
	require.False(t, v.HasIssues())

	outOfRange := 5.5
	v.FloatRange("overallRating", &outOfRange, 1, 5, "must be between 1 and 5")
	require.True(t, v.HasIssues())
}

func TestDateAcceptsPlainAndRFC3339(t *testing.T) {
	v := NewValidator()

	parsed, ok := v.Date("startDate", "2025-09-01", "Valid start date is required")
	require.True(t, ok)
	require.Equal(t, 2025, parsed.Year())

	_, ok = v.Date("endDate", "2025-09-01T00:00:00Z", "Valid end date is required")
	require.True(t, ok)

	_, ok = v.Date("badDate", "September 1st", "must be a valid date")
	require.False(t, ok)
	require.True(t, v.HasIssues())
}

func TestRejectWritesUniformBody(t *testing.T) {
	v := NewValidator()
	v.Add("days", "Days must be a positive integer")

	rec := httptest.NewRecorder()
	require.True(t, v.Reject(rec))
	require.Equal(t, 400, rec.Code)
	require.JSONEq(t, `{"errors":[{"field":"days","message":"Days must be a positive integer"}]}`, rec.Body.String())
}

func TestRejectNoIssuesIsNoop(t *testing.T) {
	v := NewValidator()

	rec := httptest.NewRecorder()
	require.False(t, v.Reject(rec))
	require.Equal(t, 200, rec.Code)
	require.Empty(t, rec.Body.String())
}
