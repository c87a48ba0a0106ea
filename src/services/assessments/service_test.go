package assessments

import (
	"testing"

	"github.com/NITHINKR06/wellness/src/models"
	"github.com/NITHINKR06/wellness/src/riskmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalResponses() models.ResponseSet {
	rs := models.ResponseSet{}
	for _, q := range riskmodel.Questions {
		rs[q.ID] = false
	}
	rs["q9"] = true
	return rs
}

func validSubmission() *models.AssessmentSubmission {
	return &models.AssessmentSubmission{
		Stage:      models.StagePostpartum,
		Region:     "North",
		SleepHours: 6,
		Responses:  totalResponses(),
	}
}

func TestValidateSubmissionAcceptsCompleteInput(t *testing.T) {
	sub := validSubmission()
	sub.Normalize()
	assert.NoError(t, ValidateSubmission(sub))
}

func TestValidateSubmissionListsMissingIDs(t *testing.T) {
	sub := validSubmission()
	delete(sub.Responses, "q3")
	delete(sub.Responses, "q8")
	sub.Normalize()

	err := ValidateSubmission(sub)
	require.Error(t, err)

	validationErr, ok := err.(*models.ValidationError)
	require.True(t, ok, "expected ValidationError, got %T", err)
	assert.Equal(t, []string{"q3", "q8"}, validationErr.Missing)
}

func TestValidateSubmissionEmptyResponsesListsAllIDs(t *testing.T) {
	sub := validSubmission()
	sub.Responses = models.ResponseSet{}
	sub.Normalize()

	err := ValidateSubmission(sub)
	require.Error(t, err)

	validationErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, riskmodel.QuestionIDs(), validationErr.Missing)
}

func TestValidateSubmissionSleepHoursBounds(t *testing.T) {
	for _, hours := range []float64{-1, 24.5} {
		sub := validSubmission()
		sub.SleepHours = hours
		sub.Normalize()

		err := ValidateSubmission(sub)
		assert.Error(t, err, "sleepHours=%v should be rejected", hours)
		assert.IsType(t, &models.ValidationError{}, err)
	}

	for _, hours := range []float64{0, 24, 7.5} {
		sub := validSubmission()
		sub.SleepHours = hours
		sub.Normalize()
		assert.NoError(t, ValidateSubmission(sub), "sleepHours=%v should be accepted", hours)
	}
}

func TestValidateSubmissionRejectsUnknownStage(t *testing.T) {
	sub := validSubmission()
	sub.Stage = "Fourth Trimester"
	sub.Normalize()

	err := ValidateSubmission(sub)
	assert.IsType(t, &models.ValidationError{}, err)
}

func TestValidateSubmissionRejectsUnknownQuestionID(t *testing.T) {
	sub := validSubmission()
	sub.Responses["q10"] = true
	sub.Normalize()

	err := ValidateSubmission(sub)
	assert.IsType(t, &models.ValidationError{}, err)
}

func TestMiddleEastCountryCoupling(t *testing.T) {
	// Middle East without a country is incomplete.
	sub := validSubmission()
	sub.Region = models.RegionMiddleEast
	sub.Normalize()
	err := ValidateSubmission(sub)
	assert.IsType(t, &models.ValidationError{}, err)

	// Middle East with a country is fine.
	sub.MiddleEastCountry = "Jordan"
	sub.Normalize()
	assert.NoError(t, ValidateSubmission(sub))

	// Any other region drops the country during normalization.
	other := validSubmission()
	other.MiddleEastCountry = "Jordan"
	other.Normalize()
	assert.Empty(t, other.MiddleEastCountry)
	assert.NoError(t, ValidateSubmission(other))
}

func TestValidateSubmissionRequiresRegion(t *testing.T) {
	sub := validSubmission()
	sub.Region = "   "
	sub.Normalize()

	err := ValidateSubmission(sub)
	assert.IsType(t, &models.ValidationError{}, err)
}
