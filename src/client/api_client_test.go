package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NITHINKR06/wellness/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitClassifiesValidationRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"message":"responses must answer every question","missing":["q3","q8"]}`))
	}))
	defer server.Close()

	api := NewAPIClient(server.URL, StaticToken("test-token"))
	_, err := api.SubmitAssessment(context.Background(), submissionNamed("North"))

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"q3", "q8"}, validationErr.Missing)
	assert.False(t, models.IsNetworkError(err))
}

func TestSubmitClassifiesAuthRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"message":"Invalid or expired token"}`))
	}))
	defer server.Close()

	api := NewAPIClient(server.URL, StaticToken("stale"))
	_, err := api.SubmitAssessment(context.Background(), submissionNamed("North"))

	var authErr *models.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, models.IsNetworkError(err))
}

func TestUnreachableServerIsNetworkClass(t *testing.T) {
	// Bind then close so the port is known-dead.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	api := NewAPIClient(url, StaticToken("test-token"))
	_, err := api.SubmitAssessment(context.Background(), submissionNamed("North"))

	assert.True(t, models.IsNetworkError(err))
}

func TestMissingCredentialIsAuthError(t *testing.T) {
	api := NewAPIClient("http://localhost:0", StaticToken(""))

	_, err := api.ListAssessments(context.Background())

	var authErr *models.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestDeleteClassifiesNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"assessment not found"}`))
	}))
	defer server.Close()

	api := NewAPIClient(server.URL, StaticToken("test-token"))
	err := api.DeleteAssessment(context.Background(), "64b000000000000000000000")

	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestHealthConnectivityReflectsServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	api := NewAPIClient(server.URL, StaticToken("test-token"))
	signal := NewHealthConnectivity(api)
	assert.True(t, signal.Online())

	server.Close()
	assert.False(t, signal.Online())
}

func TestHealthFalseOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	api := NewAPIClient(server.URL, StaticToken("test-token"))
	assert.False(t, api.Health(context.Background()))
}

func TestListDecodesServerShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"64b000000000000000000000","stage":"Postpartum","region":"North","sleepHours":6,` +
			`"responses":{"q1":true},"score":6,"maxScore":10,"threshold":5,"label":"Possible Risk",` +
			`"riskFactors":["q1"],"breakdown":{"q1":1},"modelVersion":"weighted-v1","createdAt":"2026-08-01T10:00:00Z"}]`))
	}))
	defer server.Close()

	api := NewAPIClient(server.URL, StaticToken("test-token"))
	list, err := api.ListAssessments(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "64b000000000000000000000", list[0].ID.Hex())
	assert.Equal(t, "Possible Risk", list[0].Label)
	assert.Equal(t, 6, list[0].Score)
}
