package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hrapi/internal/platform/config"
)

func newTestApp() *App {
	return New(config.Config{
		Addr:               ":0",
		Environment:        "development",
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 10000,
		MetricsEnabled:     true,
	})
}

func doJSON(t *testing.T, app *App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestEmployeeListEnvelope(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.EqualValues(t, 5, payload["total"])
	require.Len(t, payload["employees"], 5)
}

func TestEmployeeListStatusFilterValidation(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/employees?status=retired", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payload := decodeBody(t, rec)
	require.Contains(t, payload, "errors")
}

func TestEmployeeNotFound(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/employees/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Employee not found", decodeBody(t, rec)["error"])
}

func TestEmployeeInvalidIDParam(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/employees/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec), "errors")
}

func TestEmployeeCreateValidation(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/v1/employees", map[string]any{
		"firstName": "Only",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payload := decodeBody(t, rec)
	issues, ok := payload["errors"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, issues)
}

func TestEmployeeDuplicateID(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/v1/employees", map[string]any{
		"employeeId": "EMP001",
		"firstName":  "Dup",
		"lastName":   "Licate",
		"email":      "dup@example.com",
		"department": "Engineering",
		"position":   "Engineer",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Employee ID already exists", decodeBody(t, rec)["error"])
}

func TestEmployeeLifecycle(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/v1/employees", map[string]any{
		"employeeId": "EMP100",
		"firstName":  "Grace",
		"lastName":   "Hopper",
		"email":      "grace.hopper@example.com",
		"department": "Engineering",
		"position":   "Rear Admiral",
		"salary":     120000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)
	require.EqualValues(t, 6, created["id"])
	require.Equal(t, "active", created["status"])

	rec = doJSON(t, app, http.MethodPut, "/api/v1/employees/6", map[string]any{
		"position": "Commodore",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody(t, rec)
	require.Equal(t, "Commodore", updated["position"])
	require.Equal(t, "Grace", updated["firstName"])

	rec = doJSON(t, app, http.MethodDelete, "/api/v1/employees/6", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())

	rec = doJSON(t, app, http.MethodGet, "/api/v1/employees/6", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "The requested resource was not found", decodeBody(t, rec)["error"])
}

func TestJobApplicationDefaults(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/v1/jobs/1/applications", map[string]any{
		"applicantName":  "Ada Lovelace",
		"applicantEmail": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)
	require.Equal(t, "new", created["status"])
	require.Equal(t, "Application received", created["notes"])
	require.EqualValues(t, 1, created["jobId"])
	require.NotEmpty(t, created["applicationDate"])

	rec = doJSON(t, app, http.MethodGet, "/api/v1/jobs/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 26, decodeBody(t, rec)["applicantCount"])
}

func TestClosedJobRejectsApplications(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/v1/jobs/3/applications", map[string]any{
		"applicantName":  "Late Applicant",
		"applicantEmail": "late@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This job is no longer accepting applications", decodeBody(t, rec)["error"])
}

func TestPerformanceAnalytics(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/performance/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, "current", payload["period"])
	require.EqualValues(t, 3, payload["totalReviews"])
	require.InDelta(t, 4.3, payload["averageRating"], 0.001)
}

func TestVacationDateRangeRule(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPost, "/api/v1/vacations", map[string]any{
		"employeeId": "EMP001",
		"type":       "annual",
		"startDate":  "2025-09-10",
		"endDate":    "2025-09-05",
		"days":       3,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "End date must be after start date", decodeBody(t, rec)["error"])
}

func TestVacationApproveFlow(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodPut, "/api/v1/vacations/3/approve", map[string]any{
		"approvedBy": "Jane Smith",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Equal(t, "approved", payload["status"])
	require.Equal(t, "Jane Smith", payload["approvedBy"])

	rec = doJSON(t, app, http.MethodGet, "/api/v1/vacations/balance/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 14, decodeBody(t, rec)["remainingAnnual"])
}

func TestRootDescriptor(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, decodeBody(t, rec), "endpoints")
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp()

	doJSON(t, app, http.MethodGet, "/api/v1/employees", nil)

	rec := doJSON(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, decodeBody(t, rec), "requestsTotal")
}

func TestRequestLogCarriesAuthenticatedSubject(t *testing.T) {
	cfg := config.Config{
		Addr:               ":0",
		Environment:        "development",
		AuthTokenSecret:    "test-secret",
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 10000,
	}
	var logBuf bytes.Buffer
	app := newApp(cfg, zerolog.New(&logBuf))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "hr-admin"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, logBuf.String(), `"subject":"hr-admin"`)
}

func TestOversizedBodyReturns413(t *testing.T) {
	app := New(config.Config{
		Addr:               ":0",
		Environment:        "development",
		MaxBodyBytes:       1024,
		RateLimitPerMinute: 10000,
	})

	padding := strings.Repeat("x", 2048)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees",
		strings.NewReader(`{"employeeId":"EMP200","firstName":"`+padding+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "Request body too large", decodeBody(t, rec)["error"])
}

func TestAuthHeadersNeverBlock(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	req.Header.Set("X-API-Key", "whatever")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReportsHeadcount(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/api/v1/reports/headcount", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.EqualValues(t, 5, payload["total"])

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/headcount?format=pdf", nil)
	pdfRec := httptest.NewRecorder()
	app.Router.ServeHTTP(pdfRec, req)
	require.Equal(t, http.StatusOK, pdfRec.Code)
	require.Equal(t, "application/pdf", pdfRec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(pdfRec.Body.Bytes(), []byte("%PDF")))
}
