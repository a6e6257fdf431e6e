package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaugelab/gaugechat/internal/powerapps"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func newPowerAppsTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	NewPowerAppsHandler(slog.New(slog.NewTextHandler(io.Discard, nil))).Register(e)
	return e
}

func TestPowerAppsList(t *testing.T) {
	t.Parallel()

	e := newPowerAppsTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/powerapps", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Apps []powerapps.App `json:"apps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Apps, 3)

	// Template bodies stay server side.
	assert.NotContains(t, rec.Body.String(), "{{")
}

func renderApp(e *echo.Echo, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/powerapps/"+id+"/render", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPowerAppsRender(t *testing.T) {
	t.Parallel()

	e := newPowerAppsTestServer(t)
	rec := renderApp(e, "calibration-brief", `{"values": {
		"instrument": "Mitutoyo 293-340 micrometer",
		"measurements": "25.001, 25.003, 24.999",
		"tolerance": "±0.002 mm"
	}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Prompt                string `json:"prompt"`
		SuggestedSystemPrompt string `json:"suggestedSystemPrompt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Prompt, "Mitutoyo 293-340 micrometer")
	assert.NotEmpty(t, resp.SuggestedSystemPrompt)
}

func TestPowerAppsRenderNoSuggestedPrompt(t *testing.T) {
	t.Parallel()

	e := newPowerAppsTestServer(t)
	rec := renderApp(e, "afericao-checklist", `{"values": {
		"workflow": "Incoming steel bar inspection with calipers and surface plate"
	}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "suggestedSystemPrompt")
}

func TestPowerAppsRenderUnknownApp(t *testing.T) {
	t.Parallel()

	e := newPowerAppsTestServer(t)
	rec := renderApp(e, "nope", `{"values": {}}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPowerAppsRenderMissingField(t *testing.T) {
	t.Parallel()

	e := newPowerAppsTestServer(t)
	rec := renderApp(e, "calibration-brief", `{"values": {"instrument": "caliper"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "measurements")
}

func TestPowerAppsRenderMissingValues(t *testing.T) {
	t.Parallel()

	e := newPowerAppsTestServer(t)
	rec := renderApp(e, "calibration-brief", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
