package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"chamabook/config"
	httpmiddleware "chamabook/internal/delivery/http/middleware"
	"chamabook/internal/delivery/http/validator"
	"chamabook/internal/infra/persistence/memory"
	"chamabook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Ledger:       config.LedgerConfig{Currency: "KES", DailyMinimumFallback: 50, MissedDepositWindowDays: 2},
		ActivityFeed: config.ActivityFeedConfig{Capacity: 100, RecentLimit: 10},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(memory.Params{Config: cfg, Logger: logger})

	settings := impl.NewSettingsService(impl.SettingsServiceParams{
		SettingsRepo: memory.NewSettingsRepository(store),
	})
	notes := impl.NewNoteService(impl.NoteServiceParams{
		NoteRepo: memory.NewNoteRepository(store),
	})
	plans := impl.NewPlanService(impl.PlanServiceParams{
		PlanRepo: memory.NewPlanRepository(store),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	settingsHandler := NewSettingsHandler(settings)
	noteHandler := NewNoteHandler(notes)
	planHandler := NewPlanHandler(plans)

	api := e.Group("/api")
	api.GET("/settings", settingsHandler.Get)
	api.POST("/settings", settingsHandler.Create)
	api.PATCH("/settings/:id", settingsHandler.Update)
	api.GET("/notes", noteHandler.Get)
	api.POST("/notes", noteHandler.Create)
	api.GET("/personal-plan", planHandler.Get)
	api.POST("/personal-plan", planHandler.Create)

	return e
}

func TestSettingsEndpoints_GetSeeded(t *testing.T) {
	e := newSettingsTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var settings map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "settings_01", settings["id"])
	assert.Equal(t, 500000.0, settings["targetAmount"])
}

func TestSettingsEndpoints_PatchIDMismatch(t *testing.T) {
	e := newSettingsTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/api/settings/settings_99",
		`{"dailyMinimum":100}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Settings not found"}`, rec.Body.String())
}

func TestSettingsEndpoints_Patch(t *testing.T) {
	e := newSettingsTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/api/settings/settings_01",
		`{"dailyMinimum":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 100.0, settings["dailyMinimum"])
	// Unpatched fields survive.
	assert.Equal(t, 500000.0, settings["targetAmount"])
}

func TestNoteEndpoints_NullWhenAbsent(t *testing.T) {
	e := newSettingsTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/notes?adminId=admin_01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func TestNoteEndpoints_MissingAdminID(t *testing.T) {
	e := newSettingsTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"adminId is required"}`, rec.Body.String())
}

func TestPlanEndpoints_CreateThenGet(t *testing.T) {
	e := newSettingsTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/personal-plan?adminId=admin_01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/personal-plan",
		`{"adminId":"admin_01","weeklyIncome":5000,"personalSavings":1200,"categories":[{"id":"c_01","name":"Rent","plannedAmount":2000,"actualAmount":1800}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/personal-plan?adminId=admin_01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var plan map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, 5000.0, plan["weeklyIncome"])
	categories := plan["categories"].([]any)
	require.Len(t, categories, 1)
	assert.Equal(t, "Rent", categories[0].(map[string]any)["name"])
}
