package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
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

// newTestServer builds an echo instance with the real services wired
// against a freshly seeded store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Ledger: config.LedgerConfig{
			Currency:                "KES",
			DailyMinimumFallback:    50,
			MissedDepositWindowDays: 2,
		},
		ActivityFeed: config.ActivityFeedConfig{
			Capacity:    100,
			RecentLimit: 10,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(memory.Params{Config: cfg, Logger: logger})

	memberRepo := memory.NewMemberRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	activityRepo := memory.NewActivityRepository(store)

	members := impl.NewMemberService(impl.MemberServiceParams{
		MemberRepo:   memberRepo,
		ActivityRepo: activityRepo,
	})
	ledger := impl.NewLedgerService(impl.LedgerServiceParams{
		TransactionRepo: txRepo,
		LoanRepo:        memory.NewLoanRepository(store),
		MemberRepo:      memberRepo,
		ActivityRepo:    activityRepo,
		Config:          cfg,
	})
	activities := impl.NewActivityService(impl.ActivityServiceParams{
		ActivityRepo: activityRepo,
		Config:       cfg,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	memberHandler := NewMemberHandler(members)
	transactionHandler := NewTransactionHandler(ledger)
	activityHandler := NewActivityHandler(activities)

	api := e.Group("/api")
	api.GET("/members", memberHandler.List)
	api.GET("/members/:id", memberHandler.Get)
	api.POST("/members", memberHandler.Create)
	api.PATCH("/members/:id", memberHandler.Update)
	api.DELETE("/members/:id", memberHandler.Delete)
	api.GET("/transactions", transactionHandler.List)
	api.POST("/transactions", transactionHandler.Create)
	api.GET("/activities", activityHandler.List)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestMemberEndpoints_ListSeeded(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/members", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var members []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &members))
	require.Len(t, members, 3)
	assert.Equal(t, "Jane Doe", members[0]["name"])
	assert.Equal(t, 12300.0, members[0]["totalSaved"])
}

func TestMemberEndpoints_DuplicateEmail(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/members",
		`{"name":"Jane Clone","email":"jane@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email already exists", body["error"])
}

func TestMemberEndpoints_CreateAndDelete(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/members",
		`{"name":"Alice Wanjiku","email":"alice@example.com","phone":"+254745678901"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 0.0, created["totalSaved"])
	id := created["id"].(string)

	rec = doJSON(e, http.MethodDelete, "/api/members/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/members/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Member not found"}`, rec.Body.String())
}

func TestTransactionEndpoints_DepositUpdatesMember(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/transactions",
		`{"memberId":"m_01","type":"deposit","amount":500,"date":"2026-01-15","createdBy":"admin_01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/members/m_01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var member map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &member))
	assert.Equal(t, 12800.0, member["totalSaved"])

	rec = doJSON(e, http.MethodGet, "/api/activities?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var activities []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, "deposit", activities[0]["type"])
	assert.Contains(t, activities[0]["description"], "Jane Doe")
	assert.Contains(t, activities[0]["description"], "KES 500")
}

func TestTransactionEndpoints_InvalidPayload(t *testing.T) {
	e := newTestServer(t)

	// Amount must be strictly positive.
	rec := doJSON(e, http.MethodPost, "/api/transactions",
		`{"memberId":"m_01","type":"deposit","amount":-5,"date":"2026-01-15"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request payload", body["error"])
}

func TestTransactionEndpoints_FilterByMember(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/api/transactions",
		`{"memberId":"m_01","type":"deposit","amount":100,"date":"2026-01-15"}`)
	doJSON(e, http.MethodPost, "/api/transactions",
		`{"memberId":"m_02","type":"deposit","amount":200,"date":"2026-01-15"}`)

	rec := doJSON(e, http.MethodGet, "/api/transactions?memberId=m_02", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var transactions []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
	require.Len(t, transactions, 1)
	assert.Equal(t, "m_02", transactions[0]["memberId"])
	assert.Equal(t, 200.0, transactions[0]["amount"])
}
