package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	auction "card-auction/internal/auctionEngine"
	catalog "card-auction/internal/catalogService"
	"card-auction/internal/identity"
	"card-auction/internal/notifier"
	"card-auction/internal/repository"
	"card-auction/internal/server"
	"card-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testEnv is the full application stack on an in-memory database. The
// repo and engine are exposed so tests can seed state and drive the
// sweep directly.
type testEnv struct {
	router   *gin.Engine
	repo     *repository.SQLRepo
	engine   *auction.AuctionEngine
	registry *notifier.LiveRegistry
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewSQLRepo(db)
	registry := notifier.NewLiveRegistry()
	dispatcher := notifier.NewDispatcher(repo, registry)
	resolver := identity.NewProfileResolver(repo)
	engine := auction.NewAuctionEngine(repo, dispatcher, resolver, 10)
	catalogSvc := catalog.NewCatalogService(repo, resolver)

	return &testEnv{
		router:   server.SetupRouter(engine, catalogSvc, registry),
		repo:     repo,
		engine:   engine,
		registry: registry,
	}
}

// do executes a request against the stack and parses the JSON envelope.
func (e *testEnv) do(t *testing.T, method, url, callerRef string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if callerRef != "" {
		req.Header.Set(helpers.CallerRefHeader, callerRef)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// data unwraps the envelope's data object.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}

// registerProfile creates a profile through the API and returns its user id.
func (e *testEnv) registerProfile(t *testing.T, username, ref, email string) string {
	t.Helper()
	resp, w := e.do(t, http.MethodPost, "/profiles", "", helpers.RegisterProfileRequest{
		Username: username, ExternalRef: ref, Email: email,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data(t, resp)["user_id"].(string)
}

// submitValidatedCard submits a card and flips its validation flag.
func (e *testEnv) submitValidatedCard(t *testing.T, callerRef, name string) string {
	t.Helper()
	resp, w := e.do(t, http.MethodPost, "/cards", callerRef, helpers.SubmitCardRequest{
		CardName: name, CardQuality: "MINT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	cardID := data(t, resp)["card_id"].(string)

	validated := true
	_, w = e.do(t, http.MethodPut, "/cards/"+cardID+"/validated", "", helpers.ValidateCardRequest{IsValidated: &validated})
	require.Equal(t, http.StatusOK, w.Code)
	return cardID
}

// createAuction lists a card through the API and returns the auction id.
func (e *testEnv) createAuction(t *testing.T, callerRef, cardID string, startingBid, increment int64, hours float64) string {
	t.Helper()
	resp, w := e.do(t, http.MethodPost, "/auctions", callerRef, map[string]any{
		"card_id":           cardID,
		"starting_bid":      startingBid,
		"minimum_increment": increment,
		"duration_hours":    hours,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data(t, resp)["auction_id"].(string)
}
