package integrationtests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	model "card-auction/internal/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// TestAuctionLifecycleAPI drives a full listing through the HTTP API:
// registration, card submission and validation, bidding, and the
// guards around mutating a live auction.
func TestAuctionLifecycleAPI(t *testing.T) {
	env := setupTestEnv(t)

	sellerID := env.registerProfile(t, "ash", "ref-seller", "ash@example.com")
	env.registerProfile(t, "misty", "ref-bidder1", "misty@example.com")
	env.registerProfile(t, "brock", "ref-bidder2", "brock@example.com")

	// Unvalidated cards cannot be listed.
	resp, w := env.do(t, http.MethodPost, "/cards", "ref-seller", map[string]any{
		"card_name": "Charizard", "card_quality": "MINT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	cardID := data(t, resp)["card_id"].(string)

	_, w = env.do(t, http.MethodPost, "/auctions", "ref-seller", map[string]any{
		"card_id": cardID, "starting_bid": 100, "minimum_increment": 10, "duration_hours": 24,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	validated := true
	_, w = env.do(t, http.MethodPut, "/cards/"+cardID+"/validated", "", map[string]any{"is_validated": &validated})
	require.Equal(t, http.StatusOK, w.Code)

	auctionID := env.createAuction(t, "ref-seller", cardID, 100, 10, 24)

	// One active auction per card.
	_, w = env.do(t, http.MethodPost, "/auctions", "ref-seller", map[string]any{
		"card_id": cardID, "starting_bid": 50, "minimum_increment": 5, "duration_hours": 12,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// The listing shows the auction joined with card details.
	resp, w = env.do(t, http.MethodGet, "/auctions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := data(t, resp)
	require.Equal(t, float64(1), listing["total_pages"])
	auctions := listing["auctions"].([]any)
	require.Len(t, auctions, 1)
	require.Equal(t, "Charizard", auctions[0].(map[string]any)["card_name"])

	resp, w = env.do(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, string(model.StatusInProgress), data(t, resp)["status"])

	// Sellers cannot bid on their own listing.
	_, w = env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-seller", map[string]any{"amount": 150})
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-bidder1", map[string]any{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "150", data(t, resp)["highest_bid"])

	// 155 does not clear the 150+10 floor.
	_, w = env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-bidder2", map[string]any{"amount": 155})
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-bidder2", map[string]any{"amount": 200})
	require.Equal(t, http.StatusCreated, w.Code)

	// The outbid bidder gets a durable notification.
	resp, w = env.do(t, http.MethodGet, "/notifications", "ref-bidder1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := data(t, resp)
	require.Equal(t, float64(1), feed["total"])
	msg := feed["notifications"].([]any)[0].(map[string]any)["message"].(string)
	require.Contains(t, msg, "outbid")
	require.Contains(t, msg, "200")

	_, w = env.do(t, http.MethodPut, "/notifications/mark-read", "ref-bidder1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.do(t, http.MethodGet, "/notifications", "ref-bidder1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	read := data(t, resp)["notifications"].([]any)[0].(map[string]any)
	require.Equal(t, true, read["is_read"])

	// Ownership views.
	resp, w = env.do(t, http.MethodGet, "/auctions/winning", "ref-bidder2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)

	resp, w = env.do(t, http.MethodGet, "/auctions/mine", "ref-seller", nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := resp["data"].([]any)
	require.Len(t, mine, 1)
	require.Equal(t, sellerID, mine[0].(map[string]any)["seller_id"])

	// Once a bid lands, terms are frozen and the listing cannot be pulled.
	_, w = env.do(t, http.MethodPut, "/auctions/"+auctionID, "ref-seller", map[string]any{
		"minimum_increment": 20, "duration_hours": 48,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = env.do(t, http.MethodDelete, "/auctions/"+auctionID, "ref-seller", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = env.do(t, http.MethodDelete, "/cards/"+cardID, "ref-seller", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuctionAPI_CallerIdentity(t *testing.T) {
	env := setupTestEnv(t)

	resp, w := env.do(t, http.MethodPost, "/auctions", "", map[string]any{
		"card_id": "card-1", "starting_bid": 100, "minimum_increment": 10, "duration_hours": 24,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, resp["message"], "caller identity required")

	_, w = env.do(t, http.MethodPost, "/cards", "ref-unknown", map[string]any{"card_name": "Mew"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuctionAPI_UpdateAndDeleteBeforeBids(t *testing.T) {
	env := setupTestEnv(t)

	env.registerProfile(t, "ash", "ref-seller", "ash@example.com")
	cardID := env.submitValidatedCard(t, "ref-seller", "Blastoise")
	auctionID := env.createAuction(t, "ref-seller", cardID, 100, 10, 24)

	resp, w := env.do(t, http.MethodPut, "/auctions/"+auctionID, "ref-seller", map[string]any{
		"minimum_increment": 25, "duration_hours": 48,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "25", data(t, resp)["minimum_increment"])

	_, w = env.do(t, http.MethodDelete, "/auctions/"+auctionID, "ref-seller", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = env.do(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// With the auction gone the card is free to delete.
	_, w = env.do(t, http.MethodDelete, "/cards/"+cardID, "ref-seller", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuctionAPI_SweepAndRating(t *testing.T) {
	env := setupTestEnv(t)

	env.registerProfile(t, "ash", "ref-seller", "ash@example.com")
	env.registerProfile(t, "misty", "ref-winner", "misty@example.com")
	cardID := env.submitValidatedCard(t, "ref-seller", "Pikachu")
	auctionID := env.createAuction(t, "ref-seller", cardID, 100, 10, 24)

	_, w := env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-winner", map[string]any{"amount": 250})
	require.Equal(t, http.StatusCreated, w.Code)

	// Ratings are only accepted once the auction has ended.
	_, w = env.do(t, http.MethodPut, "/auctions/"+auctionID+"/rating", "ref-winner", map[string]any{"rating": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	expireAuction(t, env, auctionID)

	closed, err := env.engine.CloseExpiredAuctions()
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	resp, w := env.do(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, string(model.StatusClosed), data(t, resp)["status"])

	resp, w = env.do(t, http.MethodGet, "/notifications", "ref-winner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	msg := data(t, resp)["notifications"].([]any)[0].(map[string]any)["message"].(string)
	require.Equal(t, "You won the auction for Pikachu with a final bid of 250.", msg)

	// Only the winner may rate, once, in range.
	_, w = env.do(t, http.MethodPut, "/auctions/"+auctionID+"/rating", "ref-seller", map[string]any{"rating": 5})
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = env.do(t, http.MethodPut, "/auctions/"+auctionID+"/rating", "ref-winner", map[string]any{"rating": 9})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = env.do(t, http.MethodPut, "/auctions/"+auctionID+"/rating", "ref-winner", map[string]any{"rating": 4})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), data(t, resp)["rating_count"])
	require.Equal(t, 4.0, data(t, resp)["rating_avg"])

	// A repeat submission is rejected and does not move the aggregate.
	_, w = env.do(t, http.MethodPut, "/auctions/"+auctionID+"/rating", "ref-winner", map[string]any{"rating": 5})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = env.do(t, http.MethodGet, "/profiles/ash", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 4.0, data(t, resp)["rating_avg"])
	require.Equal(t, float64(1), data(t, resp)["rating_count"])
}

func TestAuctionAPI_SweepNoBids(t *testing.T) {
	env := setupTestEnv(t)

	env.registerProfile(t, "ash", "ref-seller", "ash@example.com")
	cardID := env.submitValidatedCard(t, "ref-seller", "Snorlax")
	auctionID := env.createAuction(t, "ref-seller", cardID, 100, 10, 24)

	expireAuction(t, env, auctionID)

	closed, err := env.engine.CloseExpiredAuctions()
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	resp, w := env.do(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, string(model.StatusExpired), data(t, resp)["status"])

	resp, w = env.do(t, http.MethodGet, "/notifications", "ref-seller", nil)
	require.Equal(t, http.StatusOK, w.Code)
	msg := data(t, resp)["notifications"].([]any)[0].(map[string]any)["message"].(string)
	require.Equal(t, "Your auction for Snorlax has ended with no bids.", msg)
}

func TestAuctionAPI_ProfileEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	env.registerProfile(t, "ash", "ref-1", "ash@example.com")

	_, w := env.do(t, http.MethodPost, "/profiles", "", map[string]any{
		"username": "ash", "external_ref": "ref-other",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = env.do(t, http.MethodGet, "/profiles/nobody", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuctionAPI_LiveNotificationOverWebsocket(t *testing.T) {
	env := setupTestEnv(t)

	env.registerProfile(t, "ash", "ref-seller", "ash@example.com")
	env.registerProfile(t, "misty", "ref-bidder1", "misty@example.com")
	env.registerProfile(t, "brock", "ref-bidder2", "brock@example.com")
	cardID := env.submitValidatedCard(t, "ref-seller", "Gengar")
	auctionID := env.createAuction(t, "ref-seller", cardID, 100, 10, 24)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/misty@example.com"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return env.registry.Len() == 1
	}, time.Second, 10*time.Millisecond)

	_, w := env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-bidder1", map[string]any{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = env.do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "ref-bidder2", map[string]any{"amount": 200})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var payload struct {
		Type      string `json:"type"`
		AuctionID string `json:"auction_id"`
		Message   string `json:"message"`
	}
	require.NoError(t, conn.ReadJSON(&payload))
	require.Equal(t, "notification", payload.Type)
	require.Equal(t, auctionID, payload.AuctionID)
	require.Equal(t, fmt.Sprintf("You have been outbid on auction %s. The highest bid is now 200.", auctionID), payload.Message)
}

func TestAuctionAPI_ListingPagination(t *testing.T) {
	env := setupTestEnv(t)

	env.registerProfile(t, "ash", "ref-seller", "ash@example.com")
	for i := 0; i < 12; i++ {
		cardID := env.submitValidatedCard(t, "ref-seller", fmt.Sprintf("Card %02d", i))
		env.createAuction(t, "ref-seller", cardID, 100, 10, float64(i+1))
	}

	resp, w := env.do(t, http.MethodGet, "/auctions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := data(t, resp)
	require.Equal(t, float64(1), page["page"])
	require.Equal(t, float64(2), page["total_pages"])
	require.Len(t, page["auctions"].([]any), 10)

	resp, w = env.do(t, http.MethodGet, "/auctions?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, data(t, resp)["auctions"].([]any), 2)

	// Beyond the last page the slice is empty, never null.
	resp, w = env.do(t, http.MethodGet, "/auctions?page=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, data(t, resp)["auctions"])
	require.Len(t, data(t, resp)["auctions"].([]any), 0)

	_, w = env.do(t, http.MethodGet, "/auctions?page=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// expireAuction rewrites an auction's end time into the past so the
// sweep picks it up without waiting.
func expireAuction(t *testing.T, env *testEnv, auctionID string) {
	t.Helper()
	a, err := env.repo.GetAuction(auctionID)
	require.NoError(t, err)
	err = env.repo.UpdateAuctionTerms(auctionID, a.MinimumIncrement, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
}
