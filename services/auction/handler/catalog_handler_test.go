package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"card-auction/internal/auctionerrors"
	model "card-auction/internal/models"
	"card-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newCatalogTestRouter(t *testing.T) (*gin.Engine, *MockCatalogServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/profiles", handler.RegisterProfileHandler)
	router.GET("/profiles/:username", handler.GetProfileHandler)
	router.POST("/cards", handler.SubmitCardHandler)
	router.GET("/cards/mine", handler.MyCardsHandler)
	router.PUT("/cards/:card_id", handler.UpdateCardHandler)
	router.PUT("/cards/:card_id/validated", handler.ValidateCardHandler)
	router.DELETE("/cards/:card_id", handler.DeleteCardHandler)
	router.GET("/notifications", handler.MyNotificationsHandler)
	router.PUT("/notifications/mark-read", handler.MarkReadHandler)
	return router, mockService
}

// Test RegisterProfileHandler
func TestRegisterProfileHandler(t *testing.T) {
	router, mockService := newCatalogTestRouter(t)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.RegisterProfileRequest{Username: "ash", ExternalRef: "ref-1", Email: "ash@example.com"},
			mockSetup: func() {
				mockService.EXPECT().
					RegisterProfile("ash", "ref-1", "ash@example.com").
					Return(model.Profile{UserID: "user-1", Username: "ash", ExternalRef: "ref-1", Email: "ash@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "profile registered successfully",
		},
		{
			name:           "missing_username",
			requestBody:    map[string]any{"external_ref": "ref-2"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "duplicate_username",
			requestBody: helpers.RegisterProfileRequest{Username: "taken", ExternalRef: "ref-3"},
			mockSetup: func() {
				mockService.EXPECT().
					RegisterProfile("taken", "ref-3", "").
					Return(model.Profile{}, auctionerrors.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "conflict",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/profiles", "", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "user-1", data["user_id"])
				require.Equal(t, "ash", data["username"])
			}
		})
	}
}

// Test GetProfileHandler
func TestGetProfileHandler(t *testing.T) {
	router, mockService := newCatalogTestRouter(t)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().GetProfile("ash").
			Return(model.Profile{UserID: "user-1", Username: "ash", RatingCount: 2, RatingAvg: 4.0}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/profiles/ash", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "ash", data["username"])
		require.Equal(t, 4.0, data["rating_avg"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().GetProfile("nobody").Return(model.Profile{}, auctionerrors.ErrNotFound)

		w, _ := doJSON(t, router, http.MethodGet, "/profiles/nobody", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test SubmitCardHandler
func TestSubmitCardHandler(t *testing.T) {
	router, mockService := newCatalogTestRouter(t)

	tests := []struct {
		name           string
		callerRef      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			callerRef:   "ref-1",
			requestBody: helpers.SubmitCardRequest{CardName: "Charizard", CardQuality: "MINT", ImageURL: "https://img/1.png"},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitCard("ref-1", "Charizard", "MINT", "https://img/1.png").
					Return(model.Card{CardID: "card-1", OwnerID: "user-1", CardName: "Charizard", CardQuality: "MINT"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "card submitted successfully",
		},
		{
			name:           "missing_caller_header",
			callerRef:      "",
			requestBody:    helpers.SubmitCardRequest{CardName: "Charizard"},
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "caller identity required",
		},
		{
			name:           "missing_card_name",
			callerRef:      "ref-1",
			requestBody:    map[string]any{"card_quality": "MINT"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "unknown_caller",
			callerRef:   "ref-x",
			requestBody: helpers.SubmitCardRequest{CardName: "Mew"},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitCard("ref-x", "Mew", "", "").
					Return(model.Card{}, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/cards", tc.callerRef, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "card-1", data["card_id"])
				require.Equal(t, false, data["is_validated"])
			}
		})
	}
}

// Test ValidateCardHandler
func TestValidateCardHandler(t *testing.T) {
	router, mockService := newCatalogTestRouter(t)

	t.Run("marks_card_validated", func(t *testing.T) {
		mockService.EXPECT().SetCardValidated("card-1", true).
			Return(model.Card{CardID: "card-1", IsValidated: true}, nil)

		w, resp := doJSON(t, router, http.MethodPut, "/cards/card-1/validated", "", helpers.ValidateCardRequest{IsValidated: boolPtr(true)})
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, true, data["is_validated"])
	})

	t.Run("missing_flag", func(t *testing.T) {
		w, resp := doJSON(t, router, http.MethodPut, "/cards/card-1/validated", "", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "invalid request payload")
	})

	t.Run("card_not_found", func(t *testing.T) {
		mockService.EXPECT().SetCardValidated("card-x", false).
			Return(model.Card{}, auctionerrors.ErrNotFound)

		w, _ := doJSON(t, router, http.MethodPut, "/cards/card-x/validated", "", helpers.ValidateCardRequest{IsValidated: boolPtr(false)})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test DeleteCardHandler
func TestDeleteCardHandler(t *testing.T) {
	router, mockService := newCatalogTestRouter(t)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().DeleteCard("ref-1", "card-1").Return(nil)

		w, resp := doJSON(t, router, http.MethodDelete, "/cards/card-1", "ref-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "card deleted successfully")
	})

	t.Run("referenced_by_auction", func(t *testing.T) {
		mockService.EXPECT().DeleteCard("ref-1", "card-2").Return(auctionerrors.ErrConflict)

		w, _ := doJSON(t, router, http.MethodDelete, "/cards/card-2", "ref-1", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("not_the_owner", func(t *testing.T) {
		mockService.EXPECT().DeleteCard("ref-2", "card-3").Return(auctionerrors.ErrPermissionDenied)

		w, _ := doJSON(t, router, http.MethodDelete, "/cards/card-3", "ref-2", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Test MyNotificationsHandler and MarkReadHandler
func TestNotificationHandlers(t *testing.T) {
	router, mockService := newCatalogTestRouter(t)
	now := time.Now().UTC()

	t.Run("feed_with_total", func(t *testing.T) {
		auctionID := "auc-1"
		mockService.EXPECT().ListMyNotifications("ref-1").Return([]model.Notification{
			{NotificationID: "n-2", ReceiverID: "user-1", AuctionID: &auctionID, Message: "outbid", TimeSent: now},
			{NotificationID: "n-1", ReceiverID: "user-1", Message: "ended", TimeSent: now.Add(-time.Hour), IsRead: true},
		}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/notifications", "ref-1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, float64(2), data["total"])
		notifications := data["notifications"].([]any)
		require.Len(t, notifications, 2)
		require.Equal(t, "n-2", notifications[0].(map[string]any)["notification_id"])
	})

	t.Run("feed_requires_caller", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/notifications", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("mark_read", func(t *testing.T) {
		mockService.EXPECT().MarkNotificationsRead("ref-1").Return(nil)

		w, resp := doJSON(t, router, http.MethodPut, "/notifications/mark-read", "ref-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "all notifications marked as read")
	})

	t.Run("mark_read_service_failure", func(t *testing.T) {
		mockService.EXPECT().MarkNotificationsRead("ref-2").Return(errors.New("db down"))

		w, _ := doJSON(t, router, http.MethodPut, "/notifications/mark-read", "ref-2", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func boolPtr(b bool) *bool { return &b }
