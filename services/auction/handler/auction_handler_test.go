package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", handler.CreateAuctionHandler)

	now := time.Now().UTC()
	end := now.Add(time.Hour).Truncate(time.Second)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.CreateAuctionRequest{
				SellerID:      "seller1",
				Title:         "vintage lamp",
				Description:   "works",
				StartingPrice: d("100"),
				EndTime:       end,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("seller1", "vintage lamp", "works", d("100"), end).
					Return(model.Auction{
						AuctionID:     uuid.NewString(),
						SellerID:      "seller1",
						Title:         "vintage lamp",
						Description:   "works",
						StartingPrice: d("100"),
						EndTime:       end,
						CreatedAt:     now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_seller",
			requestBody: helpers.CreateAuctionRequest{
				SellerID:      "",
				StartingPrice: d("100"),
				EndTime:       end,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_rejects_past_end_time",
			requestBody: helpers.CreateAuctionRequest{
				SellerID:      "seller1",
				Title:         "lamp",
				StartingPrice: d("100"),
				EndTime:       end,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("seller1", "lamp", "", d("100"), end).
					Return(model.Auction{}, auctionerrors.ErrInvalidAuction)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid auction details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test RescheduleAuctionHandler
func TestRescheduleAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/auctions/:auction_id", handler.RescheduleAuctionHandler)

	end := time.Now().UTC().Add(2 * time.Hour).Truncate(time.Second)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			RescheduleAuction("a1", end).
			Return(model.Auction{AuctionID: "a1", SellerID: "seller1", StartingPrice: d("100"), EndTime: end}, nil)

		body, err := json.Marshal(helpers.RescheduleAuctionRequest{EndTime: end})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/auctions/a1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().
			RescheduleAuction("missing", end).
			Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		body, err := json.Marshal(helpers.RescheduleAuctionRequest{EndTime: end})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/auctions/missing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing_end_time", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/auctions/a1", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test DeleteAuctionHandler and GetAuctionHandler
func TestAuctionLifecycleHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.ListAuctionsHandler)
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)
	router.DELETE("/auctions/:auction_id", handler.DeleteAuctionHandler)

	t.Run("list_success", func(t *testing.T) {
		mockService.EXPECT().ListAuctions().Return([]model.Auction{
			{AuctionID: "a1", SellerID: "seller1", StartingPrice: d("100")},
			{AuctionID: "a2", SellerID: "seller2", StartingPrice: d("200")},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 2)
	})

	t.Run("get_success", func(t *testing.T) {
		mockService.EXPECT().GetAuction("a1").
			Return(model.Auction{AuctionID: "a1", SellerID: "seller1", StartingPrice: d("100")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions/a1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get_not_found", func(t *testing.T) {
		mockService.EXPECT().GetAuction("missing").
			Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auctions/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete_success", func(t *testing.T) {
		mockService.EXPECT().DeleteAuction("a1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/auctions/a1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete_not_found", func(t *testing.T) {
		mockService.EXPECT().DeleteAuction("missing").Return(auctionerrors.ErrAuctionNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/auctions/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
