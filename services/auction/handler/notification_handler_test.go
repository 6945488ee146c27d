package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test ListNotificationsHandler
func TestListNotificationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockNotificationServiceInterface(ctrl)
	handler := NewNotificationHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:user_id/notifications", handler.ListNotificationsHandler)

	now := time.Now().UTC()
	price := d("120")

	t.Run("success_with_paging", func(t *testing.T) {
		mockService.EXPECT().Recent("user1", 2, 1).Return([]model.Notification{
			{NotificationID: "n1", UserID: "user1", AuctionID: "a1", Price: &price, CreatedAt: now},
			{NotificationID: "n2", UserID: "user1", AuctionID: "a2", CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/notifications?limit=2&offset=1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 2)

		won := data[0].(map[string]any)
		require.Equal(t, true, won["won"])
		require.Equal(t, "120", won["price"])

		lost := data[1].(map[string]any)
		require.Equal(t, false, lost["won"])
		require.Nil(t, lost["price"])
	})

	t.Run("defaults_when_no_query", func(t *testing.T) {
		mockService.EXPECT().Recent("user1", 0, 0).Return([]model.Notification{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/notifications", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service_error", func(t *testing.T) {
		mockService.EXPECT().Recent("user1", 0, 0).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/users/user1/notifications", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// Test ClearNotificationsHandler
func TestClearNotificationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockNotificationServiceInterface(ctrl)
	handler := NewNotificationHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/users/:user_id/notifications", handler.ClearNotificationsHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().ClearAll("user1").Return(3, nil)

		req := httptest.NewRequest(http.MethodDelete, "/users/user1/notifications", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, float64(3), data["deleted"])
	})

	t.Run("service_error", func(t *testing.T) {
		mockService.EXPECT().ClearAll("user1").Return(0, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodDelete, "/users/user1/notifications", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// Test ReprocessJobHandler
func TestReprocessJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSweeper := NewMockSchedulerInterface(ctrl)
	handler := NewSchedulerHandler(mockSweeper)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/jobs/:job_id/reprocess", handler.ReprocessJobHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		jobID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success",
			jobID: "job1",
			mockSetup: func() {
				mockSweeper.EXPECT().Reprocess("job1").Return(model.ScheduledJob{
					JobID:       "job1",
					AuctionID:   "a1",
					ScheduledAt: now.Add(-time.Minute),
					Status:      model.JobExecuted,
					ExecutedAt:  &now,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "job reprocessed",
		},
		{
			name:  "job_not_failed",
			jobID: "job2",
			mockSetup: func() {
				mockSweeper.EXPECT().Reprocess("job2").
					Return(model.ScheduledJob{}, auctionerrors.ErrJobNotFailed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "job is not in FAILED state",
		},
		{
			name:  "job_not_found",
			jobID: "missing",
			mockSetup: func() {
				mockSweeper.EXPECT().Reprocess("missing").
					Return(model.ScheduledJob{}, auctionerrors.ErrJobNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "job not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/jobs/"+tc.jobID+"/reprocess", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}
