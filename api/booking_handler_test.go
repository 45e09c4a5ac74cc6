package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/circulo-sport/courtdesk/api"
	mock_api "github.com/circulo-sport/courtdesk/api/mocks"
	bk "github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testPIN = "4321"

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	api.RegisterValidators()

	return gin.Default()
}

func setupRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	router := newEngine()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService, api.DeskPIN(testPIN))
	handler.Register(router.Group("/api/v1/bookings"))

	return router, ctrl, mockService
}

func TestListBookings(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		bookings := []bk.Booking{
			{ID: "1", CourtID: "padel-1", Date: "2024-05-10", Start: "10:00", End: "11:00", Method: cash.MethodPending, Status: bk.StatusActive, BasePrice: decimal.NewFromInt(10000)},
			{ID: "2", CourtID: "padel-2", Date: "2024-05-11", Start: "18:00", End: "19:30", Method: cash.MethodCash, Status: bk.StatusActive},
		}

		bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
		mockService.EXPECT().GetBookings(gomock.Any()).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bookingsJson), w.Body.String())
	})

	t.Run("by date", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsByDate(gomock.Any(), "2024-05-10").Return([]bk.Booking{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings?date=2024-05-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings?date=10/05/2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"date must be YYYY-MM-DD"}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().GetBookings(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve bookings"}`, w.Body.String())
	})
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", CourtID: "padel-1"}
		bJson, _ := json.MarshalIndent(b, "", "    ")
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch booking"}`, w.Body.String())
	})
}

func TestAvailability(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().IsAvailable(gomock.Any(), "padel-1", "2024-05-10", "10:00", "11:30", "b1").Return(true, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/availability?courtId=padel-1&date=2024-05-10&start=10:00&end=11:30&excludeId=b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"available":true}`, w.Body.String())
	})

	t.Run("malformed time", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/availability?courtId=padel-1&date=2024-05-10&start=10h&end=11:30", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		toCreate := bk.Booking{ID: "ignored", CourtID: "padel-1", Date: "2024-05-10", Start: "10:00", End: "11:00", Method: cash.MethodPending}
		saved := bk.Saved{Booking: bk.Booking{ID: "123", CourtID: "padel-1"}, Entries: []cash.Entry{}}
		savedJson, _ := json.Marshal(saved)
		body, _ := json.Marshal(toCreate)

		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b bk.Booking) (bk.Saved, error) {
			assert.Empty(t, b.ID)
			assert.Equal(t, "padel-1", b.CourtID)
			return saved, nil
		}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(savedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("numeric strings are accepted as amounts", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b bk.Booking) (bk.Saved, error) {
			assert.True(t, decimal.NewFromInt(1200).Equal(b.BasePrice))
			assert.True(t, decimal.NewFromInt(300).Equal(b.Deposit))
			return bk.Saved{Booking: b}, nil
		}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(`{"courtId":"padel-1","basePrice":"1200","deposit":300}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("malformed amounts are rejected", func(t *testing.T) {
		bodies := map[string]string{
			"base price":     `{"courtId":"padel-1","basePrice":"12OO"}`,
			"deposit":        `{"courtId":"padel-1","deposit":"abc"}`,
			"addon price":    `{"courtId":"padel-1","addons":[{"id":"x","price":"1,5","quantity":1}]}`,
			"addon quantity": `{"courtId":"padel-1","addons":[{"id":"x","price":100,"quantity":"2"}]}`,
		}

		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				router, ctrl, mockService := setupRouter(t)
				defer ctrl.Finish()

				mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

				w := httptest.NewRecorder()
				req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(body))
				req.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(w, req)

				assert.Equal(t, 400, w.Code)
				assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
			})
		}
	})

	t.Run("slot taken", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Return(bk.Saved{}, bk.ErrSlotUnavailable).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(`{"courtId":"padel-1"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"the selected slot is already taken"}`, w.Body.String())
	})

	t.Run("invalid booking", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Return(bk.Saved{}, bk.ErrInvalidBooking).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(`{"courtId":"padel-1"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid booking"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Return(bk.Saved{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(`{"courtId":"padel-1"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to create booking"}`, w.Body.String())
	})
}

func TestCreateWeekly(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		series := bk.Series{SeriesID: "s1", Bookings: []bk.Booking{{ID: "1"}, {ID: "2"}}, Entries: []cash.Entry{}, Conflicts: []string{"2024-05-24"}}
		seriesJson, _ := json.Marshal(series)

		mockService.EXPECT().SaveWeekly(gomock.Any(), gomock.Any(), 4).Return(series, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/weekly", bytes.NewBufferString(`{"booking":{"courtId":"padel-1","date":"2024-05-10"},"weeks":4}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(seriesJson), w.Body.String())
	})

	t.Run("malformed amount", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().SaveWeekly(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/weekly", bytes.NewBufferString(`{"booking":{"courtId":"padel-1","basePrice":"12OO"},"weeks":4}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("too many weeks", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/weekly", bytes.NewBufferString(`{"booking":{},"weeks":60}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestModify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{ID: "123"}, nil).Times(1)
		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b bk.Booking) (bk.Saved, error) {
			assert.Equal(t, "123", b.ID)
			assert.Equal(t, cash.MethodCash, b.Method)
			return bk.Saved{Booking: b}, nil
		}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("malformed amount", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), gomock.Any()).Times(0)
		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123", bytes.NewBufferString(`{"method":"cash","basePrice":"12OO"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)
		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})

	t.Run("back to pending", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{ID: "123"}, nil).Times(1)
		mockService.EXPECT().Save(gomock.Any(), gomock.Any()).Return(bk.Saved{}, bk.ErrConfirmedToPending).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123", bytes.NewBufferString(`{"method":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"a confirmed booking cannot go back to pending"}`, w.Body.String())
	})
}

func TestCancel(t *testing.T) {
	router, ctrl, mockService := setupRouter(t)
	defer ctrl.Finish()

	cancelled := bk.Booking{ID: "123", Status: bk.StatusCancelled}
	cancelledJson, _ := json.Marshal(cancelled)
	mockService.EXPECT().Cancel(gomock.Any(), "123").Return(cancelled, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/cancel", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(cancelledJson), w.Body.String())
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Delete(gomock.Any(), "123").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/bookings/123", nil)
		req.Header.Set("X-Desk-PIN", testPIN)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking deleted"}`, w.Body.String())
	})

	t.Run("missing pin", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing PIN"}`, w.Body.String())
	})

	t.Run("wrong pin", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/bookings/123", nil)
		req.Header.Set("X-Desk-PIN", "0000")
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"invalid PIN"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Delete(gomock.Any(), "123").Return(bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/bookings/123", nil)
		req.Header.Set("X-Desk-PIN", testPIN)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestStats(t *testing.T) {
	t.Run("per court", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		stats := []bk.CourtBookingCount{{CourtID: "padel-1", Count: 3}}
		mockService.EXPECT().GetBookingCountPerCourt(gomock.Any(), "2024-05-01", "2024-05-31").Return(stats, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/stats/court?from=2024-05-01&to=2024-05-31", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{"courtId":"padel-1","bookingCount":3}]`, w.Body.String())
	})

	t.Run("per week day", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		stats := []bk.WeekDayBookingCount{{WeekDay: "Friday", Count: 2}}
		mockService.EXPECT().GetBookingCountPerWeekDay(gomock.Any(), "", "").Return(stats, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/stats/day", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{"dayOfWeek":"Friday","bookingCount":2}]`, w.Body.String())
	})

	t.Run("bad period", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/stats/day?from=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}
