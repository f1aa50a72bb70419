package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportplex/SP-BookingService/internal/api/middleware"
	createBooking "github.com/sportplex/SP-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return f.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// newRequest собирает запрос, прошедший через Auth middleware
func newRequest(t *testing.T, userID, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return req
}

func serve(handler *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"arenaId":1,"bookingDate":"2026-09-15","startTime":"10:00","durationHours":2}`

func TestHandle_Created(t *testing.T) {
	userName := "Alice Smith"
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			assert.Equal(t, int64(42), req.UserID)
			assert.Equal(t, int64(1), req.ArenaID)
			assert.Equal(t, "10:00", req.StartTime.String())
			assert.Equal(t, 2, req.DurationHours)

			return &createBooking.Response{
				ID:            7,
				Reference:     "2b6e2f9a-7e4e-4b8e-a0c3-93a5a8d1f001",
				UserID:        req.UserID,
				ArenaID:       req.ArenaID,
				BookingDate:   req.Date,
				StartTime:     req.StartTime,
				DurationHours: req.DurationHours,
				TotalPrice:    10000,
				Status:        "upcoming",
				ArenaName:     "Downtown Basketball Court",
				UserName:      &userName,
				CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
				UpdatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := serve(handler, newRequest(t, "42", validBody))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-15", resp.BookingDate)
	assert.Equal(t, int64(10000), resp.TotalPrice)
	assert.Equal(t, "upcoming", resp.Status)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := serve(handler, newRequest(t, "", validBody))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := serve(handler, newRequest(t, "42", `{"arenaId":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := serve(handler, newRequest(t, "42", `{"arenaId":1,"bookingDate":"15.09.2026","startTime":"10:00","durationHours":2}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "arena not found", err: createBooking.ErrArenaNotFound, wantCode: http.StatusNotFound},
		{name: "slot unavailable", err: createBooking.ErrSlotUnavailable, wantCode: http.StatusConflict},
		{name: "invalid date", err: createBooking.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "invalid duration", err: createBooking.ErrInvalidDuration, wantCode: http.StatusBadRequest},
		{name: "booking window", err: createBooking.ErrInvalidBookingWindow, wantCode: http.StatusBadRequest},
		{name: "persistence timeout", err: createBooking.ErrPersistenceTimeout, wantCode: http.StatusGatewayTimeout},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFn: func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.err
				},
			}
			handler := NewHandler(uc, nopLogger{})

			rec := serve(handler, newRequest(t, "42", validBody))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
