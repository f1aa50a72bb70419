package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportplex/SP-BookingService/internal/domain"
	bookingRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/booking"
	"github.com/sportplex/SP-BookingService/internal/service/bookings/models"
	"github.com/sportplex/SP-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUserIDFn  func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	cancelFn       func(ctx context.Context, id int64, reason string) error
	updateStatusFn func(ctx context.Context, id int64, status domain.BookingStatus) error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.getByUserIDFn(ctx, userID, status)
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return f.cancelFn(ctx, id, reason)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

type fakeIdentityClient struct {
	getPrincipalFn func(ctx context.Context, userID int64) (*domain.Principal, error)
}

func (f *fakeIdentityClient) GetPrincipal(ctx context.Context, userID int64) (*domain.Principal, error) {
	return f.getPrincipalFn(ctx, userID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func identityWithRoles(roles map[int64]domain.Role) *fakeIdentityClient {
	return &fakeIdentityClient{
		getPrincipalFn: func(ctx context.Context, userID int64) (*domain.Principal, error) {
			role, ok := roles[userID]
			if !ok {
				role = domain.RoleUser
			}
			return &domain.Principal{ID: userID, Name: "Test User", Email: "user@example.com", Role: role}, nil
		},
	}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            10,
		Reference:     "ref-10",
		UserID:        42,
		ArenaID:       1,
		BookingDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		DurationHours: 2,
		TotalPrice:    10000,
		Status:        status,
		ArenaName:     "Downtown Basketball Court",
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusUpcoming), nil
		},
	}

	t.Run("owner can read own booking", func(t *testing.T) {
		svc := NewService(repo, identityWithRoles(nil), nopLogger{})

		resp, err := svc.GetByID(context.Background(), &models.GetBookingRequest{BookingID: 10, RequestorID: 42})

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "2026-09-15", resp.BookingDate)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "12:00", resp.EndTime)
		assert.Equal(t, int64(10000), resp.TotalPrice)
	})

	t.Run("admin can read someone else's booking", func(t *testing.T) {
		svc := NewService(repo, identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), nopLogger{})

		resp, err := svc.GetByID(context.Background(), &models.GetBookingRequest{BookingID: 10, RequestorID: 99})

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.UserID)
	})

	t.Run("other user is denied", func(t *testing.T) {
		svc := NewService(repo, identityWithRoles(nil), nopLogger{})

		_, err := svc.GetByID(context.Background(), &models.GetBookingRequest{BookingID: 10, RequestorID: 77})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		missing := &fakeBookingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return nil, bookingRepo.ErrBookingNotFound
			},
		}
		svc := NewService(missing, identityWithRoles(nil), nopLogger{})

		_, err := svc.GetByID(context.Background(), &models.GetBookingRequest{BookingID: 404, RequestorID: 42})

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{
		getByUserIDFn: func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
			return []*domain.Booking{testBooking(domain.StatusUpcoming)}, nil
		},
	}

	t.Run("own bookings without admin check", func(t *testing.T) {
		identity := &fakeIdentityClient{
			getPrincipalFn: func(ctx context.Context, userID int64) (*domain.Principal, error) {
				t.Fatal("identity service must not be called for own bookings")
				return nil, nil
			},
		}
		svc := NewService(repo, identity, nopLogger{})

		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42, RequestorID: 42})

		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
	})

	t.Run("cross-user requires admin", func(t *testing.T) {
		svc := NewService(repo, identityWithRoles(nil), nopLogger{})

		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42, RequestorID: 77})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("status filter is validated and passed through", func(t *testing.T) {
		filtered := &fakeBookingRepo{
			getByUserIDFn: func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
				require.NotNil(t, status)
				assert.Equal(t, domain.StatusCancelled, *status)
				return nil, nil
			},
		}
		svc := NewService(filtered, identityWithRoles(nil), nopLogger{})

		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42, RequestorID: 42, Status: ptr.Ptr("cancelled")})

		require.NoError(t, err)
		assert.Empty(t, resp.Bookings)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewService(repo, identityWithRoles(nil), nopLogger{})

		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42, RequestorID: 42, Status: ptr.Ptr("pending")})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	newRepo := func(status domain.BookingStatus) *fakeBookingRepo {
		booking := testBooking(status)
		return &fakeBookingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return booking, nil
			},
			cancelFn: func(ctx context.Context, id int64, reason string) error {
				booking.Status = domain.StatusCancelled
				booking.CancellationReason = &reason
				now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
				booking.CancelledAt = &now
				return nil
			},
		}
	}

	t.Run("owner cancels upcoming booking", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusUpcoming), identityWithRoles(nil), nopLogger{})

		resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
			BookingID:   10,
			RequestorID: 42,
			Reason:      "schedule conflict",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "schedule conflict", *resp.CancellationReason)
		require.NotNil(t, resp.CancelledAt)
	})

	t.Run("admin cancels someone else's booking", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusUpcoming), identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), nopLogger{})

		resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 10, RequestorID: 99})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("other user is denied", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusUpcoming), identityWithRoles(nil), nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 10, RequestorID: 77})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusCompleted), identityWithRoles(nil), nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 10, RequestorID: 42})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("already cancelled booking cannot be cancelled again", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusCancelled), identityWithRoles(nil), nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 10, RequestorID: 42})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("reason over the limit is rejected", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusUpcoming), identityWithRoles(nil), nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
			BookingID:   10,
			RequestorID: 42,
			Reason:      strings.Repeat("x", domain.MaxCancellationReasonLength+1),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestComplete(t *testing.T) {
	newRepo := func(status domain.BookingStatus) *fakeBookingRepo {
		booking := testBooking(status)
		return &fakeBookingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return booking, nil
			},
			updateStatusFn: func(ctx context.Context, id int64, status domain.BookingStatus) error {
				booking.Status = status
				return nil
			},
		}
	}

	t.Run("admin completes upcoming booking", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusUpcoming), identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), nopLogger{})

		resp, err := svc.Complete(context.Background(), &models.CompleteBookingRequest{BookingID: 10, RequestorID: 99})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	})

	t.Run("owner without admin role is denied", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusUpcoming), identityWithRoles(nil), nopLogger{})

		_, err := svc.Complete(context.Background(), &models.CompleteBookingRequest{BookingID: 10, RequestorID: 42})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled booking cannot be completed", func(t *testing.T) {
		svc := NewService(newRepo(domain.StatusCancelled), identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), nopLogger{})

		_, err := svc.Complete(context.Background(), &models.CompleteBookingRequest{BookingID: 10, RequestorID: 99})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}
