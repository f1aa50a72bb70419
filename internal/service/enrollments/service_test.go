package enrollments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportplex/SP-BookingService/internal/domain"
	enrollmentRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/enrollment"
	"github.com/sportplex/SP-BookingService/internal/service/enrollments/models"
	"github.com/sportplex/SP-BookingService/pkg/ptr"
	"github.com/sportplex/SP-BookingService/pkg/txmanager"
)

type fakeEnrollmentRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Enrollment, error)
	getByUserIDFn  func(ctx context.Context, userID int64, status *domain.EnrollmentStatus) ([]*domain.Enrollment, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.EnrollmentStatus) error
}

func (f *fakeEnrollmentRepo) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEnrollmentRepo) GetByUserID(ctx context.Context, userID int64, status *domain.EnrollmentStatus) ([]*domain.Enrollment, error) {
	return f.getByUserIDFn(ctx, userID, status)
}

func (f *fakeEnrollmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

type fakeProgramRepo struct {
	decrementEnrolledFn func(ctx context.Context, id int64) error

	decrements int
}

func (f *fakeProgramRepo) DecrementEnrolled(ctx context.Context, id int64) error {
	f.decrements++
	if f.decrementEnrolledFn != nil {
		return f.decrementEnrolledFn(ctx, id)
	}
	return nil
}

type fakeIdentityClient struct {
	getPrincipalFn func(ctx context.Context, userID int64) (*domain.Principal, error)
}

func (f *fakeIdentityClient) GetPrincipal(ctx context.Context, userID int64) (*domain.Principal, error) {
	return f.getPrincipalFn(ctx, userID)
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
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
			return &domain.Principal{ID: userID, Role: role}, nil
		},
	}
}

func testEnrollment(status domain.EnrollmentStatus) *domain.Enrollment {
	return &domain.Enrollment{
		ID:           5,
		Reference:    "ref-5",
		ProgramID:    1,
		UserID:       42,
		Status:       status,
		ProgramTitle: "Elite Basketball Training",
		Price:        12000,
		EnrolledAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(enrollments *fakeEnrollmentRepo, programs *fakeProgramRepo, identity *fakeIdentityClient, tx *fakeTxManager) *Service {
	return NewService(enrollments, programs, identity, tx, nopLogger{})
}

func TestGetUserEnrollments(t *testing.T) {
	repo := &fakeEnrollmentRepo{
		getByUserIDFn: func(ctx context.Context, userID int64, status *domain.EnrollmentStatus) ([]*domain.Enrollment, error) {
			return []*domain.Enrollment{testEnrollment(domain.EnrollmentActive)}, nil
		},
	}

	t.Run("own enrollments", func(t *testing.T) {
		svc := newTestService(repo, &fakeProgramRepo{}, identityWithRoles(nil), &fakeTxManager{})

		resp, err := svc.GetUserEnrollments(context.Background(), &models.GetUserEnrollmentsRequest{UserID: 42, RequestorID: 42})

		require.NoError(t, err)
		require.Len(t, resp.Enrollments, 1)
		assert.Equal(t, int64(12000), resp.Enrollments[0].Price)
	})

	t.Run("cross-user requires admin", func(t *testing.T) {
		svc := newTestService(repo, &fakeProgramRepo{}, identityWithRoles(nil), &fakeTxManager{})

		_, err := svc.GetUserEnrollments(context.Background(), &models.GetUserEnrollmentsRequest{UserID: 42, RequestorID: 77})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("status filter is validated", func(t *testing.T) {
		filtered := &fakeEnrollmentRepo{
			getByUserIDFn: func(ctx context.Context, userID int64, status *domain.EnrollmentStatus) ([]*domain.Enrollment, error) {
				require.NotNil(t, status)
				assert.Equal(t, domain.EnrollmentActive, *status)
				return nil, nil
			},
		}
		svc := newTestService(filtered, &fakeProgramRepo{}, identityWithRoles(nil), &fakeTxManager{})

		resp, err := svc.GetUserEnrollments(context.Background(), &models.GetUserEnrollmentsRequest{
			UserID:      42,
			RequestorID: 42,
			Status:      ptr.Ptr("active"),
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Enrollments)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := newTestService(repo, &fakeProgramRepo{}, identityWithRoles(nil), &fakeTxManager{})

		_, err := svc.GetUserEnrollments(context.Background(), &models.GetUserEnrollmentsRequest{
			UserID:      42,
			RequestorID: 42,
			Status:      ptr.Ptr("pending"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	newRepo := func(status domain.EnrollmentStatus) *fakeEnrollmentRepo {
		enrollment := testEnrollment(status)
		return &fakeEnrollmentRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Enrollment, error) {
				return enrollment, nil
			},
			updateStatusFn: func(ctx context.Context, id int64, status domain.EnrollmentStatus) error {
				enrollment.Status = status
				return nil
			},
		}
	}

	t.Run("owner cancels active enrollment and the spot is released", func(t *testing.T) {
		programs := &fakeProgramRepo{
			decrementEnrolledFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(1), id)
				return nil
			},
		}
		svc := newTestService(newRepo(domain.EnrollmentActive), programs, identityWithRoles(nil), &fakeTxManager{})

		resp, err := svc.Cancel(context.Background(), &models.CancelEnrollmentRequest{EnrollmentID: 5, RequestorID: 42})

		require.NoError(t, err)
		assert.Equal(t, string(domain.EnrollmentCancelled), resp.Status)
		assert.Equal(t, 1, programs.decrements)
	})

	t.Run("other user is denied", func(t *testing.T) {
		programs := &fakeProgramRepo{}
		svc := newTestService(newRepo(domain.EnrollmentActive), programs, identityWithRoles(nil), &fakeTxManager{})

		_, err := svc.Cancel(context.Background(), &models.CancelEnrollmentRequest{EnrollmentID: 5, RequestorID: 77})

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, programs.decrements)
	})

	t.Run("completed enrollment cannot be cancelled", func(t *testing.T) {
		programs := &fakeProgramRepo{}
		svc := newTestService(newRepo(domain.EnrollmentCompleted), programs, identityWithRoles(nil), &fakeTxManager{})

		_, err := svc.Cancel(context.Background(), &models.CancelEnrollmentRequest{EnrollmentID: 5, RequestorID: 42})

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Zero(t, programs.decrements)
	})

	t.Run("already cancelled enrollment does not release twice", func(t *testing.T) {
		programs := &fakeProgramRepo{}
		svc := newTestService(newRepo(domain.EnrollmentCancelled), programs, identityWithRoles(nil), &fakeTxManager{})

		_, err := svc.Cancel(context.Background(), &models.CancelEnrollmentRequest{EnrollmentID: 5, RequestorID: 42})

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Zero(t, programs.decrements)
	})

	t.Run("persistence timeout", func(t *testing.T) {
		svc := newTestService(newRepo(domain.EnrollmentActive), &fakeProgramRepo{}, identityWithRoles(nil), &fakeTxManager{err: txmanager.ErrTimeout})

		_, err := svc.Cancel(context.Background(), &models.CancelEnrollmentRequest{EnrollmentID: 5, RequestorID: 42})

		assert.ErrorIs(t, err, ErrPersistenceTimeout)
	})
}

func TestComplete(t *testing.T) {
	newRepo := func(status domain.EnrollmentStatus) *fakeEnrollmentRepo {
		enrollment := testEnrollment(status)
		return &fakeEnrollmentRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Enrollment, error) {
				return enrollment, nil
			},
			updateStatusFn: func(ctx context.Context, id int64, status domain.EnrollmentStatus) error {
				enrollment.Status = status
				return nil
			},
		}
	}

	t.Run("admin completes active enrollment", func(t *testing.T) {
		svc := newTestService(newRepo(domain.EnrollmentActive), &fakeProgramRepo{}, identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), &fakeTxManager{})

		resp, err := svc.Complete(context.Background(), &models.CompleteEnrollmentRequest{EnrollmentID: 5, RequestorID: 99})

		require.NoError(t, err)
		assert.Equal(t, string(domain.EnrollmentCompleted), resp.Status)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		svc := newTestService(newRepo(domain.EnrollmentActive), &fakeProgramRepo{}, identityWithRoles(nil), &fakeTxManager{})

		_, err := svc.Complete(context.Background(), &models.CompleteEnrollmentRequest{EnrollmentID: 5, RequestorID: 42})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already completed", func(t *testing.T) {
		svc := newTestService(newRepo(domain.EnrollmentCompleted), &fakeProgramRepo{}, identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), &fakeTxManager{})

		_, err := svc.Complete(context.Background(), &models.CompleteEnrollmentRequest{EnrollmentID: 5, RequestorID: 99})

		assert.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("cancelled enrollment cannot be completed", func(t *testing.T) {
		svc := newTestService(newRepo(domain.EnrollmentCancelled), &fakeProgramRepo{}, identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), &fakeTxManager{})

		_, err := svc.Complete(context.Background(), &models.CompleteEnrollmentRequest{EnrollmentID: 5, RequestorID: 99})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		missing := &fakeEnrollmentRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Enrollment, error) {
				return nil, enrollmentRepo.ErrEnrollmentNotFound
			},
		}
		svc := newTestService(missing, &fakeProgramRepo{}, identityWithRoles(map[int64]domain.Role{99: domain.RoleAdmin}), &fakeTxManager{})

		_, err := svc.Complete(context.Background(), &models.CompleteEnrollmentRequest{EnrollmentID: 404, RequestorID: 99})

		assert.ErrorIs(t, err, ErrEnrollmentNotFound)
	})
}
