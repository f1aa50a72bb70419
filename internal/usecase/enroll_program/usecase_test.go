package enroll_program

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportplex/SP-BookingService/internal/domain"
	enrollmentRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/enrollment"
	programRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/program"
	"github.com/sportplex/SP-BookingService/pkg/txmanager"
)

type fakeProgramRepo struct {
	getByIDFn           func(ctx context.Context, id int64) (*domain.Program, error)
	incrementEnrolledFn func(ctx context.Context, id int64) error
}

func (f *fakeProgramRepo) GetByID(ctx context.Context, id int64) (*domain.Program, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeProgramRepo) IncrementEnrolled(ctx context.Context, id int64) error {
	return f.incrementEnrolledFn(ctx, id)
}

type fakeEnrollmentRepo struct {
	createFn              func(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	getByProgramAndUserFn func(ctx context.Context, programID, userID int64) (*domain.Enrollment, error)
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	return f.createFn(ctx, enrollment)
}

func (f *fakeEnrollmentRepo) GetByProgramAndUser(ctx context.Context, programID, userID int64) (*domain.Enrollment, error) {
	return f.getByProgramAndUserFn(ctx, programID, userID)
}

type fakeIdentityClient struct {
	getPrincipalFn func(ctx context.Context, userID int64) (*domain.Principal, error)
}

func (f *fakeIdentityClient) GetPrincipal(ctx context.Context, userID int64) (*domain.Principal, error) {
	return f.getPrincipalFn(ctx, userID)
}

// fakeTxManager сериализует конкурентные транзакции мьютексом
type fakeTxManager struct {
	mu  sync.Mutex
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testProgram() *domain.Program {
	return &domain.Program{
		ID:            1,
		Title:         "Elite Basketball Training",
		SportType:     domain.SportBasketball,
		Price:         12000,
		Capacity:      15,
		EnrolledCount: 8,
	}
}

func testPrincipal() *domain.Principal {
	return &domain.Principal{
		ID:    42,
		Name:  "Alice Smith",
		Email: "alice@example.com",
		Role:  domain.RoleUser,
	}
}

func okIdentity() *fakeIdentityClient {
	return &fakeIdentityClient{
		getPrincipalFn: func(ctx context.Context, userID int64) (*domain.Principal, error) {
			p := testPrincipal()
			p.ID = userID
			return p, nil
		},
	}
}

func noExistingEnrollment() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		getByProgramAndUserFn: func(ctx context.Context, programID, userID int64) (*domain.Enrollment, error) {
			return nil, enrollmentRepo.ErrEnrollmentNotFound
		},
		createFn: func(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
			enrollment.ID = 100
			enrollment.CreatedAt = time.Now()
			return enrollment, nil
		},
	}
}

func TestExecute_Success(t *testing.T) {
	programs := &fakeProgramRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Program, error) {
			return testProgram(), nil
		},
		incrementEnrolledFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}

	uc := NewUseCase(programs, noExistingEnrollment(), okIdentity(), &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, string(domain.EnrollmentActive), resp.Status)
	assert.Equal(t, int64(12000), resp.Price.Minor())
	assert.Equal(t, "Elite Basketball Training", resp.ProgramTitle)
	// 15 - 8 - 1 = 6 мест после зачисления
	assert.Equal(t, 6, resp.SpotsLeft)
}

func TestExecute_LastSpot(t *testing.T) {
	programs := &fakeProgramRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Program, error) {
			program := testProgram()
			program.EnrolledCount = 14
			return program, nil
		},
		incrementEnrolledFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}

	uc := NewUseCase(programs, noExistingEnrollment(), okIdentity(), &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 1})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.SpotsLeft)
}

func TestExecute_ProgramFull(t *testing.T) {
	programs := &fakeProgramRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Program, error) {
			program := testProgram()
			program.EnrolledCount = program.Capacity
			return program, nil
		},
		incrementEnrolledFn: func(ctx context.Context, id int64) error {
			return programRepo.ErrCapacityExceeded
		},
	}
	enrollments := noExistingEnrollment()
	enrollments.createFn = func(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
		t.Fatal("enrollment must not be created when the program is full")
		return nil, nil
	}

	uc := NewUseCase(programs, enrollments, okIdentity(), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 1})

	assert.ErrorIs(t, err, ErrProgramFull)
}

func TestExecute_AlreadyEnrolled(t *testing.T) {
	programs := &fakeProgramRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Program, error) {
			return testProgram(), nil
		},
		incrementEnrolledFn: func(ctx context.Context, id int64) error {
			t.Fatal("enrolled count must not change for a duplicate enrollment")
			return nil
		},
	}
	enrollments := &fakeEnrollmentRepo{
		getByProgramAndUserFn: func(ctx context.Context, programID, userID int64) (*domain.Enrollment, error) {
			return &domain.Enrollment{ID: 55, ProgramID: programID, UserID: userID, Status: domain.EnrollmentActive}, nil
		},
	}

	uc := NewUseCase(programs, enrollments, okIdentity(), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 1})

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestExecute_ProgramNotFound(t *testing.T) {
	programs := &fakeProgramRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Program, error) {
			return nil, programRepo.ErrProgramNotFound
		},
	}

	uc := NewUseCase(programs, noExistingEnrollment(), okIdentity(), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 99})

	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestExecute_Unauthenticated(t *testing.T) {
	uc := NewUseCase(&fakeProgramRepo{}, &fakeEnrollmentRepo{}, &fakeIdentityClient{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, ProgramID: 1})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestExecute_InvalidProgramID(t *testing.T) {
	uc := NewUseCase(&fakeProgramRepo{}, &fakeEnrollmentRepo{}, &fakeIdentityClient{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PersistenceTimeout(t *testing.T) {
	uc := NewUseCase(&fakeProgramRepo{}, &fakeEnrollmentRepo{}, okIdentity(), &fakeTxManager{err: txmanager.ErrTimeout}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, ProgramID: 1})
	assert.ErrorIs(t, err, ErrPersistenceTimeout)
}

// TestExecute_ConcurrentEnrollments проверяет, что при N конкурентных запросах
// на C свободных мест успешными будут ровно C
func TestExecute_ConcurrentEnrollments(t *testing.T) {
	const (
		capacity   = 3
		contenders = 10
	)

	// In-memory состояние программы, защищенное мьютексом транзакций
	state := struct {
		enrolledCount int
		nextID        int64
	}{}

	programs := &fakeProgramRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Program, error) {
			program := testProgram()
			program.Capacity = capacity
			program.EnrolledCount = state.enrolledCount
			return program, nil
		},
		incrementEnrolledFn: func(ctx context.Context, id int64) error {
			if state.enrolledCount >= capacity {
				return programRepo.ErrCapacityExceeded
			}
			state.enrolledCount++
			return nil
		},
	}
	enrollments := &fakeEnrollmentRepo{
		getByProgramAndUserFn: func(ctx context.Context, programID, userID int64) (*domain.Enrollment, error) {
			return nil, enrollmentRepo.ErrEnrollmentNotFound
		},
		createFn: func(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
			state.nextID++
			enrollment.ID = state.nextID
			return enrollment, nil
		},
	}

	uc := NewUseCase(programs, enrollments, okIdentity(), &fakeTxManager{}, nopLogger{})

	var (
		wg        sync.WaitGroup
		successMu sync.Mutex
		successes int
		fullCount int
	)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()

			_, err := uc.Execute(context.Background(), &Request{UserID: userID, ProgramID: 1})

			successMu.Lock()
			defer successMu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrProgramFull):
				fullCount++
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, capacity, successes)
	assert.Equal(t, contenders-capacity, fullCount)
	assert.Equal(t, capacity, state.enrolledCount)
}
