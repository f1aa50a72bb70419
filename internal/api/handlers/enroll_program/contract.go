package enroll_program

import (
	"context"

	enrollProgram "github.com/sportplex/SP-BookingService/internal/usecase/enroll_program"
)

type EnrollProgramUseCase interface {
	Execute(ctx context.Context, req *enrollProgram.Request) (*enrollProgram.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
