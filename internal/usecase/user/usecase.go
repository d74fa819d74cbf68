package user

import (
	"context"

	"go.uber.org/zap"

	domain "userfeed/internal/domain/user"
	"userfeed/pkg/result"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., REST, gRPC) to be used interchangeably.
type Repository interface {
	GetUsers(ctx context.Context) result.Result[[]domain.User]
}

// UsersUsecase is the orchestration step between state management and data
// access. It delegates to the repository unchanged; it is the extension
// point for future cross-cutting logic (filtering, caching, pagination)
// without a signature change for consumers. It introduces no error kinds
// of its own.
type UsersUsecase struct {
	repo Repository
	log  *zap.Logger
}

// New creates a new UsersUsecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *UsersUsecase {
	return &UsersUsecase{repo: r, log: log}
}

// GetUsers returns the repository result verbatim.
func (uc *UsersUsecase) GetUsers(ctx context.Context) result.Result[[]domain.User] {
	res := uc.repo.GetUsers(ctx)
	if !res.IsOk() {
		uc.log.Warn("get users failed",
			zap.String("message", res.Message()),
			zap.Error(res.Cause()),
		)
		return res
	}
	uc.log.Debug("get users succeeded", zap.Int("count", len(res.Value())))
	return res
}
