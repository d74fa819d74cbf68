package user

import (
	"context"

	domain "userfeed/internal/domain/user"
	"userfeed/pkg/result"
)

// Usecase defines the interface for the users feed business logic.
type Usecase interface {
	GetUsers(ctx context.Context) result.Result[[]domain.User]
}
