package repository

import (
	"context"

	"go.uber.org/zap"

	"userfeed/internal/adapter/rest"
	domain "userfeed/internal/domain/user"
	"userfeed/internal/mapper"
	"userfeed/pkg/result"
)

// Fetcher retrieves the raw wire records from the remote endpoint.
type Fetcher interface {
	FetchUsers(ctx context.Context) result.Result[[]rest.UserDTO]
}

// UserRepository assembles the domain user list from a fetch: it maps every
// wire record and silently drops the ones that fail validation. A single
// malformed record never fails the whole call.
type UserRepository struct {
	fetcher Fetcher
	mapper  *mapper.Mapper
	log     *zap.Logger
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(f Fetcher, m *mapper.Mapper, log *zap.Logger) *UserRepository {
	return &UserRepository{fetcher: f, mapper: m, log: log}
}

// GetUsers fetches and maps the user list. A fetch failure is forwarded
// with its message and cause intact. On success the returned list holds
// only valid users, in the order received; it may be shorter than the wire
// payload and may be empty.
func (r *UserRepository) GetUsers(ctx context.Context) result.Result[[]domain.User] {
	res := r.fetcher.FetchUsers(ctx)
	if !res.IsOk() {
		return result.Err[[]domain.User](res.Message(), res.Cause())
	}

	dtos := res.Value()
	users := make([]domain.User, 0, len(dtos))
	dropped := 0
	for _, dto := range dtos {
		u, ok := r.mapper.Map(dto)
		if !ok {
			dropped++
			continue
		}
		users = append(users, u)
	}

	if dropped > 0 {
		r.log.Debug("dropped invalid user records",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(users)),
		)
	}
	return result.Ok(users)
}
