package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"userfeed/internal/adapter/rest"
	domain "userfeed/internal/domain/user"
	"userfeed/internal/mapper"
	"userfeed/pkg/result"
)

// MockFetcher is a mock implementation of the Fetcher interface
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchUsers(ctx context.Context) result.Result[[]rest.UserDTO] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[[]rest.UserDTO])
}

func setupTestRepository(t *testing.T) (*UserRepository, *MockFetcher) {
	mockFetcher := new(MockFetcher)
	repo := NewUserRepository(mockFetcher, mapper.New(), zaptest.NewLogger(t))
	return repo, mockFetcher
}

func TestGetUsers_MapsAllValidRecords(t *testing.T) {
	repo, mockFetcher := setupTestRepository(t)
	ctx := context.Background()

	mockFetcher.On("FetchUsers", ctx).Return(result.Ok([]rest.UserDTO{
		{ID: 1, Name: "Bob", Email: "bob@x.com"},
		{ID: 2, Name: "Ann", Email: "ann@x.com"},
	}))

	res := repo.GetUsers(ctx)

	require.True(t, res.IsOk())
	assert.Equal(t, []domain.User{
		{ID: 1, Name: "Bob", Email: "bob@x.com"},
		{ID: 2, Name: "Ann", Email: "ann@x.com"},
	}, res.Value())

	mockFetcher.AssertExpectations(t)
}

func TestGetUsers_DropsInvalidKeepsValidInOrder(t *testing.T) {
	repo, mockFetcher := setupTestRepository(t)
	ctx := context.Background()

	mockFetcher.On("FetchUsers", ctx).Return(result.Ok([]rest.UserDTO{
		{ID: 1, Name: "Bob", Email: "bob@x.com"},
		{ID: 2, Name: "   ", Email: "blank@x.com"}, // blank name, dropped
		{ID: 3, Name: "Cat", Email: "cat@x.com"},
	}))

	res := repo.GetUsers(ctx)

	require.True(t, res.IsOk())
	assert.Equal(t, []domain.User{
		{ID: 1, Name: "Bob", Email: "bob@x.com"},
		{ID: 3, Name: "Cat", Email: "cat@x.com"},
	}, res.Value())
}

func TestGetUsers_AllInvalidYieldsEmptyOk(t *testing.T) {
	repo, mockFetcher := setupTestRepository(t)
	ctx := context.Background()

	mockFetcher.On("FetchUsers", ctx).Return(result.Ok([]rest.UserDTO{
		{ID: -1, Name: "Bad", Email: "bad@x.com"},
		{ID: 2, Name: "NoAt", Email: "not-an-email"},
	}))

	res := repo.GetUsers(ctx)

	require.True(t, res.IsOk())
	assert.Empty(t, res.Value())
}

func TestGetUsers_EmptyFetchYieldsEmptyOk(t *testing.T) {
	repo, mockFetcher := setupTestRepository(t)
	ctx := context.Background()

	mockFetcher.On("FetchUsers", ctx).Return(result.Ok([]rest.UserDTO{}))

	res := repo.GetUsers(ctx)

	require.True(t, res.IsOk())
	assert.Empty(t, res.Value())
}

func TestGetUsers_PropagatesFetchFailureUnchanged(t *testing.T) {
	repo, mockFetcher := setupTestRepository(t)
	ctx := context.Background()
	cause := errors.New("dial tcp: connection refused")

	mockFetcher.On("FetchUsers", ctx).Return(result.Err[[]rest.UserDTO](rest.MsgNetwork, cause))

	res := repo.GetUsers(ctx)

	require.False(t, res.IsOk())
	assert.Equal(t, rest.MsgNetwork, res.Message())
	assert.Same(t, cause, res.Cause())
	assert.Empty(t, res.Value())
}
