package user

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
	"userfeed/pkg/result"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUsers(ctx context.Context) result.Result[[]domain.User] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[[]domain.User])
}

func setupTestUsecase(t *testing.T) (*UsersUsecase, *MockRepository) {
	mockRepo := new(MockRepository)
	uc := New(mockRepo, zaptest.NewLogger(t))
	return uc, mockRepo
}

func TestGetUsers_DelegatesSuccess(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()
	users := []domain.User{
		{ID: 1, Name: "Bob", Email: "bob@x.com"},
		{ID: 2, Name: "Ann", Email: "ann@x.com"},
	}

	mockRepo.On("GetUsers", ctx).Return(result.Ok(users))

	res := uc.GetUsers(ctx)

	require.True(t, res.IsOk())
	assert.Equal(t, users, res.Value())
	mockRepo.AssertExpectations(t)
}

func TestGetUsers_DelegatesFailureVerbatim(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()
	cause := errors.New("request timed out")

	mockRepo.On("GetUsers", ctx).Return(result.Err[[]domain.User](rest.MsgTimeout, cause))

	res := uc.GetUsers(ctx)

	require.False(t, res.IsOk())
	assert.Equal(t, rest.MsgTimeout, res.Message())
	assert.Same(t, cause, res.Cause())
	mockRepo.AssertExpectations(t)
}

func TestGetUsers_CallsRepositoryOnce(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetUsers", ctx).Return(result.Ok([]domain.User{})).Once()

	res := uc.GetUsers(ctx)

	require.True(t, res.IsOk())
	mockRepo.AssertExpectations(t)
}
