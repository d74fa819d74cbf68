package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"userfeed/internal/adapter/repository"
	"userfeed/internal/adapter/rest"
	"userfeed/internal/config"
	"userfeed/internal/mapper"
	"userfeed/internal/state"
	"userfeed/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	UserUC user.Usecase
	State  *state.Container
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize REST client
	client := rest.NewClient(cfg.API.BaseURL, rest.Timeouts{
		Connect: time.Duration(cfg.API.ConnectTimeoutSeconds) * time.Second,
		Request: time.Duration(cfg.API.RequestTimeoutSeconds) * time.Second,
		Socket:  time.Duration(cfg.API.SocketTimeoutSeconds) * time.Second,
	}, l)

	// Initialize repository
	repo := repository.NewUserRepository(client, mapper.New(), l)

	// Initialize use case
	userUC := user.New(repo, l)

	// Initialize state container
	sc := state.New(userUC, l)

	return &Container{
		Config: cfg,
		Logger: l,
		UserUC: userUC,
		State:  sc,
	}, nil
}

// Close releases all resources held by the container
func (c *Container) Close() error {
	if c.State != nil {
		c.State.Clear()
	}
	return nil
}
