package state

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "userfeed/internal/domain/user"
	"userfeed/internal/usecase/user"
)

// UsersState is the single UI-facing snapshot of the users feed. It is
// replaced wholesale on every change; observers must treat it as read-only.
// An empty ErrorMessage means no error.
type UsersState struct {
	Loading      bool
	Users        []domain.User
	ErrorMessage string
}

// Options tunes a Container. The zero value gives production behavior.
type Options struct {
	// Dispatch runs the asynchronous part of Load. It defaults to starting
	// a goroutine; tests substitute a synchronous dispatcher to make load
	// completion deterministic.
	Dispatch func(fn func())
}

type subscription struct {
	id int
	fn func(UsersState)
}

// Container owns the observable UsersState and runs load operations.
// It is the sole mutator of its state. Publications from a single Load are
// observed in order: loading first, then the terminal state.
type Container struct {
	uc       user.Usecase
	log      *zap.Logger
	dispatch func(fn func())

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	current    UsersState
	generation uint64
	subs       []subscription
	nextSubID  int
	cleared    bool
}

// New creates a Container in the initial loading state.
func New(uc user.Usecase, log *zap.Logger) *Container {
	return NewWithOptions(uc, log, Options{})
}

// NewWithOptions creates a Container with explicit options.
func NewWithOptions(uc user.Usecase, log *zap.Logger, opts Options) *Container {
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(fn func()) { go fn() }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		uc:       uc,
		log:      log,
		dispatch: dispatch,
		ctx:      ctx,
		cancel:   cancel,
		current:  UsersState{Loading: true},
	}
}

// Current returns the latest published state without triggering a load.
func (c *Container) Current() UsersState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe registers fn to be invoked on every state replacement, in
// registration order. The returned function removes the subscription and is
// safe to call more than once. Callbacks run while the container lock is
// held and must not call back into the container.
func (c *Container) Subscribe(fn func(UsersState)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subs = append(c.subs, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Load publishes the loading state and runs the use case asynchronously.
// The loading state clears any previous error but keeps the previous user
// list visible until the new outcome lands. Every Load is tagged with a
// generation; a completion whose generation has been superseded by a newer
// Load is discarded unpublished, so the latest issued Load always wins.
// Load must not be called after Clear.
func (c *Container) Load() {
	loadID := uuid.NewString()

	c.mu.Lock()
	if c.cleared {
		c.mu.Unlock()
		c.log.Warn("load called on cleared container", zap.String("load_id", loadID))
		return
	}
	c.generation++
	gen := c.generation
	c.publishLocked(UsersState{Loading: true, Users: c.current.Users})
	c.wg.Add(1)
	c.mu.Unlock()

	c.log.Debug("load started",
		zap.String("load_id", loadID),
		zap.Uint64("generation", gen),
	)

	ctx := c.ctx
	c.dispatch(func() {
		defer c.wg.Done()

		res := c.uc.GetUsers(ctx)
		if ctx.Err() != nil {
			c.log.Debug("load cancelled", zap.String("load_id", loadID))
			return
		}

		var next UsersState
		if res.IsOk() {
			next = UsersState{Users: res.Value()}
		} else {
			next = UsersState{ErrorMessage: res.Message()}
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.cleared || gen != c.generation {
			c.log.Debug("discarding stale load result",
				zap.String("load_id", loadID),
				zap.Uint64("generation", gen),
				zap.Uint64("current_generation", c.generation),
			)
			return
		}
		c.publishLocked(next)
	})
}

// Clear cancels outstanding work, waits for it to finish and drops all
// subscriptions. It is idempotent. The container is unusable afterwards.
func (c *Container) Clear() {
	c.mu.Lock()
	if c.cleared {
		c.mu.Unlock()
		return
	}
	c.cleared = true
	c.subs = nil
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
	c.log.Debug("state container cleared")
}

// publishLocked replaces the current state and notifies subscribers in
// registration order. Callers must hold c.mu.
func (c *Container) publishLocked(next UsersState) {
	c.current = next
	for _, s := range c.subs {
		s.fn(next)
	}
}
