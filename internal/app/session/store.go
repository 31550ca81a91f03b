package session

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/observability/metrics"
)

const (
	loginFallback    = "Login failed. Please try again."
	registerFallback = "Registration failed"
)

// Authority is the part of the remote client the store needs.
type Authority interface {
	CurrentUser(ctx context.Context) (*models.Identity, error)
	Login(ctx context.Context, username, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, fields api.RegistrationFields) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
}

type Status int

const (
	StatusLoading Status = iota
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "loading"
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Identity  *models.Identity
	Status    Status
	LastError Failure
}

func (s Snapshot) Loading() bool { return s.Status == StatusLoading }

func (s Snapshot) Authenticated() bool {
	return s.Status == StatusReady && s.Identity != nil
}

type LoginResult struct {
	Success bool
	Message string
}

type RegisterResult struct {
	Success bool
	Errors  models.FieldErrors
}

// Store is the single owner of one browser session's authentication state.
// Every operation resolves to a value; remote faults never escape.
//
// Concurrent Login/Register/Logout calls are not sequenced: whichever remote
// response arrives last determines the final state.
type Store struct {
	authority Authority
	logger    *zap.Logger

	mu        sync.RWMutex
	identity  *models.Identity
	status    Status
	lastError Failure
	subs      map[int]chan Snapshot
	nextSub   int
	closed    bool

	initOnce  sync.Once
	ready     chan struct{}
	readyOnce sync.Once
}

func New(authority Authority, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		authority: authority,
		logger:    logger,
		status:    StatusLoading,
		subs:      make(map[int]chan Snapshot),
		ready:     make(chan struct{}),
	}
}

// Initialize asks the remote authority who is logged in. It runs once per
// store; later calls return immediately. An anonymous answer or a failure
// both end in Ready with no identity and are not recorded as errors.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		l := s.logger.With(zap.String("method", "Initialize"))
		user, err := s.authority.CurrentUser(ctx)
		if err != nil {
			l.Debug("No current user", zap.Error(err))
			user = nil
		}
		s.update(func() {
			// A login that completed first already made the state authoritative.
			if s.status != StatusLoading {
				return
			}
			s.identity = user
			s.status = StatusReady
		})
	})
}

func (s *Store) Login(ctx context.Context, username, password string) LoginResult {
	l := s.logger.With(zap.String("method", "Login"), zap.String("username", username))
	s.update(func() { s.lastError = Failure{} })

	resp, err := s.authority.Login(ctx, username, password)
	if err == nil && resp.Success && resp.User == nil {
		err = errors.Join(models.ErrMalformedResponse, errors.New("login succeeded without a user"))
	}
	if err != nil {
		failure := faultFailure(err)
		msg := failure.Message()
		if msg == "" {
			msg = loginFallback
		}
		l.Warn("Login fault", zap.Error(err))
		s.update(func() { s.lastError = MessageFailure(msg) })
		recordAuth(ctx, "login", "fault")
		return LoginResult{Success: false, Message: msg}
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = normalizeErrors(resp.Errors).Message()
		}
		if msg == "" {
			msg = loginFallback
		}
		l.Info("Login rejected")
		recordAuth(ctx, "login", "rejected")
		return LoginResult{Success: false, Message: msg}
	}

	s.update(func() {
		s.identity = resp.User
		s.status = StatusReady
	})
	l.Info("Login succeeded", zap.String("role", string(resp.User.Role)))
	recordAuth(ctx, "login", "success")
	return LoginResult{Success: true}
}

func (s *Store) Register(ctx context.Context, fields api.RegistrationFields) RegisterResult {
	l := s.logger.With(zap.String("method", "Register"), zap.String("username", fields.Username))
	s.update(func() { s.lastError = Failure{} })

	resp, err := s.authority.Register(ctx, fields)
	if err == nil && resp.Success && resp.User == nil {
		err = errors.Join(models.ErrMalformedResponse, errors.New("registration succeeded without a user"))
	}
	if err != nil {
		failure := faultFailure(err)
		errs := models.FieldErrors{}
		if failure.Kind() == FailureFields {
			errs = failure.Fields()
		} else {
			errs.Add(models.GeneralField, registerFallback)
		}
		l.Warn("Registration fault", zap.Error(err))
		s.update(func() { s.lastError = FieldFailure(errs) })
		recordAuth(ctx, "register", "fault")
		return RegisterResult{Success: false, Errors: errs}
	}

	if !resp.Success {
		errs := normalizeErrors(resp.Errors).Fields()
		if errs.Empty() && resp.Message != "" {
			errs.Add(models.GeneralField, resp.Message)
		}
		if errs.Empty() {
			errs.Add(models.GeneralField, registerFallback)
		}
		l.Info("Registration rejected", zap.Strings("fields", errs.Fields()))
		recordAuth(ctx, "register", "rejected")
		return RegisterResult{Success: false, Errors: errs}
	}

	s.update(func() {
		s.identity = resp.User
		s.status = StatusReady
	})
	l.Info("Registration succeeded")
	recordAuth(ctx, "register", "success")
	return RegisterResult{Success: true, Errors: models.FieldErrors{}}
}

// Logout always leaves the store anonymous. Remote failures are logged and
// otherwise ignored.
func (s *Store) Logout(ctx context.Context) {
	outcome := "success"
	if err := s.authority.Logout(ctx); err != nil {
		s.logger.Warn("Remote logout failed", zap.String("method", "Logout"), zap.Error(err))
		outcome = "fault"
	}
	s.update(func() {
		s.identity = nil
		s.lastError = Failure{}
		s.status = StatusReady
	})
	recordAuth(ctx, "logout", outcome)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Ready is closed once the store first becomes Ready, or when it is closed.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Subscribe delivers the current snapshot and then every change. Slow
// readers only ever see the latest state. The channel is closed by cancel or
// by Close.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Close releases subscribers and wakes anything waiting on Ready.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })
}

// update applies fn under the lock and pushes the result to subscribers.
func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
	s.mu.Unlock()

	if snap.Status == StatusReady {
		s.readyOnce.Do(func() { close(s.ready) })
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Identity: s.identity, Status: s.status, LastError: s.lastError}
}

// faultFailure extracts whatever structured message an error body carries.
// Transport errors carry none.
func faultFailure(err error) Failure {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return normalizePayload(apiErr.Body)
	}
	return Failure{}
}

func recordAuth(ctx context.Context, op, outcome string) {
	metrics.Get().AuthRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
}
