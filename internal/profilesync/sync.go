// Package profilesync keeps a guest profile in step with the remote profile
// service: load once in the background, edit a draft, save optimistically.
package profilesync

import (
	"context"
	"sync"

	"go.uber.org/zap"

	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
)

// PersistWarning is the notice shown when a save stays local.
const PersistWarning = "Profile saved locally but could not reach server to persist changes."

// Notifier receives user-facing warnings.
type Notifier func(message string)

// Option configures a Sync.
type Option func(*Sync)

// WithNotifier sets the function that surfaces persist failures.
func WithNotifier(n Notifier) Option {
	return func(s *Sync) {
		s.notify = n
	}
}

// Sync holds the committed profile, the draft being edited and the edit
// flag. All methods are safe for concurrent use.
//
// Remote calls run in their own goroutines under the context given to New.
// Responses arriving after that context is done are dropped. Responses are
// otherwise applied in arrival order, so the last one wins.
type Sync struct {
	ctx    context.Context
	remote Remote
	notify Notifier

	mu        sync.RWMutex
	committed Profile
	draft     Profile
	editing   bool

	inflight sync.WaitGroup
}

// New returns a Sync showing DefaultProfile and starts the initial load.
// It does not block on the network.
func New(ctx context.Context, remote Remote, opts ...Option) *Sync {
	s := &Sync{
		ctx:       ctx,
		remote:    remote,
		notify:    func(string) {},
		committed: DefaultProfile(),
		draft:     DefaultProfile(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.inflight.Go(s.load)
	return s
}

// Committed returns the profile currently shown to the guest.
func (s *Sync) Committed() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

// Draft returns the working copy.
func (s *Sync) Draft() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// Editing reports whether edit mode is active.
func (s *Sync) Editing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editing
}

// StartEdit copies the committed profile into the draft and enters edit mode.
func (s *Sync) StartEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.committed
	s.editing = true
}

// CancelEdit leaves edit mode. The draft is discarded by the next StartEdit.
func (s *Sync) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
}

// UpdateDraftField sets one draft field. Outside edit mode it does nothing.
func (s *Sync) UpdateDraftField(field Field, value string) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return nil
	}
	s.draft.set(field, value)
	return nil
}

// SaveEdit commits the draft locally, leaves edit mode and sends the draft
// to the remote service in the background. The local commit is visible
// when SaveEdit returns.
func (s *Sync) SaveEdit() error {
	p, ok := s.commitLocally()
	if !ok {
		return ErrNotEditing
	}
	s.inflight.Go(func() { s.persist(p) })
	return nil
}

// Wait blocks until every remote call started so far has finished and its
// result has been applied or dropped.
func (s *Sync) Wait() {
	s.inflight.Wait()
}

func (s *Sync) load() {
	p, err := s.remote.GetProfile(s.ctx)
	if err == nil && p.Name == "" {
		err = ErrMalformedProfile
	}
	if err != nil {
		applog.LogDebug(s.ctx, "profile load failed, keeping current profile", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	s.committed = p
	s.draft = p
}

func (s *Sync) persist(p Profile) {
	saved, err := s.remote.PutProfile(s.ctx, p)
	if err == nil && saved.Name == "" {
		err = ErrMalformedProfile
	}
	if s.ctx.Err() != nil {
		applog.LogDebug(s.ctx, "profile save abandoned", zap.Error(s.ctx.Err()))
		return
	}
	if err != nil {
		applog.LogWarn(s.ctx, "profile save failed, keeping local copy", zap.Error(err))
		s.notify(PersistWarning)
		return
	}
	s.reconcileFromServer(saved)
}

func (s *Sync) commitLocally() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return Profile{}, false
	}
	s.committed = s.draft
	s.editing = false
	return s.committed, true
}

func (s *Sync) reconcileFromServer(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	s.committed = p
}
