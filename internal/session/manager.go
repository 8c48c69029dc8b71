// Package session owns the client's authentication state: who is signed in,
// whether an auth operation is in flight, and the identity record persisted
// across restarts. It is the only writer of that state; everything else in
// the client reads it through the accessors or subscribes for changes.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peakhub/peakhub/internal/common"
	"github.com/peakhub/peakhub/internal/credstore"
	"github.com/peakhub/peakhub/internal/dbx"
	"github.com/peakhub/peakhub/internal/identity"
	"github.com/peakhub/peakhub/internal/logging"
	"github.com/peakhub/peakhub/internal/repositories/state"
	"github.com/peakhub/peakhub/internal/sessiontoken"
)

// State repository keys owned by this package.
const (
	stateKeyIdentity = "identity"
	stateKeySavedAt  = "identity_saved_at"
)

// Snapshot is a consistent, copy-on-read view of the session handed to
// subscribers and never mutated afterwards.
type Snapshot struct {
	Identity  *identity.Identity
	IsLoading bool
}

// Subscriber receives a Snapshot after every state change, synchronously,
// before the mutating operation returns to its caller.
type Subscriber func(Snapshot)

// RegisterData is the input to Register. Role is optional and defaults to
// learner.
type RegisterData struct {
	Email  string
	Secret string
	Name   string
	Role   identity.Role
}

// Manager mediates all identity transitions.
//
// Contract:
//   - Bootstrap: restore a persisted identity; never fails observably.
//   - Login: exact credential match installs and persists the identity;
//     a miss returns common.ErrInvalidCredentials and changes nothing.
//   - Register: duplicate email returns common.ErrEmailTaken without
//     touching session state; otherwise a fresh identity is created,
//     added to the credential store, persisted, and installed.
//   - Logout: unconditional, idempotent, best-effort storage clear.
//
// State is guarded by a mutex, so a completed operation is observed
// atomically even off the main goroutine. Concurrent logins may race; each
// resolution installs atomically and the last one to complete wins.
type Manager struct {
	creds   credstore.Store
	db      *sql.DB
	codec   *sessiontoken.Codec
	log     logging.Logger
	latency time.Duration

	mu       sync.Mutex
	current  *identity.Identity
	inFlight int
	subs     []Subscriber
}

// NewManager wires a Manager to its collaborators. Nil collaborators are a
// wiring bug and panic immediately. latency simulates the round trip to a
// credential backend; pass 0 to disable (tests do).
func NewManager(creds credstore.Store, db *sql.DB, codec *sessiontoken.Codec, log logging.Logger, latency time.Duration) *Manager {
	if creds == nil || db == nil || codec == nil || log == nil {
		panic("session: NewManager called with a nil collaborator")
	}
	return &Manager{
		creds:   creds,
		db:      db,
		codec:   codec,
		log:     log.With("component", "session"),
		latency: latency,
	}
}

// Current returns a copy of the signed-in identity, or nil.
func (m *Manager) Current() *identity.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyIdentity(m.current)
}

// IsAuthenticated reports whether an identity is installed.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// IsLoading reports whether a bootstrap, login, or registration is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight > 0
}

// Subscribe registers fn for state-change notifications. There is no
// unsubscribe; subscribers live as long as the session, like the nav and
// route guards that use them.
func (m *Manager) Subscribe(fn Subscriber) {
	if fn == nil {
		panic("session: Subscribe called with nil subscriber")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Bootstrap attempts to restore a previously persisted identity. It is
// called once at startup, before the first prompt. A storage read failure
// or a rejected token is not an error: the session simply starts
// unauthenticated.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.beginOp()
	defer m.endOp()

	raw, err := m.stateRepo().Get(ctx, stateKeyIdentity)
	if err != nil {
		m.log.Warn(ctx, "session state unreadable, starting unauthenticated", "error", err)
		return
	}
	if raw == nil {
		return
	}

	id, err := m.codec.Parse(string(raw))
	if err != nil {
		m.log.Warn(ctx, "persisted session token rejected", "error", err)
		return
	}

	m.install(id)
	m.log.Info(ctx, "session restored", "email", id.Email, "role", id.Role)
}

// Login authenticates email+secret against the credential store. On a match
// the identity is persisted and installed and returned to the caller; on a
// miss common.ErrInvalidCredentials comes back and neither session state nor
// storage is touched.
func (m *Manager) Login(ctx context.Context, email, secret string) (*identity.Identity, error) {
	m.beginOp()
	defer m.endOp()

	m.simulateLatency()

	id, err := m.creds.Lookup(ctx, email, secret)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	if err := m.persist(ctx, id); err != nil {
		// The in-memory session still works; only restart survival is lost.
		m.log.Warn(ctx, "persisting session failed", "error", err)
	}
	m.install(id)
	m.log.Info(ctx, "login succeeded", "email", id.Email, "role", id.Role)
	return copyIdentity(id), nil
}

// Register creates a new account. The new record is added to the credential
// store as well as persisted locally, so logging out and back in with the
// new credentials works.
func (m *Manager) Register(ctx context.Context, data RegisterData) (*identity.Identity, error) {
	m.beginOp()
	defer m.endOp()

	m.simulateLatency()

	exists, err := m.creds.Exists(ctx, data.Email)
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}
	if exists {
		return nil, common.ErrEmailTaken
	}

	role := data.Role
	if role == identity.RoleUnknown {
		role = identity.RoleLearner
	}

	id := &identity.Identity{
		ID:     uuid.NewString(),
		Email:  data.Email,
		Name:   data.Name,
		Role:   role,
		Avatar: identity.AvatarURI(data.Name),
	}

	if err := m.creds.Add(ctx, credstore.Record{Identity: *id, Secret: data.Secret}); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("credential store: %w", err)
	}

	if err := m.persist(ctx, id); err != nil {
		m.log.Warn(ctx, "persisting session failed", "error", err)
	}
	m.install(id)
	m.log.Info(ctx, "registration succeeded", "email", id.Email, "role", id.Role)
	return copyIdentity(id), nil
}

// Logout clears the persisted record and drops the in-memory identity. It
// never fails: a storage error degrades to a best-effort clear, and calling
// it while already signed out is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.stateRepo().Clear(ctx); err != nil {
		m.log.Warn(ctx, "clearing persisted session failed", "error", err)
	}
	m.clear()
}

func (m *Manager) stateRepo() state.Repository {
	return state.NewSQLiteRepository(m.db)
}

// persist writes the signed identity and a save timestamp in one
// transaction, so a reader never observes half a record.
func (m *Manager) persist(ctx context.Context, id *identity.Identity) error {
	token, err := m.codec.Issue(id)
	if err != nil {
		return fmt.Errorf("issuing session token: %w", err)
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, stateKeyIdentity, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, stateKeySavedAt, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// simulateLatency stands in for the network round trip a real credential
// backend would cost. An implementation backed by an actual server replaces
// the sleep with the request while keeping the same call contract.
func (m *Manager) simulateLatency() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

func (m *Manager) install(id *identity.Identity) {
	m.mu.Lock()
	m.current = copyIdentity(id)
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) clear() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) beginOp() {
	m.mu.Lock()
	m.inFlight++
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) endOp() {
	m.mu.Lock()
	m.inFlight--
	m.mu.Unlock()
	m.notify()
}

// notify snapshots state under the lock and invokes subscribers outside it,
// so a subscriber may call back into the accessors.
func (m *Manager) notify() {
	m.mu.Lock()
	snap := Snapshot{
		Identity:  copyIdentity(m.current),
		IsLoading: m.inFlight > 0,
	}
	subs := make([]Subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func copyIdentity(id *identity.Identity) *identity.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
