package credstore

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/peakhub/peakhub/internal/common"
	"github.com/peakhub/peakhub/internal/identity"
)

// demoSecret is the password shared by all seeded demo accounts.
const demoSecret = "password123"

// demoSeeds are the five fixed marketplace demo accounts, one per role.
var demoSeeds = []identity.Identity{
	{ID: "1", Email: "student@peakhub.com", Name: "John Student", Role: identity.RoleLearner},
	{ID: "2", Email: "instructor@peakhub.com", Name: "Jane Instructor", Role: identity.RoleInstructor},
	{ID: "3", Email: "admin@peakhub.com", Name: "Admin User", Role: identity.RoleAdministrator},
	{ID: "4", Email: "moderator@peakhub.com", Name: "Mod User", Role: identity.RoleModerator},
	{ID: "5", Email: "guest@peakhub.com", Name: "Guest User", Role: identity.RoleGuest},
}

type demoRecord struct {
	identity identity.Identity
	hash     []byte
}

// DemoStore is an in-memory credential directory seeded with the demo
// accounts. Secrets are kept as bcrypt hashes; bcrypt comparison preserves
// the exact, case-sensitive matching the login contract requires.
type DemoStore struct {
	mu      sync.RWMutex
	records map[string]demoRecord
	cost    int
}

// NewDemoStore builds the directory and seeds the demo accounts.
// bcrypt.MinCost keeps construction cheap; this is a demo directory, not a
// production password database.
func NewDemoStore() (*DemoStore, error) {
	s := &DemoStore{
		records: make(map[string]demoRecord, len(demoSeeds)),
		cost:    bcrypt.MinCost,
	}

	for _, seed := range demoSeeds {
		seed.Avatar = identity.AvatarURI(seed.Name)
		if err := s.add(Record{Identity: seed, Secret: demoSecret}); err != nil {
			return nil, fmt.Errorf("seeding demo account %s: %w", seed.Email, err)
		}
	}
	return s, nil
}

// Lookup resolves email+secret to an Identity. A missing email and a wrong
// secret are indistinguishable to the caller.
func (s *DemoStore) Lookup(ctx context.Context, email, secret string) (*identity.Identity, error) {
	s.mu.RLock()
	rec, ok := s.records[email]
	s.mu.RUnlock()

	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(rec.hash, []byte(secret)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	id := rec.identity
	return &id, nil
}

// Exists reports whether a record with the given email is present.
func (s *DemoStore) Exists(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[email]
	return ok, nil
}

// Add inserts a new credential record, hashing its secret.
func (s *DemoStore) Add(ctx context.Context, rec Record) error {
	return s.add(rec)
}

func (s *DemoStore) add(rec Record) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(rec.Secret), s.cost)
	if err != nil {
		return fmt.Errorf("hashing secret: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Identity.Email]; ok {
		return common.ErrEmailTaken
	}
	s.records[rec.Identity.Email] = demoRecord{identity: rec.Identity, hash: hash}
	return nil
}
