package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/config"
	"github.com/jonathan/talent-search/internal/store"
)

// fakeUserStore is an in-memory UserStore for handler and service tests.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*store.User
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*store.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[id] = &store.User{ID: id, Name: name, Email: email, Phone: phone}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*store.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*store.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

// fakeRosterStore is an in-memory RosterStore.
type fakeRosterStore struct {
	mu   sync.Mutex
	rows []store.StoredCandidate
	err  error
}

func (f *fakeRosterStore) SaveCandidates(_ context.Context, records []candidate.Record, source string) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		id := uuid.New()
		f.rows = append(f.rows, store.StoredCandidate{ID: id, Record: rec, Source: source})
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeRosterStore) ReplaceRoster(ctx context.Context, records []candidate.Record, source string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	f.rows = nil
	f.mu.Unlock()
	_, err := f.SaveCandidates(ctx, records, source)
	return err
}

func (f *fakeRosterStore) ListCandidates(_ context.Context) ([]store.StoredCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.StoredCandidate(nil), f.rows...), nil
}

func (f *fakeRosterStore) Records(ctx context.Context) ([]candidate.Record, error) {
	rows, err := f.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]candidate.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record)
	}
	return records, nil
}

func (f *fakeRosterStore) GetCandidate(_ context.Context, id uuid.UUID) (*store.StoredCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id {
			copied := row
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRosterStore) DeleteCandidate(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRosterStore) CountCandidates(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

// fakePinger stands in for the database in health checks.
type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

// testPasswordConfig uses the cheapest permitted cost to keep tests fast.
func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: 10}
}

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret-for-unit-tests", ExpirationHours: 1})
}

// newTestServer wires a Server around fakes, bypassing New's database
// connection.
func newTestServer(roster *fakeRosterStore, users *fakeUserStore) *Server {
	userService := NewUserService(users, testPasswordConfig())
	jwtService := testJWTService()
	return &Server{
		roster:      roster,
		db:          &fakePinger{},
		log:         zap.NewNop(),
		jwtService:  jwtService,
		userService: userService,
		authHandler: NewAuthHandler(userService, jwtService),
	}
}
