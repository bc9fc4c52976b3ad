// Package store persists per-user account data (saved invoices and the plan
// credit counter) as a single JSON file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/facturakit/facturakit/internal/invoice"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

const storeVersion = "1.0"

// Plan tracks how many documents a user may still generate.
type Plan struct {
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
	Max       int    `json:"max"`
}

// FreePlan is the plan every new account starts on.
func FreePlan() Plan {
	return Plan{Name: "free", Remaining: 3, Max: 3}
}

// Exhausted reports whether the plan has no credits left.
func (p Plan) Exhausted() bool {
	return p.Remaining <= 0
}

// UserData is one account's saved state.
type UserData struct {
	Email     string            `json:"email"`
	Plan      Plan              `json:"plan"`
	Invoices  []invoice.Invoice `json:"invoices"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type storeFile struct {
	Version string              `json:"version"`
	Users   map[string]UserData `json:"users"`
}

// Store manages account persistence. Mutations happen in memory; Save
// writes the file atomically.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	users   map[string]UserData
}

// New creates a store backed by the given path and loads any existing data.
func New(path string) (*Store, error) {
	s := &Store{
		path:    path,
		version: storeVersion,
		users:   make(map[string]UserData),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, facturaerrors.NewStoreError(path, err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Load reads the store from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return facturaerrors.NewStoreError(s.path, err)
	}

	s.version = file.Version
	s.users = file.Users
	if s.users == nil {
		s.users = make(map[string]UserData)
	}

	return nil
}

// Save writes the store to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := storeFile{
		Version: s.version,
		Users:   s.users,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return facturaerrors.NewStoreError(s.path, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return facturaerrors.NewStoreError(tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return facturaerrors.NewStoreError(s.path, err)
	}

	return nil
}

// Register creates a new account on the free plan.
func (s *Store) Register(email string) (UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return UserData{}, facturaerrors.NewValidationError("email", "account already exists: "+email, nil)
	}

	user := UserData{
		Email:     email,
		Plan:      FreePlan(),
		Invoices:  []invoice.Invoice{},
		UpdatedAt: time.Now(),
	}
	s.users[email] = user
	return user, nil
}

// Get retrieves an account by email.
func (s *Store) Get(email string) (UserData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	return user, ok
}

// List returns all accounts.
func (s *Store) List() []UserData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]UserData, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	return out
}

// Put replaces an account's data.
func (s *Store) Put(user UserData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.UpdatedAt = time.Now()
	s.users[user.Email] = user
}

// Remove deletes an account.
func (s *Store) Remove(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; !exists {
		return facturaerrors.NewValidationError("email", "no account: "+email, nil)
	}
	delete(s.users, email)
	return nil
}

// SaveInvoice stores an invoice under the account, replacing any existing
// invoice with the same number.
func (s *Store) SaveInvoice(email string, inv invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[email]
	if !exists {
		return facturaerrors.NewValidationError("email", "no account: "+email, nil)
	}

	replaced := false
	for i, existing := range user.Invoices {
		if existing.Number == inv.Number {
			user.Invoices[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		user.Invoices = append(user.Invoices, inv)
	}

	user.UpdatedAt = time.Now()
	s.users[email] = user
	return nil
}

// ConsumeCredit spends one generation credit, failing when the plan is
// exhausted.
func (s *Store) ConsumeCredit(email string) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[email]
	if !exists {
		return Plan{}, facturaerrors.NewValidationError("email", "no account: "+email, nil)
	}
	if user.Plan.Exhausted() {
		return user.Plan, facturaerrors.NewValidationError("plan", "no credits remaining on plan "+user.Plan.Name, nil)
	}

	user.Plan.Remaining--
	user.UpdatedAt = time.Now()
	s.users[email] = user
	return user.Plan, nil
}
