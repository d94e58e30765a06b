package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/marcela/resume-studio/internal/types"
)

// FileStore persists each owner's resume collection as one JSON file under
// a data directory, mirroring the browser-local storage of the original
// editor. A store-wide mutex serializes read-modify-write cycles and
// writes go through a temp file plus rename so a failed save never leaves
// a truncated store behind.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// storeFile is the on-disk shape of one owner's collection.
type storeFile struct {
	Resumes []types.Resume `json:"resumes"`
}

// storedUser carries the password hash explicitly: types.User hides it
// from JSON so API responses can never leak it, but the store must keep it.
type storedUser struct {
	types.User
	PasswordHash string `json:"passwordHash"`
}

// usersFile is the on-disk shape of the account registry.
type usersFile struct {
	Users []storedUser `json:"users"`
}

// NewFileStore opens (creating if needed) a file store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) resumesPath(ownerID string) string {
	// Owner ids are uuids; sanitize anyway so a hostile id cannot escape
	// the data directory.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, ownerID)
	return filepath.Join(s.dir, "resumes_"+safe+".json")
}

func (s *FileStore) usersPath() string {
	return filepath.Join(s.dir, "users.json")
}

// load reads and validates one owner's store file. A missing file is an
// empty collection.
func (s *FileStore) load(ownerID string) (*storeFile, error) {
	path := s.resumesPath(ownerID)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &storeFile{Resumes: []types.Resume{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := ValidateStoreJSON(data); err != nil {
		var details []string
		if ve, ok := err.(*CorruptStoreError); ok {
			details = ve.Details
		} else {
			details = []string{err.Error()}
		}
		return nil, &CorruptStoreError{Path: path, Details: details}
	}
	var f storeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	return &f, nil
}

func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".store-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close store file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// ListResumes returns every resume owned by ownerID.
func (s *FileStore) ListResumes(_ context.Context, ownerID string) ([]types.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load(ownerID)
	if err != nil {
		return nil, err
	}
	return f.Resumes, nil
}

// ReadResume returns one resume by id.
func (s *FileStore) ReadResume(_ context.Context, ownerID, id string) (*types.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load(ownerID)
	if err != nil {
		return nil, err
	}
	for i := range f.Resumes {
		if f.Resumes[i].ID == id {
			r := f.Resumes[i]
			return &r, nil
		}
	}
	return nil, &ResumeNotFoundError{ID: id}
}

// WriteAll replaces the owner's whole collection. Last write wins.
func (s *FileStore) WriteAll(_ context.Context, ownerID string, resumes []types.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if resumes == nil {
		resumes = []types.Resume{}
	}
	return writeJSONAtomic(s.resumesPath(ownerID), &storeFile{Resumes: resumes})
}

func (s *FileStore) loadUsers() (*usersFile, error) {
	data, err := os.ReadFile(s.usersPath())
	if os.IsNotExist(err) {
		return &usersFile{Users: []storedUser{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	var f usersFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}
	return &f, nil
}

// CreateUser stores a new account.
func (s *FileStore) CreateUser(_ context.Context, u types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.loadUsers()
	if err != nil {
		return err
	}
	for _, existing := range f.Users {
		if strings.EqualFold(existing.Email, u.Email) {
			return &EmailTakenError{Email: u.Email}
		}
	}
	f.Users = append(f.Users, storedUser{User: u, PasswordHash: u.PasswordHash})
	return writeJSONAtomic(s.usersPath(), f)
}

// GetUserByEmail returns the account registered under email.
func (s *FileStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range f.Users {
		if strings.EqualFold(f.Users[i].Email, email) {
			u := f.Users[i].User
			u.PasswordHash = f.Users[i].PasswordHash
			return &u, nil
		}
	}
	return nil, &UserNotFoundError{Key: email}
}

// GetUser returns the account with the given id.
func (s *FileStore) GetUser(_ context.Context, id string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range f.Users {
		if f.Users[i].ID == id {
			u := f.Users[i].User
			u.PasswordHash = f.Users[i].PasswordHash
			return &u, nil
		}
	}
	return nil, &UserNotFoundError{Key: id}
}
