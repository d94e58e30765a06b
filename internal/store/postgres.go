package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcela/resume-studio/internal/types"
)

// PostgresStore keeps each resume as one row with the document and section
// ordering in jsonb columns. WriteAll replaces the owner's rows inside a
// transaction, which gives the required last-write-wins semantics without
// field-level interleaving.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables when they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS resumes (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			template TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			sections JSONB,
			data JSONB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS resumes_owner_idx ON resumes (owner_id);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func scanResume(row pgx.Rows) (types.Resume, error) {
	var (
		r        types.Resume
		sections []byte
		data     []byte
	)
	if err := row.Scan(&r.ID, &r.OwnerID, &r.Title, &r.Template, &r.CreatedAt, &r.UpdatedAt, &sections, &data); err != nil {
		return r, fmt.Errorf("failed to scan resume row: %w", err)
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &r.Sections); err != nil {
			return r, fmt.Errorf("failed to parse sections for resume %s: %w", r.ID, err)
		}
	}
	if err := json.Unmarshal(data, &r.Data); err != nil {
		return r, fmt.Errorf("failed to parse document for resume %s: %w", r.ID, err)
	}
	return r, nil
}

// ListResumes returns every resume owned by ownerID in creation order.
func (s *PostgresStore) ListResumes(ctx context.Context, ownerID string) ([]types.Resume, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner_id, title, template, created_at, updated_at, sections, data
		 FROM resumes WHERE owner_id = $1 ORDER BY created_at`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	out := []types.Resume{}
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return out, nil
}

// ReadResume returns one resume by id.
func (s *PostgresStore) ReadResume(ctx context.Context, ownerID, id string) (*types.Resume, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner_id, title, template, created_at, updated_at, sections, data
		 FROM resumes WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read resume: %w", err)
		}
		return nil, &ResumeNotFoundError{ID: id}
	}
	r, err := scanResume(rows)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// WriteAll replaces the owner's whole collection in one transaction.
func (s *PostgresStore) WriteAll(ctx context.Context, ownerID string, resumes []types.Resume) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM resumes WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("failed to clear resumes: %w", err)
	}
	for _, r := range resumes {
		sections, err := json.Marshal(r.Sections)
		if err != nil {
			return fmt.Errorf("failed to marshal sections for resume %s: %w", r.ID, err)
		}
		data, err := json.Marshal(r.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal document for resume %s: %w", r.ID, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO resumes (id, owner_id, title, template, created_at, updated_at, sections, data)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			r.ID, ownerID, r.Title, string(r.Template), r.CreatedAt, r.UpdatedAt, sections, data,
		)
		if err != nil {
			return fmt.Errorf("failed to write resume %s: %w", r.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit resumes: %w", err)
	}
	return nil
}

// CreateUser stores a new account.
func (s *PostgresStore) CreateUser(ctx context.Context, u types.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return &EmailTakenError{Email: u.Email}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail returns the account registered under email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	var u types.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`,
		strings.ToLower(email),
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UserNotFoundError{Key: email}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUser returns the account with the given id.
func (s *PostgresStore) GetUser(ctx context.Context, id string) (*types.User, error) {
	var u types.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UserNotFoundError{Key: id}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
