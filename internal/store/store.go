// Package store provides PostgreSQL persistence for profiles and
// generated email templates. The parsing pipeline never touches the
// store; only command-level glue does.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarlsen/resume-profiler/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveProfile upserts the profile document for a user. The user id is an
// opaque caller-chosen key; each user has at most one profile row.
func (s *Store) SaveProfile(ctx context.Context, userID string, profile *types.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, document)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET document = $2, updated_at = NOW()`,
		userID, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile for %s: %w", userID, err)
	}
	return nil
}

// GetProfile loads the stored profile for a user. Returns (nil, nil)
// when the user has no stored profile.
func (s *Store) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile for %s: %w", userID, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for %s: %w", userID, err)
	}
	return &profile, nil
}

// SaveTemplate stores a generated email template for a user
func (s *Store) SaveTemplate(ctx context.Context, userID string, tmpl *types.EmailTemplate) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO email_templates (id, user_id, type, role, company, subject, body)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET subject = $6, body = $7, updated_at = NOW()`,
		tmpl.ID, userID, string(tmpl.Type), tmpl.Role, tmpl.Company, tmpl.Subject, tmpl.Body,
	)
	if err != nil {
		return fmt.Errorf("failed to save template %s: %w", tmpl.ID, err)
	}
	return nil
}

// ListTemplates returns all stored templates for a user, newest first
func (s *Store) ListTemplates(ctx context.Context, userID string) ([]types.EmailTemplate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, type, role, company, subject, body
		 FROM email_templates
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for %s: %w", userID, err)
	}
	defer rows.Close()

	var templates []types.EmailTemplate
	for rows.Next() {
		var tmpl types.EmailTemplate
		var typ string
		if err := rows.Scan(&tmpl.ID, &typ, &tmpl.Role, &tmpl.Company, &tmpl.Subject, &tmpl.Body); err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		tmpl.Type = types.TemplateType(typ)
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read template rows: %w", err)
	}
	return templates, nil
}
