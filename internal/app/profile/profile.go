/*
Package profile persists the viewer's durable identity.

A profile row is the server-side equivalent of the client's stored login
slot: its presence means auto-login, its absence means the viewer still has
to onboard. The theme preference rides on the same row.
*/
package profile

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"ukoradar/internal/app/db"
	"ukoradar/internal/pkg/errs"
	"ukoradar/internal/pkg/logx"
	"ukoradar/internal/pkg/randx"
)

// Theme labels; anything else is normalized to ThemeDark.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// MaxNameLength bounds the display name.
const MaxNameLength = 64

// Profile is the viewer's persisted identity record.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store reads and writes profiles against PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStore wraps a connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:   pool,
		logger: logx.Logger().With().Str("component", "ProfileStore").Logger(),
	}
}

// normalizeName trims and bounds a display name.
func normalizeName(name string) (string, *errs.CustomError) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewError(errs.ErrNameRequired)
	}
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}
	return name, nil
}

// Get fetches a profile by id. A missing row maps to ErrProfileNotFound so
// the client can route to onboarding.
func (s *Store) Get(ctx context.Context, id string) (Profile, *errs.CustomError) {
	const q = `
		SELECT id, name, avatar, theme, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var p Profile
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Avatar, &p.Theme, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if db.IsNotFound(err) {
			return Profile{}, errs.NewError(errs.ErrProfileNotFound)
		}
		s.logger.Error().Err(err).Str("profile_id", id).Msg("Failed to fetch profile.")
		return Profile{}, errs.NewError(errs.ErrUnknown)
	}

	return p, nil
}

// Create onboards a new viewer. Names are required, trimmed, bounded, and
// unique case-insensitively.
func (s *Store) Create(ctx context.Context, name, avatar string) (Profile, *errs.CustomError) {
	name, cerr := normalizeName(name)
	if cerr != nil {
		return Profile{}, cerr
	}

	const q = `
		INSERT INTO profiles (id, name, avatar, theme)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, avatar, theme, created_at, updated_at`

	var p Profile
	err := s.pool.QueryRow(ctx, q, randx.EntityID(), name, avatar, ThemeDark).Scan(
		&p.ID, &p.Name, &p.Avatar, &p.Theme, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Profile{}, errs.NewError(errs.ErrNameTaken)
		}
		s.logger.Error().Err(err).Msg("Failed to create profile.")
		return Profile{}, errs.NewError(errs.ErrUnknown)
	}

	s.logger.Info().Str("profile_id", p.ID).Str("name", p.Name).Msg("Viewer onboarded.")

	return p, nil
}

// Update replaces the profile's name and avatar.
func (s *Store) Update(ctx context.Context, id, name, avatar string) (Profile, *errs.CustomError) {
	name, cerr := normalizeName(name)
	if cerr != nil {
		return Profile{}, cerr
	}

	const q = `
		UPDATE profiles
		SET name = $2, avatar = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, avatar, theme, created_at, updated_at`

	var p Profile
	err := s.pool.QueryRow(ctx, q, id, name, avatar).Scan(
		&p.ID, &p.Name, &p.Avatar, &p.Theme, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if db.IsNotFound(err) {
			return Profile{}, errs.NewError(errs.ErrProfileNotFound)
		}
		if db.IsUniqueViolation(err) {
			return Profile{}, errs.NewError(errs.ErrNameTaken)
		}
		s.logger.Error().Err(err).Str("profile_id", id).Msg("Failed to update profile.")
		return Profile{}, errs.NewError(errs.ErrUnknown)
	}

	return p, nil
}

// SetTheme stores the viewer's theme preference.
func (s *Store) SetTheme(ctx context.Context, id, theme string) *errs.CustomError {
	if theme != ThemeLight {
		theme = ThemeDark
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE profiles SET theme = $2, updated_at = now() WHERE id = $1`, id, theme)
	if err != nil {
		s.logger.Error().Err(err).Str("profile_id", id).Msg("Failed to store theme.")
		return errs.NewError(errs.ErrUnknown)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewError(errs.ErrProfileNotFound)
	}

	return nil
}

// Delete removes the profile entirely. The next load sees no row and routes
// the viewer back through onboarding.
func (s *Store) Delete(ctx context.Context, id string) *errs.CustomError {
	tag, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		s.logger.Error().Err(err).Str("profile_id", id).Msg("Failed to delete profile.")
		return errs.NewError(errs.ErrUnknown)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewError(errs.ErrProfileNotFound)
	}

	s.logger.Info().Str("profile_id", id).Msg("Profile deleted.")

	return nil
}
