// Package seed loads a YAML fixture of directory, requests and assignments into
// the configured repositories.
package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository"
)

// User is a seeded account. Password is hashed on load; a stored passwordHash is
// used as is.
type User struct {
	domain.User `yaml:",inline"`
	Password    string `yaml:"password"`
}

// File is the fixture layout.
type File struct {
	Staffers     []domain.Staffer            `yaml:"staffers"`
	Users        []User                      `yaml:"users"`
	Team         []domain.TeamMember         `yaml:"team"`
	Requests     []domain.ClientRequest      `yaml:"requests"`
	Availability []domain.ClientAvailability `yaml:"availability"`
	Assignments  []domain.Assignment         `yaml:"assignments"`
	Invitations  []domain.Invitation         `yaml:"invitations"`
	Events       []domain.AdminEvent         `yaml:"events"`
}

// Parse decodes a fixture.
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

// LoadFile reads path and applies it to repos.
func LoadFile(ctx context.Context, path string, repos repository.Set, bcryptCost int, logger *zap.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	f, err := Parse(raw)
	if err != nil {
		return err
	}
	if err := f.Apply(ctx, repos, bcryptCost); err != nil {
		return err
	}
	logger.Info("seed loaded",
		zap.String("path", path),
		zap.Int("staffers", len(f.Staffers)),
		zap.Int("users", len(f.Users)),
		zap.Int("requests", len(f.Requests)),
		zap.Int("assignments", len(f.Assignments)),
	)
	return nil
}

// Apply writes every record of the fixture. Records are written in dependency
// order so that team members and assignments can refer to seeded staffers and
// requests.
func (f *File) Apply(ctx context.Context, repos repository.Set, bcryptCost int) error {
	for i := range f.Staffers {
		if err := repos.Staffers.Create(ctx, &f.Staffers[i]); err != nil {
			return fmt.Errorf("seed staffer %q: %w", f.Staffers[i].Email, err)
		}
	}
	for i := range f.Users {
		u := &f.Users[i]
		if u.PasswordHash == "" && u.Password != "" {
			hash, err := auth.HashPassword(u.Password, bcryptCost)
			if err != nil {
				return fmt.Errorf("hash password for %q: %w", u.Email, err)
			}
			u.PasswordHash = hash
		}
		if !u.Role.Valid() {
			return fmt.Errorf("seed user %q: unknown role %q", u.Email, u.Role)
		}
		if err := repos.Users.Create(ctx, &u.User); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
	}
	for i := range f.Team {
		if err := repos.Team.Add(ctx, &f.Team[i]); err != nil {
			return fmt.Errorf("seed team member %q: %w", f.Team[i].StafferID, err)
		}
	}
	for i := range f.Requests {
		if err := repos.Requests.Create(ctx, &f.Requests[i]); err != nil {
			return fmt.Errorf("seed request %q: %w", f.Requests[i].Title, err)
		}
	}
	for i := range f.Availability {
		if err := repos.Availability.Set(ctx, &f.Availability[i]); err != nil {
			return fmt.Errorf("seed availability %q: %w", f.Availability[i].Date, err)
		}
	}
	for i := range f.Assignments {
		if err := repos.Assignments.Create(ctx, &f.Assignments[i]); err != nil {
			return fmt.Errorf("seed assignment %q: %w", f.Assignments[i].ID, err)
		}
	}
	for i := range f.Invitations {
		if err := repos.Invitations.Create(ctx, &f.Invitations[i]); err != nil {
			return fmt.Errorf("seed invitation %q: %w", f.Invitations[i].ID, err)
		}
	}
	for i := range f.Events {
		if err := repos.Events.Create(ctx, &f.Events[i]); err != nil {
			return fmt.Errorf("seed event %q: %w", f.Events[i].Title, err)
		}
	}
	return nil
}
