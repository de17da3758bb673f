// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/middleware"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored document, or a fully populated default when none
// exists yet. Absence is not an error.
func (s *Service) Get(
	ctx context.Context,
	caller *middleware.Identity,
	userID string,
) (*Profile, error) {
	if err := authorizeAccess(caller, userID); err != nil {
		return nil, err
	}

	profile, err := s.repo.Get(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return DefaultProfile(userID), nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) Replace(
	ctx context.Context,
	caller *middleware.Identity,
	profile *Profile,
) error {
	if err := authorizeAccess(caller, profile.UserID); err != nil {
		return err
	}

	return s.repo.Replace(ctx, profile)
}

func (s *Service) PatchSection(
	ctx context.Context,
	caller *middleware.Identity,
	userID, section string,
	data json.RawMessage,
) error {
	if err := authorizeAccess(caller, userID); err != nil {
		return err
	}

	if !IsValidSection(section) {
		return fmt.Errorf("patch section: unknown section %q: %w",
			section, core.ErrInvalidInput)
	}

	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("patch section: empty payload: %w",
			core.ErrInvalidInput)
	}

	return s.repo.PatchSection(ctx, userID, section, data)
}

// authorizeAccess allows the owner and admins. The client-side gate is a
// convenience only; this check is the real one.
func authorizeAccess(caller *middleware.Identity, userID string) error {
	if caller == nil {
		return core.ErrUnauthorized
	}

	if caller.ID == userID || caller.Role == "admin" {
		return nil
	}

	return fmt.Errorf("profile access: %w", core.ErrForbidden)
}
