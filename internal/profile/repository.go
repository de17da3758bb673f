// AngelaMos | 2026
// repository.go

package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smartstyle/api/internal/core"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Replace(ctx context.Context, profile *Profile) error
	PatchSection(
		ctx context.Context,
		userID, section string,
		data json.RawMessage,
	) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Get(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	query := `
		SELECT user_id, personal_info, body_measurements, style_preferences,
		       shipping_address, avatar_settings, notifications,
		       privacy_settings, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// Replace upserts the whole document at once.
func (r *repository) Replace(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, personal_info, body_measurements, style_preferences,
			shipping_address, avatar_settings, notifications, privacy_settings
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (user_id) DO UPDATE SET
			personal_info     = EXCLUDED.personal_info,
			body_measurements = EXCLUDED.body_measurements,
			style_preferences = EXCLUDED.style_preferences,
			shipping_address  = EXCLUDED.shipping_address,
			avatar_settings   = EXCLUDED.avatar_settings,
			notifications     = EXCLUDED.notifications,
			privacy_settings  = EXCLUDED.privacy_settings,
			updated_at        = NOW()
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, profile, query,
		profile.UserID,
		profile.PersonalInfo,
		profile.BodyMeasurements,
		profile.StylePreferences,
		profile.ShippingAddress,
		profile.AvatarSettings,
		profile.Notifications,
		profile.PrivacySettings,
	)
	if err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}

	return nil
}

// PatchSection shallow-merges the payload into one section. The jsonb ||
// operator gives the merge atomically, so concurrent patches to different
// keys of the same section do not clobber each other's section.
func (r *repository) PatchSection(
	ctx context.Context,
	userID, section string,
	data json.RawMessage,
) error {
	column, ok := sectionColumns[section]
	if !ok {
		return fmt.Errorf("patch profile: unknown section %q: %w",
			section, core.ErrInvalidInput)
	}

	query := fmt.Sprintf(`
		INSERT INTO profiles (user_id, %[1]s)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			%[1]s      = COALESCE(profiles.%[1]s, '{}'::jsonb) || EXCLUDED.%[1]s,
			updated_at = NOW()`, column)

	if _, err := r.db.ExecContext(ctx, query, userID, data); err != nil {
		return fmt.Errorf("patch profile section: %w", err)
	}

	return nil
}
