// AngelaMos | 2026
// entity.go

package profile

import (
	"encoding/json"
	"time"
)

// Profile is a per-user document of independently patchable sections. The
// sections carry whatever shape the client sends; presence is the only
// validation.
type Profile struct {
	UserID           string          `db:"user_id"           json:"user_id"`
	PersonalInfo     json.RawMessage `db:"personal_info"     json:"personal_info"`
	BodyMeasurements json.RawMessage `db:"body_measurements" json:"body_measurements"`
	StylePreferences json.RawMessage `db:"style_preferences" json:"style_preferences"`
	ShippingAddress  json.RawMessage `db:"shipping_address"  json:"shipping_address"`
	AvatarSettings   json.RawMessage `db:"avatar_settings"   json:"avatar_settings"`
	Notifications    json.RawMessage `db:"notifications"     json:"notifications"`
	PrivacySettings  json.RawMessage `db:"privacy_settings"  json:"privacy_settings"`
	CreatedAt        time.Time       `db:"created_at"        json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"        json:"updated_at"`
}

// sectionColumns whitelists patchable sections; the section name from the
// URL is never interpolated into SQL directly.
var sectionColumns = map[string]string{
	"personal_info":     "personal_info",
	"body_measurements": "body_measurements",
	"style_preferences": "style_preferences",
	"shipping_address":  "shipping_address",
	"avatar_settings":   "avatar_settings",
	"notifications":     "notifications",
	"privacy_settings":  "privacy_settings",
}

func IsValidSection(section string) bool {
	_, ok := sectionColumns[section]
	return ok
}

// DefaultProfile is returned when no document exists yet, so the client
// always has a complete form to render.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		UserID: userID,
		PersonalInfo: json.RawMessage(`{
			"first_name": "",
			"last_name": "",
			"phone": "",
			"date_of_birth": null,
			"gender": "prefer-not-to-say"
		}`),
		BodyMeasurements: json.RawMessage(`{
			"height": null,
			"weight": null,
			"bust": null,
			"waist": null,
			"hips": null,
			"shoulder_width": null,
			"arm_length": null,
			"leg_length": null
		}`),
		StylePreferences: json.RawMessage(`{
			"preferred_styles": [],
			"favorite_colors": [],
			"size_preference": "regular",
			"budget_range": {"min": 0, "max": 1000}
		}`),
		ShippingAddress: json.RawMessage(`{
			"street": "",
			"city": "",
			"state": "",
			"zip_code": "",
			"country": ""
		}`),
		AvatarSettings: json.RawMessage(`{
			"skin_tone": "medium",
			"hair_color": "black",
			"hair_style": "straight",
			"body_type": "average"
		}`),
		Notifications: json.RawMessage(`{
			"email_promotions": true,
			"new_arrivals": true,
			"price_drops": true,
			"order_updates": true
		}`),
		PrivacySettings: json.RawMessage(`{
			"profile_visibility": "private",
			"show_measurements": false,
			"data_sharing": false
		}`),
	}
}
