package userdata

import (
	"fmt"

	"usermap-reconciler/core/utils"

	"gopkg.in/yaml.v3"
)

// Profile keys.
const (
	KeyAccountName = "last-account-name"
	KeyTimestamps  = "timestamps"
	KeyLogout      = "logout"
)

// Profile holds the fields of a profile file the reconciler needs.
type Profile struct {
	// AccountName is the last name the player logged in with, as stored.
	// Empty if absent.
	AccountName string
	// Logout is the last logout time in epoch milliseconds, 0 if absent.
	Logout int64
}

// ParseProfile decodes a YAML profile document.
func ParseProfile(data []byte) (Profile, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Profile{}, fmt.Errorf("invalid yaml: %w", err)
	}

	var p Profile
	if raw, ok := doc[KeyAccountName]; ok {
		p.AccountName = utils.ToString(raw)
	}
	p.Logout = logoutOf(doc)
	return p, nil
}

// logoutOf accepts both the nested form (timestamps: {logout: N}) and a
// literal dotted key ("timestamps.logout": N).
func logoutOf(doc map[string]any) int64 {
	if nested, ok := doc[KeyTimestamps].(map[string]any); ok {
		if ts, ok := utils.ToInt64(nested[KeyLogout]); ok {
			return ts
		}
	}
	if ts, ok := utils.ToInt64(doc[KeyTimestamps+"."+KeyLogout]); ok {
		return ts
	}
	return 0
}
