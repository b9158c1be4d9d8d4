package model

import (
	"encoding/json"
	"time"
)

// SettingsID is the key of the singleton settings row.
const SettingsID = "main_settings"

// Settings holds the site-wide configuration document (appearance, contacts,
// social links, payment accounts, FAQs). The document is opaque to the
// backend; Version is the optimistic concurrency token.
type Settings struct {
	ID        string          `json:"id" db:"id"`
	Document  json.RawMessage `json:"document" db:"document"`
	Version   int             `json:"version" db:"version"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type UpdateSettingsRequest struct {
	Document json.RawMessage `json:"document" binding:"required"`
	// ExpectedVersion, when set, rejects the write unless it matches the
	// stored version.
	ExpectedVersion *int `json:"expected_version"`
}
