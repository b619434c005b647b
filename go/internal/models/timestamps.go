package models

import "time"

// Timestamps is embedded by every entity. Both fields are owned by the storage
// layer: set on insert, UpdatedAt refreshed on update.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
