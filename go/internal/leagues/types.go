package leagues

import (
	"encoding/json"

	"github.com/mcdev12/pitchside/go/internal/models"
)

// FetchResult carries the unmodified API body and the League built from the
// first entry of its response list.
type FetchResult struct {
	Raw    json.RawMessage
	League *models.League
}

// ImportResult is returned by ImportByCountryCode.
type ImportResult struct {
	Raw     json.RawMessage
	League  *models.League
	Created bool
}
