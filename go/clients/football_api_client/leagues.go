package football_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

type LeagueInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Logo string `json:"logo"`
}

// Country.Code and Country.Flag are null for international competitions;
// they decode as empty strings.
type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type LeagueEntry struct {
	League  LeagueInfo `json:"league"`
	Country Country    `json:"country"`
}

type LeaguesResponse struct {
	Get        string                 `json:"get"`
	Parameters map[string]interface{} `json:"parameters"`
	Errors     interface{}            `json:"errors"`
	Results    int                    `json:"results"`
	Response   []LeagueEntry          `json:"response"`
}

// APIError reports errors listed in the response envelope.
type APIError struct {
	Errors interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned errors: %v", e.Errors)
}

// GetLeaguesByCountryCode issues one GET /leagues?code=<code> and returns the
// decoded envelope together with the raw body.
func (c *FootballApiClient) GetLeaguesByCountryCode(ctx context.Context, code string) (*LeaguesResponse, []byte, error) {
	query := url.Values{}
	query.Set(CountryCodeParam, code)

	body, err := c.Get(ctx, LeaguesEndpoint, query)
	if err != nil {
		return nil, nil, err
	}

	var response LeaguesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, body, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	if hasErrors(response.Errors) {
		return nil, body, &APIError{Errors: response.Errors}
	}

	return &response, body, nil
}

// hasErrors reports whether the envelope's errors field is non-empty. The API
// sends [] when there are none and an object or list otherwise.
func hasErrors(errs interface{}) bool {
	switch e := errs.(type) {
	case nil:
		return false
	case map[string]interface{}:
		return len(e) > 0
	case []interface{}:
		return len(e) > 0
	case string:
		return e != ""
	default:
		return true
	}
}
