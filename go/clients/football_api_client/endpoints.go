package football_api_client

const (
	// Base URL
	DefaultBaseURL = "https://api-football-v1.p.rapidapi.com/v3"

	// API Endpoints
	LeaguesEndpoint = "/leagues"

	// Query parameters
	CountryCodeParam = "code"

	// Headers
	RapidAPIKeyHeader   = "x-rapidapi-key"
	RapidAPIHostHeader  = "x-rapidapi-host"
	DefaultRapidAPIHost = "api-football-v1.p.rapidapi.com"
)
