package leagues

import (
	"errors"
	"net/url"
)

// ErrLeagueNotFound is returned when the API answers with an empty list.
var ErrLeagueNotFound = errors.New("no league found for country code")

// TransportError reports that the request never produced an HTTP response.
// Err is the underlying cause with the *url.Error wrapper removed.
type TransportError struct {
	Code string
	Err  error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func asTransportError(code string, err error) (*TransportError, bool) {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return nil, false
	}
	return &TransportError{Code: code, Err: urlErr.Err}, true
}

// ErrorBody renders err as the single-key object printed on failure.
func ErrorBody(err error) map[string]string {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return map[string]string{"error": transportErr.Error()}
	}
	return map[string]string{"error": err.Error()}
}
