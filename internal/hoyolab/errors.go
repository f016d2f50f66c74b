package hoyolab

import "fmt"

// Retcodes the calculator API uses to reject a stale or malformed session.
const (
	retcodeNotLoggedIn    = -100
	retcodeLoginInvalid   = 10001
	retcodeAccountMissing = 10103
)

func isAuthRetcode(code int) bool {
	switch code {
	case retcodeNotLoggedIn, retcodeLoginInvalid, retcodeAccountMissing:
		return true
	}
	return false
}

// RequestError covers transport failures, non-2xx responses and undecodable
// bodies. These are single-shot failures; the client never retries.
type RequestError struct {
	URL     string
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hoyolab request error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("hoyolab request error for %s: %s", e.URL, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// APIError is a non-zero retcode in an otherwise well-formed response
// envelope.
type APIError struct {
	Retcode int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hoyolab api error (retcode %d): %s", e.Retcode, e.Message)
}

// AuthError means the session cookie or UID was rejected. The user has to
// re-extract the cookie from a logged-in HoyoLab browser session.
type AuthError struct {
	Retcode int
	Message string
}

func (e *AuthError) Error() string {
	if e.Retcode != 0 {
		return fmt.Sprintf("hoyolab authentication failed (retcode %d): %s", e.Retcode, e.Message)
	}
	return fmt.Sprintf("hoyolab authentication failed: %s", e.Message)
}
