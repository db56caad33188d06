package upstream

import "fmt"

// APIError is a failure reported by the upstream service itself, as opposed
// to a transport failure that never produced a response.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// ServerMessage returns the upstream-provided error text when the error is an
// APIError with one, and the empty string otherwise. Callers prefer this text
// for display and fall back to a generic message.
func ServerMessage(err error) string {
	if apiErr, ok := err.(APIError); ok {
		return apiErr.Message
	}
	return ""
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
