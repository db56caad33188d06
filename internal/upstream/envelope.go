package upstream

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Envelope is the wrapper shape some upstream endpoints use instead of a bare
// payload. Not every endpoint wraps its response, so decoding has to accept
// both forms.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// decodeItems normalizes a list response. The upstream returns either a bare
// JSON array or an envelope whose data field holds the array; both decode to
// the same slice. A missing data field normalizes to an empty slice.
func decodeItems[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, nil
	}
	if trimmed[0] == '[' {
		items := []T{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, WrapError(err, "decode list")
		}
		return items, nil
	}
	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, WrapError(err, "decode list envelope")
	}
	if env.Error != "" {
		return nil, APIError{Message: env.Error}
	}
	if len(env.Data) == 0 {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, WrapError(err, "decode list data")
	}
	return items, nil
}

// decodeItem normalizes a single-item response, enveloped or bare.
func decodeItem[T any](raw []byte) (T, error) {
	var item T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return item, errors.New("empty response body")
	}
	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &item); err != nil {
			return item, WrapError(err, "decode item data")
		}
		return item, nil
	}
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return item, WrapError(err, "decode item")
	}
	return item, nil
}

// envelopeMessage pulls the server-reported error text out of a failure body
// when one is present.
func envelopeMessage(raw []byte) string {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	if env.Error != "" {
		return env.Error
	}
	return env.Message
}
