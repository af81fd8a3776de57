package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is the single failure type that leaves this package for any HTTP
// error status. Message is always a human-readable string assembled from
// the backend's error body, so callers can show it to the user without
// inspecting the response themselves. Transport failures (the request
// never completed) are deliberately NOT an *Error: they come back as
// plain wrapped errors so the session layer can tell the two apart.
type Error struct {
	Status  int    // HTTP status code of the failed response
	Message string // normalized human-readable message
}

func (e *Error) Error() string { return e.Message }

// DecodeError reports that a success response did not match the endpoint's
// expected shape. Responses are decoded strictly per endpoint; a malformed
// body must fail loudly rather than silently render as "no data".
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// errorBody mirrors the backend's error envelope. detail is either a plain
// string or a list of validation objects carrying a msg field; message is a
// legacy fallback used by some endpoints.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type detailItem struct {
	Msg string `json:"msg"`
}

// normalizeError converts a non-success response body into *Error.
// Resolution order: string detail verbatim; array detail as the msg values
// joined with "; " (empty msg values skipped); the message field; finally
// a generic "HTTP <status>".
func normalizeError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if msg := detailMessage(eb.Detail); msg != "" {
			return &Error{Status: status, Message: msg}
		}
		if eb.Message != "" {
			return &Error{Status: status, Message: eb.Message}
		}
	}
	return &Error{Status: status, Message: fmt.Sprintf("HTTP %d", status)}
}

func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var items []detailItem
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
