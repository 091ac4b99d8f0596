package client

import (
	"encoding/json"
	"fmt"

	anytype "github.com/mwatts/anytype-go"
)

// badRequestPayload is the structured validation payload the service
// returns on HTTP 400, surfaced verbatim per spec §4.2.
type badRequestPayload struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
}

// classify maps an HTTP response to exactly one of the taxonomy's
// Kinds, per spec §4.2's response-classification contract. It returns
// nil for 2xx.
func classify(op string, status int, body []byte, authPresent bool) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == 401 || status == 403:
		e := anytype.NewError(anytype.KindAuth, "", op)
		if !authPresent {
			e.Err = fmt.Errorf("no credential set")
		}
		return e
	case status == 404:
		return anytype.NewError(anytype.KindNotFound, "", op)
	case status == 400:
		var payload badRequestPayload
		details := string(body)
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
			details = payload.Error.Message
		}
		e := anytype.NewError(anytype.KindBadRequest, "", op)
		e.Details = details
		return e
	case status >= 500:
		return anytype.NewError(anytype.KindServer, "", op).WithErr(fmt.Errorf("http %d", status))
	default:
		return anytype.NewError(anytype.KindNetwork, "", op).WithErr(fmt.Errorf("unexpected http status %d", status))
	}
}

// newBadRequest builds a KindBadRequest error for validation failures
// caught client-side before any network call (e.g. an unknown sort
// value, or a type-mismatched property value).
func newBadRequest(op, details string) error {
	e := anytype.NewError(anytype.KindBadRequest, "", op)
	e.Details = details
	return e
}

// authRequiredError is raised by endpoint operations that refuse to
// even attempt a request when no credential has been set (spec §8.2 S6:
// zero network requests).
func authRequiredError(op string) error {
	e := anytype.NewError(anytype.KindAuth, "", op)
	e.Err = fmt.Errorf("no credential set; run the challenge/create-api-key flow")
	return e
}
