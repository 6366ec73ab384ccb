package httpclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Ack is the synthetic result of a successful call whose response carried no
// JSON body, typically an empty 204 from a delete.
type Ack struct {
	Success bool `json:"success"`
}

var ackBody = []byte(`{"success":true}`)

// ErrorResponse is the conventional error body of the backend.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Raw keeps a JSON payload byte-for-byte as the server sent it.
type Raw = json.RawMessage

// extractDetail returns the "detail" field of a JSON error body. A string is
// used verbatim; any other non-null JSON value is returned in compact form.
func extractDetail(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}

	raw := bytes.TrimSpace(errResp.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var detail string
	if err := json.Unmarshal(raw, &detail); err == nil {
		return detail
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return ""
	}

	return compact.String()
}

// assignAck stores the acknowledgement in response. Targets that cannot hold
// an object are left untouched.
func assignAck(response any) error {
	if response == nil {
		return nil
	}

	if ack, ok := response.(*Ack); ok {
		ack.Success = true

		return nil
	}

	err := json.Unmarshal(ackBody, response)

	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}
