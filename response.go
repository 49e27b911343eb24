package woot

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dearkafka/woot/descriptor"
)

// Response is what a transport returns for one request. The binder hands it
// back to the caller as is; decoding the payload into typed models is up to
// the caller.
type Response struct {
	Method     descriptor.Method
	URL        string
	StatusCode int
	Header     http.Header
	// Body is the decoded JSON payload, or the raw text for other content types.
	Body any
	// Raw is the unparsed payload.
	Raw []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the raw JSON payload into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return &TransportError{Code: CodeDecode, StatusCode: r.StatusCode, Response: r, Err: err}
	}
	return nil
}

// parseBody decodes raw according to the content type. JSON payloads become
// maps, slices and scalars; anything else is returned as a string.
func parseBody(contentType string, raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if !isJSON(contentType) {
		return string(raw), nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func isJSON(contentType string) bool {
	mt, _, _ := strings.Cut(contentType, ";")
	mt = strings.TrimSpace(strings.ToLower(mt))
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
