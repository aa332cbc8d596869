package cgrates

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Request is json-rpc 2.0 envelope sent to cgr-engine
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// Response of a successful call. Result is the raw json returned by the remote method,
// callers decode it according to the method they called.
type Response struct {
	ID     string
	Result json.RawMessage
}

// Decode unmarshals Result into v
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Result, v); err != nil {
		return errors.Wrap(err, "can't decode result")
	}
	return nil
}

// Params is a parameter object with keys in remote vocabulary
type Params map[string]interface{}

// idString returns unquoted value for json string ids and json text for anything else, including null
func idString(raw json.RawMessage) string {
	if string(raw) == "null" {
		return "null"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
