// Package cgrates implements client for CGRateS rating engine api exposed via json-rpc over http.
// Client.Call sends a single json-rpc 2.0 request and classifies the outcome, the rest of Client methods
// convert typed arguments into parameter objects expected by remote methods and delegate to Call.
package cgrates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Client implements Engine and delegates all calls to remote cgr-engine.
// Client holds no per-call state and safe for concurrent use if Transport is.
type Client struct {
	endpoint  string
	transport Transport
}

// Opts overrides process-wide Configuration for a single client.
// Empty fields taken from Config(). Host, Username, Password and HTTPClient ignored if Transport set.
type Opts struct {
	Host       string
	Username   string
	Password   string
	Endpoint   string
	HTTPClient *http.Client
	Transport  Transport
}

// NewClient makes client with given options merged on top of process-wide defaults
func NewClient(opts Opts) (*Client, error) {
	conf := Configuration{Host: opts.Host, Username: opts.Username, Password: opts.Password, Endpoint: opts.Endpoint}
	conf = conf.merge(Config())

	if opts.Transport != nil {
		return &Client{endpoint: conf.Endpoint, transport: opts.Transport}, nil
	}
	if conf.Host == "" {
		return nil, errors.New("host is not defined")
	}
	return &Client{
		endpoint:  conf.Endpoint,
		transport: &HTTPTransport{Host: conf.Host, AuthUser: conf.Username, AuthPasswd: conf.Password, Client: opts.HTTPClient},
	}, nil
}

// Call remote method with given parameter objects. Each call makes a new request with a fresh id,
// nothing is retried. Returned error is *Error for any failed exchange.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (*Response, error) {
	if method == "" {
		return nil, errors.New("empty method name")
	}
	if params == nil {
		params = []interface{}{}
	}

	req := Request{JSONRPC: "2.0", ID: uuid.NewString(), Method: method, Params: params}
	b, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling failed for %s", method)
	}
	log.Printf("[DEBUG] call %s, id %s", method, req.ID)

	status, body, err := c.transport.Post(ctx, c.endpoint, b)
	if err != nil {
		log.Printf("[DEBUG] call %s failed, %v", method, err)
		return nil, &Error{Kind: ErrTransport, Method: method, Message: fmt.Sprintf("%s: %v", errPrefix, err),
			RawError: err.Error(), Status: status, Body: body}
	}
	if status < 200 || status >= 300 {
		log.Printf("[DEBUG] call %s failed, status %d", method, status)
		return nil, newStatusError(method, status, body)
	}

	return parseResponse(method, body)
}

// parseResponse converts body of delivered reply to Response or classified *Error
func parseResponse(method string, body []byte) (*Response, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &Error{Kind: ErrMalformedResponse, Method: method, Body: body, RawError: err.Error(),
			Message: fmt.Sprintf("%s: can't decode response, %v", errPrefix, err)}
	}

	decoded := map[string]interface{}{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		decoded = nil
	}

	if rawErr, ok := fields["error"]; ok && !isEmptyJSON(rawErr) {
		msg := idString(rawErr) // string errors unquoted, anything else kept as json text
		log.Printf("[DEBUG] call %s rejected, %s", method, msg)
		return nil, &Error{Kind: Classify(msg), Method: method, Message: fmt.Sprintf("%s: %s", errPrefix, msg),
			RawError: msg, Status: http.StatusOK, Body: body, Response: decoded}
	}

	id, hasID := fields["id"]
	result, hasResult := fields["result"]
	if !hasID || !hasResult {
		missing := "id"
		if hasID {
			missing = "result"
		}
		return nil, &Error{Kind: ErrMalformedResponse, Method: method, Body: body, Response: decoded,
			Status: http.StatusOK, RawError: "missing " + missing,
			Message: fmt.Sprintf("%s: missing %s in response", errPrefix, missing)}
	}

	return &Response{ID: idString(id), Result: result}, nil
}

// isEmptyJSON is true for null and false, both mean "no error"
func isEmptyJSON(raw json.RawMessage) bool {
	s := string(raw)
	return s == "null" || s == "false"
}
