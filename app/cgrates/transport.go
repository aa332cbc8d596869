package cgrates

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Transport delivers a single json document and returns the raw reply.
// Implementations should be safe for concurrent use, Client doesn't serialize calls.
type Transport interface {
	Post(ctx context.Context, endpoint string, body []byte) (status int, respBody []byte, err error)
}

// HTTPTransport posts json to Host+endpoint with an optional basic auth
type HTTPTransport struct {
	Host       string       // base url, i.e. http://127.0.0.1:2080
	AuthUser   string       // basic auth user name, optional
	AuthPasswd string       // basic auth password, optional
	Client     *http.Client // http client injected by user, optional
}

// defaultHTTPTimeout used if no http client injected
const defaultHTTPTimeout = 30 * time.Second

// Post sends body as json and returns status with the whole response body.
// Any status is returned as-is, interpretation belongs to the caller.
func (t *HTTPTransport) Post(ctx context.Context, endpoint string, body []byte) (int, []byte, error) {
	url := strings.TrimSuffix(t.Host, "/") + "/" + strings.TrimPrefix(endpoint, "/")
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to make request for %s", url)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	if t.AuthUser != "" || t.AuthPasswd != "" {
		req.SetBasicAuth(t.AuthUser, t.AuthPasswd)
	}

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "remote call failed for %s", url)
	}
	defer resp.Body.Close() // nolint

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrapf(err, "failed to read response from %s", url)
	}
	return resp.StatusCode, respBody, nil
}
