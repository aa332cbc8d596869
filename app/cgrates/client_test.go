package cgrates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Call(t *testing.T) {
	var received Request
	ts := testServer(t, &received, `"12345"`)
	defer ts.Close()

	c := testClient(t, ts.URL)
	resp, err := c.Call(context.Background(), "test", Params{"F1": 123, "F2": "abc"})
	require.NoError(t, err)

	assert.Equal(t, "2.0", received.JSONRPC)
	assert.Equal(t, "test", received.Method)
	assert.Equal(t, []interface{}{map[string]interface{}{"F1": 123.0, "F2": "abc"}}, received.Params)
	assert.Equal(t, received.ID, resp.ID)
	assert.Len(t, resp.ID, 36, "uuid id")

	res := ""
	require.NoError(t, resp.Decode(&res))
	assert.Equal(t, "12345", res)
}

func TestClient_CallNoParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"params":[]`)
		fmt.Fprint(w, `{"id":"1","result":"OK","error":null}`)
	}))
	defer ts.Close()

	resp, err := testClient(t, ts.URL).Call(context.Background(), MethodPing)
	require.NoError(t, err)
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, `"OK"`, string(resp.Result))
}

func TestClient_CallFreshIDs(t *testing.T) {
	var lock sync.Mutex
	ids := map[string]bool{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		lock.Lock()
		ids[req.ID] = true
		lock.Unlock()
		fmt.Fprintf(w, `{"id":%q,"result":"OK","error":null}`, req.ID)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	for i := 0; i < 10; i++ {
		_, err := c.Call(context.Background(), MethodPing)
		require.NoError(t, err)
	}
	assert.Len(t, ids, 10)
}

func TestClient_CallHeadersAndAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jsonrpc", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		user, passwd, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "secret", passwd)
		fmt.Fprint(w, `{"id":"1","result":"OK","error":null}`)
	}))
	defer ts.Close()

	c, err := NewClient(Opts{Host: ts.URL + "/", Username: "user", Password: "secret"})
	require.NoError(t, err)
	_, err = c.Call(context.Background(), MethodPing)
	require.NoError(t, err)
}

func TestClient_CallErrors(t *testing.T) {
	tbl := []struct {
		name   string
		resp   string
		kind   error
		msg    string
		status int
	}{
		{"not found", `{"id":"1","result":null,"error":"NOT_FOUND"}`, ErrNotFound,
			"Invalid response from CGRateS API: NOT_FOUND", 200},
		{"max usage", `{"id":"1","result":null,"error":"SERVER_ERROR: MAX_USAGE_EXCEEDED"}`, ErrMaxUsageExceeded,
			"Invalid response from CGRateS API: SERVER_ERROR: MAX_USAGE_EXCEEDED", 200},
		{"other", `{"id":"1","result":null,"error":"SERVER_ERROR: something"}`, ErrAPI,
			"Invalid response from CGRateS API: SERVER_ERROR: something", 200},
		{"not found prefixed", `{"id":"1","result":null,"error":"NOT_FOUND:RatingProfile"}`, ErrAPI,
			"Invalid response from CGRateS API: NOT_FOUND:RatingProfile", 200},
		{"object error", `{"id":"1","result":null,"error":{"code":-1}}`, ErrAPI,
			`Invalid response from CGRateS API: {"code":-1}`, 200},
		{"no id", `{"result":"OK"}`, ErrMalformedResponse,
			"Invalid response from CGRateS API: missing id in response", 200},
		{"no result", `{"id":"1"}`, ErrMalformedResponse,
			"Invalid response from CGRateS API: missing result in response", 200},
		{"bad json", `{"id":"1", "result":"OK}`, ErrMalformedResponse, "", 0},
		{"not object", `"OK"`, ErrMalformedResponse, "", 0},
	}

	for _, tt := range tbl {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.resp)
			}))
			defer ts.Close()

			_, err := testClient(t, ts.URL).Call(context.Background(), "APIerSv1.Test", Params{"k": "v"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "%v", err)
			if tt.msg != "" {
				assert.EqualError(t, err, tt.msg)
			}

			var cgrErr *Error
			require.True(t, errors.As(err, &cgrErr))
			assert.Equal(t, "APIerSv1.Test", cgrErr.Method)
			assert.Equal(t, tt.resp, string(cgrErr.Body))
			if tt.status != 0 {
				assert.Equal(t, tt.status, cgrErr.Status)
			}
		})
	}
}

func TestClient_CallAPIErrorResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"1","result":null,"error":"NOT_FOUND"}`)
	}))
	defer ts.Close()

	_, err := testClient(t, ts.URL).Call(context.Background(), MethodGetTPDestination)
	var cgrErr *Error
	require.True(t, errors.As(err, &cgrErr))
	assert.Equal(t, "NOT_FOUND", cgrErr.RawError)
	assert.Equal(t, map[string]interface{}{"id": "1", "result": nil, "error": "NOT_FOUND"}, cgrErr.Response)
	assert.True(t, errors.Is(err, ErrAPI), "not found is api error too")
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestClient_CallHTTPStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "oh no")
	}))
	defer ts.Close()

	_, err := testClient(t, ts.URL).Call(context.Background(), MethodPing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.False(t, errors.Is(err, ErrAPI))
	assert.EqualError(t, err, "Invalid response from CGRateS API: HTTP ERROR: 500")

	var cgrErr *Error
	require.True(t, errors.As(err, &cgrErr))
	assert.Equal(t, 500, cgrErr.Status)
	assert.Equal(t, "oh no", string(cgrErr.Body))
}

func TestClient_CallBadRemote(t *testing.T) {
	c, err := NewClient(Opts{Host: "http://127.0.0.2", HTTPClient: &http.Client{Timeout: 10 * time.Millisecond}})
	require.NoError(t, err)
	_, err = c.Call(context.Background(), MethodPing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport), "%v", err)
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid response from CGRateS API: "))
}

func TestClient_CallCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"1","result":"OK","error":null}`)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testClient(t, ts.URL).Call(ctx, MethodPing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestClient_CallEmptyMethod(t *testing.T) {
	c := Client{endpoint: DefaultEndpoint, transport: &mockTransport{}}
	_, err := c.Call(context.Background(), "")
	assert.EqualError(t, err, "empty method name")
}

func TestClient_CallNullResult(t *testing.T) {
	c := Client{endpoint: DefaultEndpoint, transport: &mockTransport{status: 200, body: `{"id":7,"result":null}`}}
	resp, err := c.Call(context.Background(), MethodPing)
	require.NoError(t, err)
	assert.Equal(t, "7", resp.ID, "non-string id kept as json text")
	assert.Equal(t, "null", string(resp.Result))
}

func TestClient_CallNullID(t *testing.T) {
	c := Client{endpoint: DefaultEndpoint, transport: &mockTransport{status: 200, body: `{"id":null,"result":"OK"}`}}
	resp, err := c.Call(context.Background(), MethodPing)
	require.NoError(t, err)
	assert.Equal(t, "null", resp.ID)
}

func TestClient_CallConcurrent(t *testing.T) {
	var lock sync.Mutex
	ids := map[string]bool{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lock.Lock()
		ids[req.ID] = true
		lock.Unlock()
		// echo the account back to check responses don't cross between callers
		account := req.Params[0].(map[string]interface{})["Account"]
		fmt.Fprintf(w, `{"id":%q,"result":%q,"error":null}`, req.ID, account)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			account := fmt.Sprintf("acc%d", i)
			resp, err := c.AddBalance(context.Background(), BalanceRequest{Account: account, Tenant: "cgrates.org",
				BalanceType: "*monetary", Value: float64(i)})
			if err != nil {
				errs <- err
				return
			}
			res := ""
			if err = resp.Decode(&res); err != nil {
				errs <- err
				return
			}
			if res != account {
				errs <- errors.Errorf("expected %s, got %s", account, res)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, ids, 50)
}

func TestClient_CallFalseError(t *testing.T) {
	c := Client{endpoint: DefaultEndpoint, transport: &mockTransport{status: 200, body: `{"id":"1","result":"OK","error":false}`}}
	resp, err := c.Call(context.Background(), MethodPing)
	require.NoError(t, err)
	assert.Equal(t, `"OK"`, string(resp.Result))
}

func TestNewClient(t *testing.T) {
	prev := Config()
	defer Configure(func(c *Configuration) { *c = prev })

	_, err := NewClient(Opts{})
	assert.EqualError(t, err, "host is not defined")

	conf := Configure(func(c *Configuration) {
		c.Host = "http://example.com"
		c.Username = "user"
		c.Password = "passwd"
	})
	assert.Equal(t, Configuration{Host: "http://example.com", Username: "user", Password: "passwd", Endpoint: "/jsonrpc"}, conf)

	c, err := NewClient(Opts{})
	require.NoError(t, err)
	assert.Equal(t, "/jsonrpc", c.endpoint)
	assert.Equal(t, &HTTPTransport{Host: "http://example.com", AuthUser: "user", AuthPasswd: "passwd"}, c.transport)

	c, err = NewClient(Opts{Host: "http://other.com", Password: "secret", Endpoint: "/rpc"})
	require.NoError(t, err)
	assert.Equal(t, "/rpc", c.endpoint)
	assert.Equal(t, &HTTPTransport{Host: "http://other.com", AuthUser: "user", AuthPasswd: "secret"}, c.transport)

	tr := &mockTransport{}
	c, err = NewClient(Opts{Transport: tr})
	require.NoError(t, err)
	assert.Equal(t, tr, c.transport)
}

func TestConfiguration_Merge(t *testing.T) {
	c := Configuration{Host: "h1"}.merge(Configuration{Host: "h2", Username: "u2"})
	assert.Equal(t, Configuration{Host: "h1", Username: "u2", Endpoint: DefaultEndpoint}, c)
}

func TestResponse_Decode(t *testing.T) {
	r := Response{ID: "1", Result: json.RawMessage(`{"ID":"DST_1","Prefixes":["855"]}`)}
	res := struct {
		ID       string
		Prefixes []string
	}{}
	require.NoError(t, r.Decode(&res))
	assert.Equal(t, "DST_1", res.ID)
	assert.Equal(t, []string{"855"}, res.Prefixes)

	err := r.Decode(&[]string{})
	assert.Error(t, err)
}

// testServer returns server capturing request into req and answering with result and the same id
func testServer(t *testing.T, req *Request, result string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		t.Logf("req: %s", string(body))
		require.NoError(t, json.Unmarshal(body, req))
		fmt.Fprintf(w, `{"id":%q,"result":%s,"error":null}`, req.ID, result)
	}))
}

func testClient(t *testing.T, host string) *Client {
	c, err := NewClient(Opts{Host: host, Endpoint: DefaultEndpoint, HTTPClient: &http.Client{Timeout: time.Second}})
	require.NoError(t, err)
	return c
}

// mockTransport answers with fixed status and body, keeps the last request body
type mockTransport struct {
	status int
	body   string
	err    error

	lock sync.Mutex
	last []byte
}

func (m *mockTransport) Post(_ context.Context, _ string, body []byte) (int, []byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.last = body
	return m.status, []byte(m.body), m.err
}

func (m *mockTransport) request(t *testing.T) Request {
	m.lock.Lock()
	defer m.lock.Unlock()
	req := Request{}
	require.NoError(t, json.Unmarshal(m.last, &req))
	return req
}
