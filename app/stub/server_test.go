package stub

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/umputun/cgrates/app/cgrates"
	"github.com/umputun/cgrates/app/cgrates/fake"
)

func TestServer_Calls(t *testing.T) {
	srv := Server{Errors: map[string]string{cgrates.MethodGetTPDestination: "NOT_FOUND"}}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	c, err := cgrates.NewClient(cgrates.Opts{Host: ts.URL})
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := c.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, `"OK"`, string(resp.Result))

	resp, err = c.GetAccount(ctx, cgrates.AccountRequest{Account: "acc1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"BalanceMap":null}`, string(resp.Result))

	_, err = c.GetTPDestination(ctx, cgrates.TPResourceID{TPid: "tp", ID: "DST_1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, cgrates.ErrNotFound))

	_, err = c.Call(ctx, "APIerSv1.Unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cgrates.ErrAPI))
	assert.EqualError(t, err, "Invalid response from CGRateS API: SERVER_ERROR: rpc: can't find method APIerSv1.Unknown")
}

func TestServer_EchoID(t *testing.T) {
	srv := Server{}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/jsonrpc", "application/json",
		strings.NewReader(`{"jsonrpc":"2.0","id":42,"method":"APIerSv2.Ping","params":[]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"result":"OK","error":null}`, string(body))
}

func TestServer_CustomRegistry(t *testing.T) {
	reg := fake.NewRegistry()
	require.NoError(t, reg.Set(cgrates.MethodGetCost, func() interface{} { return map[string]float64{"Cost": 1.5} }))
	srv := Server{Registry: reg, Endpoint: "/rpc"}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	c, err := cgrates.NewClient(cgrates.Opts{Host: ts.URL, Endpoint: "/rpc"})
	require.NoError(t, err)
	resp, err := c.GetCost(context.Background(), cgrates.CostRequest{Tenant: "t", Subject: "s", Category: "call",
		Destination: "1", Usage: "60s"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Cost":1.5}`, string(resp.Result))
}

func TestServer_BadRequest(t *testing.T) {
	srv := Server{}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/jsonrpc", "application/json", strings.NewReader(`{"method":`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/jsonrpc", "application/json", strings.NewReader(`{"id":"1","params":[]}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "cgrates-stub", resp.Header.Get("App-Name"))
}

func TestServer_BasicAuth(t *testing.T) {
	srv := Server{AuthUser: "user", AuthPasswd: "secret"}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	c, err := cgrates.NewClient(cgrates.Opts{Host: ts.URL, Username: "user", Password: "bad"})
	require.NoError(t, err)
	_, err = c.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, cgrates.ErrTransport))
	assert.Contains(t, err.Error(), "401")

	c, err = cgrates.NewClient(cgrates.Opts{Host: ts.URL, Username: "user", Password: "secret"})
	require.NoError(t, err)
	_, err = c.Ping(context.Background())
	require.NoError(t, err)
}

func TestServer_Run(t *testing.T) {
	port := chooseRandomUnusedPort()
	srv := Server{Port: port}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- srv.Run(ctx) }()
	waitForHTTPServerStart(port)

	c, err := cgrates.NewClient(cgrates.Opts{Host: fmt.Sprintf("http://127.0.0.1:%d", port)})
	require.NoError(t, err)
	_, err = c.Ping(context.Background())
	require.NoError(t, err)

	cancel()
	assert.NoError(t, <-done)
}

func TestServer_RunPortBusy(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	srv := Server{Port: port}
	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub server failed")
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("net/http.(*Server).Shutdown"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

func chooseRandomUnusedPort() (port int) {
	for i := 0; i < 10; i++ {
		port = 40000 + int(rand.Int31n(10000))
		if ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port)); err == nil {
			_ = ln.Close()
			break
		}
	}
	return port
}

func waitForHTTPServerStart(port int) {
	// wait for up to 10 seconds for server to start before returning it
	client := http.Client{Timeout: time.Second}
	for i := 0; i < 100; i++ {
		time.Sleep(time.Millisecond * 100)
		if resp, err := client.Get(fmt.Sprintf("http://localhost:%d/ping", port)); err == nil {
			_ = resp.Body.Close()
			return
		}
	}
}
