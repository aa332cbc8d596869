// Package stub implements http server mimicking cgr-engine json-rpc api with canned responses.
// Useful for local development and end-to-end tests of cgrates.Client.
package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth_chi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	log "github.com/go-pkgz/lgr"
	R "github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/pkg/errors"

	"github.com/umputun/cgrates/app/cgrates"
	"github.com/umputun/cgrates/app/cgrates/fake"
)

// Server is json-rpc server with an optional basic auth answering from fake.Registry
type Server struct {
	Port       int
	Endpoint   string            // url path, defaults to cgrates.DefaultEndpoint
	AuthUser   string            // basic auth user name, optional
	AuthPasswd string            // basic auth password, optional
	Version    string            // informational, sent in App-Version header
	Registry   *fake.Registry    // results source, defaults to fake.NewRegistry()
	Errors     map[string]string // method -> error text returned instead of result, i.e. "NOT_FOUND"
}

// request is incoming json-rpc envelope, id kept raw to echo it back as-is
type request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      json.RawMessage  `json:"id"`
	Method  string           `json:"method"`
	Params  *json.RawMessage `json:"params"`
}

// response mimics cgr-engine reply, both result and error always present
type response struct {
	ID     json.RawMessage `json:"id"`
	Result interface{}     `json:"result"`
	Error  interface{}     `json:"error"`
}

// Run http server on Port and block till ctx canceled
func (s *Server) Run(ctx context.Context) error {
	if s.AuthUser == "" || s.AuthPasswd == "" {
		log.Print("[WARN] stub server runs without auth")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	log.Printf("[INFO] stub server listen on %d, endpoint %s", s.Port, s.endpoint())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "stub server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[DEBUG] stub server shutdown error, %s", err)
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		log.Printf("[WARN] stub server terminated, %s", err)
	}
	log.Print("[DEBUG] shutdown stub server completed")
	return nil
}

// Handler returns router with all middlewares and json-rpc endpoint
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Throttle(1000), middleware.RealIP, R.Recoverer(log.Default()))
	router.Use(R.AppInfo("cgrates-stub", "umputun", s.Version), R.Ping)
	router.Use(middleware.Timeout(5 * time.Second))
	router.Use(logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler)
	router.Use(tollbooth_chi.LimitHandler(tollbooth.NewLimiter(1000, nil)), middleware.NoCache)
	router.Use(s.basicAuth)

	router.Post(s.endpoint(), s.handler)
	return router
}

// handler answers a single json-rpc request
func (s *Server) handler(w http.ResponseWriter, r *http.Request) {
	req := request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "can't decode request")
		return
	}
	if req.Method == "" {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, errors.New("empty method"), "no method")
		return
	}

	id := req.ID
	if len(id) == 0 {
		id = json.RawMessage("null")
	}

	if msg, ok := s.Errors[req.Method]; ok {
		render.JSON(w, r, response{ID: id, Error: msg})
		return
	}

	res, err := s.registry().Result(req.Method)
	if err != nil {
		render.JSON(w, r, response{ID: id, Error: "SERVER_ERROR: rpc: can't find method " + req.Method})
		return
	}
	render.JSON(w, r, response{ID: id, Result: res})
}

// basicAuth middleware, enabled only if both AuthUser and AuthPasswd defined
func (s *Server) basicAuth(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.AuthUser == "" || s.AuthPasswd == "" {
			h.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if user != s.AuthUser || pass != s.AuthPasswd || !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (s *Server) endpoint() string {
	if s.Endpoint == "" {
		return cgrates.DefaultEndpoint
	}
	return s.Endpoint
}

func (s *Server) registry() *fake.Registry {
	if s.Registry == nil {
		return defaultRegistry
	}
	return s.Registry
}

var defaultRegistry = fake.NewRegistry()
