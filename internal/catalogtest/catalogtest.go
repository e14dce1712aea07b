// Package catalogtest serves a fake /Help surface from txtar fixtures.
package catalogtest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/tools/txtar"
)

//go:embed testdata/lcu.txtar
var defaultArchive []byte

// Fixture is the content of a fake service.
//
// Archive layout:
//
//	-- version --          build version
//	-- help.json --        /Help index
//	-- full/<Name>.json -- Full detail record
//	-- console/<Name>.json -- Console detail record
type Fixture struct {
	Version string
	Index   json.RawMessage
	Full    map[string]json.RawMessage
	Console map[string]json.RawMessage
}

// Parse reads a fixture from txtar data.
func Parse(data []byte) (*Fixture, error) {
	ar := txtar.Parse(data)
	fx := &Fixture{
		Full:    make(map[string]json.RawMessage),
		Console: make(map[string]json.RawMessage),
	}
	for _, f := range ar.Files {
		switch name := f.Name; {
		case name == "version":
			fx.Version = strings.TrimSpace(string(f.Data))
		case name == "help.json":
			fx.Index = json.RawMessage(f.Data)
		case strings.HasPrefix(name, "full/"):
			fx.Full[entryName(name, "full/")] = json.RawMessage(f.Data)
		case strings.HasPrefix(name, "console/"):
			fx.Console[entryName(name, "console/")] = json.RawMessage(f.Data)
		default:
			return nil, fmt.Errorf("catalogtest: unexpected fixture file %q", name)
		}
	}
	if fx.Index == nil {
		return nil, fmt.Errorf("catalogtest: fixture has no help.json")
	}
	return fx, nil
}

func entryName(file, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(file, prefix), ".json")
}

// Default returns the bundled League client fixture.
func Default() *Fixture {
	fx, err := Parse(defaultArchive)
	if err != nil {
		panic(err)
	}
	return fx
}

// Server is a running fake service.
type Server struct {
	*httptest.Server

	fixture  *Fixture
	password string

	mu       sync.Mutex
	failures map[string]int
	calls    map[string]int

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

// Option configures a Server.
type Option func(*Server)

// WithPassword requires basic auth riot:<password> on every request.
func WithPassword(password string) Option {
	return func(s *Server) { s.password = password }
}

// WithFailure answers detail requests for target with status.
func WithFailure(target string, status int) Option {
	return func(s *Server) { s.failures[target] = status }
}

// NewServer starts a TLS server for fx and closes it when the test ends.
func NewServer(t testing.TB, fx *Fixture, opts ...Option) *Server {
	t.Helper()
	s := &Server{
		fixture:  fx,
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.Close)
	return s
}

// Calls returns how many detail requests were made for target in format.
func (s *Server) Calls(target, format string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[target+"/"+format]
}

// MaxInFlight returns the highest number of concurrent detail requests seen.
func (s *Server) MaxInFlight() int {
	return int(s.maxInFlight.Load())
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if s.password != "" {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "riot" || pass != s.password {
			http.Error(w, `{"errorCode":"RPC_ERROR","message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/system/v1/builds":
		writeJSON(w, map[string]string{"version": s.fixture.Version})
	case r.Method == http.MethodPost && r.URL.Path == "/Help":
		s.serveHelp(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) serveHelp(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(s.fixture.Index)
		return
	}
	format := r.URL.Query().Get("format")

	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		peak := s.maxInFlight.Load()
		if n <= peak || s.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}

	s.mu.Lock()
	s.calls[target+"/"+format]++
	status := s.failures[target]
	s.mu.Unlock()
	if status != 0 {
		http.Error(w, `{"errorCode":"RPC_ERROR"}`, status)
		return
	}

	switch format {
	case "Full":
		record, ok := s.fixture.Full[target]
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, []json.RawMessage{record})
	case "Console":
		record, ok := s.fixture.Console[target]
		if !ok {
			record = json.RawMessage(`{}`)
		}
		writeJSON(w, map[string]json.RawMessage{target: record})
	default:
		http.Error(w, "unsupported format", http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
