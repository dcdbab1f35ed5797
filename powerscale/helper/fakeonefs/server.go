// Package fakeonefs is an in-memory stand-in for the OneFS platform API used
// by unit tests. It records every request so tests can assert which writes
// a reconcile issued.
package fakeonefs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"terraform-provider-powerscale/common"
	"terraform-provider-powerscale/powerscale/config"
	"terraform-provider-powerscale/powerscale/helper/client"
)

const (
	SessionID = "fake-session"
	CsrfToken = "fake-csrf"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type Handler func(w http.ResponseWriter, r *http.Request, body []byte)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Handler
	requests []Request
}

// New starts a fake cluster answering the session and cluster config
// endpoints. The server is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{routes: map[string]Handler{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	s.Handle(http.MethodPost, client.ApiPath.Session, func(w http.ResponseWriter, r *http.Request, body []byte) {
		http.SetCookie(w, &http.Cookie{Name: "isisessid", Value: SessionID})
		http.SetCookie(w, &http.Cookie{Name: "isicsrf", Value: CsrfToken})
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"services":["platform","namespace"],"timeout_absolute":14400}`)
	})

	s.JSON(http.MethodGet, client.ApiPath.ClusterConfig, http.StatusOK, client.ClusterConfig{
		Name:     "fake-cluster",
		Guid:     "0050569e7f8d",
		LocalLnn: 1,
		OnefsVersion: client.ClusterVersion{
			Release: "9.5.0.0",
		},
		Devices: []client.ClusterDevice{{Devid: 1, Lnn: 1}, {Devid: 2, Lnn: 2}, {Devid: 3, Lnn: 3}},
	})

	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	h, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		WriteError(w, http.StatusNotFound, "AEC_NOT_FOUND", fmt.Sprintf("Path not found: %s", r.URL.Path))
		return
	}

	h(w, r, body)
}

// Handle registers h for method and path, replacing any previous handler.
func (s *Server) Handle(method, path string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = h
}

// JSON registers a handler answering with status and body rendered as JSON.
func (s *Server) JSON(method, path string, status int, body any) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		WriteJSON(w, status, body)
	})
}

// Status registers a handler answering with an empty body.
func (s *Server) Status(method, path string, status int) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		w.WriteHeader(status)
	})
}

// Error registers a handler answering with an OneFS error envelope.
func (s *Server) Error(method, path string, status int, message string) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		WriteError(w, status, "AEC_EXCEPTION", message)
	})
}

// Requests returns the recorded requests for method and path.
func (s *Server) Requests(method, path string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []Request
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			res = append(res, r)
		}
	}
	return res
}

// Writes returns every recorded POST, PUT, PATCH and DELETE except the
// session handshake.
func (s *Server) Writes() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []Request
	for _, r := range s.requests {
		if r.Method == http.MethodGet || r.Path == client.ApiPath.Session {
			continue
		}
		res = append(res, r)
	}
	return res
}

// ClientConfig points a REST client at the fake cluster.
func (s *Server) ClientConfig() *client.ClientConfig {
	return &client.ClientConfig{
		Endpoint: s.URL,
		Username: "admin",
		Password: "password",
		AuthType: client.AuthTypeSession,
	}
}

// Client returns an authenticated client wrapped the way providers hand it to
// resources.
func (s *Server) Client(t testing.TB) *common.Client {
	t.Helper()

	apiClient, err := client.NewClient(context.Background(), s.ClientConfig())
	if err != nil {
		t.Fatalf("unable to create client for fake cluster: %s", err)
	}

	cluster, err := apiClient.GetClusterConfig(context.Background())
	if err != nil {
		t.Fatalf("unable to read fake cluster config: %s", err)
	}

	return common.WrapClient(apiClient, cluster)
}

// Meta returns the provider meta SDKv2 resources expect.
func (s *Server) Meta(t testing.TB) *config.Config {
	return config.NewForClient(s.Client(t))
}

// Decode unmarshals the body of r into v.
func Decode(t testing.TB, r Request, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("unable to decode %s %s body %q: %s", r.Method, r.Path, string(r.Body), err)
	}
}

// WriteJSON answers with status and body rendered as JSON.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]string{{"code": code, "message": message}},
	})
}
