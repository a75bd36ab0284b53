package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

type featureResponse struct {
	Version  int       `json:"version"`
	Features []feature `json:"features"`
}

type feature struct {
	Name       string     `json:"name"`
	Enabled    bool       `json:"enabled"`
	Strategies []strategy `json:"strategies"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type strategy struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// fakeUnleashServer answers the Unleash client API from an in-memory set of toggles.
type fakeUnleashServer struct {
	sync.RWMutex
	srv      *httptest.Server
	features map[string]bool
}

func (f *fakeUnleashServer) url() string {
	return f.srv.URL
}

func (f *fakeUnleashServer) setEnabled(name string, enabled bool) {
	f.Lock()
	f.features[name] = enabled
	f.Unlock()
}

func (f *fakeUnleashServer) handler(w http.ResponseWriter, req *http.Request) {
	switch req.Method + " " + req.URL.Path {
	case "GET /client/features":
		f.RLock()
		features := make([]feature, 0, len(f.features))
		for name, enabled := range f.features {
			features = append(features, feature{
				Name:       name,
				Enabled:    enabled,
				Strategies: []strategy{{Name: "default"}},
			})
		}
		f.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(featureResponse{Version: 2, Features: features})
	case "POST /client/register", "POST /client/metrics":
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newFakeUnleash() *fakeUnleashServer {
	faker := &fakeUnleashServer{features: map[string]bool{}}
	faker.srv = httptest.NewServer(http.HandlerFunc(faker.handler))
	return faker
}
