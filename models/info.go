package models

type (
	// Info represents the response from 'GET /info'
	Info struct {
		Name     string          `json:"name"`
		Version  string          `json:"version"`
		Backend  string          `json:"backend"`
		Features map[string]bool `json:"features"`
	}
)
