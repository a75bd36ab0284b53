package models

type (
	// Error is the JSON body of an error the portal answers itself, shaped like the
	// backend's own {"detail": ...} responses.
	Error struct {
		Detail string `json:"detail"`
	}
)
