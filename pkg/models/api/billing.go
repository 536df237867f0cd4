package api

// Error is the JSON envelope for failed requests.
type Error struct {
	Message string `json:"message"`
}
