package chat

import "github.com/techverse/aiverse/internal/llm"

// Request is one inbound chat message with its conversation history and
// transport-supplied metadata.
type Request struct {
	Query    string         `json:"query"`
	History  []llm.Message  `json:"history,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Response is the assistant's answer. Context carries the content of the
// top retrieved documents and Sources their origins; both are nil on the
// handler paths that never touch the index.
type Response struct {
	Answer  string   `json:"answer"`
	Context []string `json:"context,omitempty"`
	Sources []string `json:"sources,omitempty"`
}

// Metadata keys the orchestrator understands.
const (
	metaAuthenticated = "authenticated"
	metaRequestType   = "request_type"
	metaUserID        = "user_id"
)

// Authenticated reports the authenticated flag from request metadata,
// defaulting to false.
func (r *Request) Authenticated() bool {
	if r.Metadata == nil {
		return false
	}
	b, _ := r.Metadata[metaAuthenticated].(bool)
	return b
}

// RequestType returns the request_type hint from metadata, or "".
func (r *Request) RequestType() string {
	if r.Metadata == nil {
		return ""
	}
	s, _ := r.Metadata[metaRequestType].(string)
	return s
}

// UserID returns the authenticated user's id from metadata, or 0.
// JSON numbers decode as float64, so both forms are accepted.
func (r *Request) UserID() int {
	if r.Metadata == nil {
		return 0
	}
	switch v := r.Metadata[metaUserID].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// SetAuth stamps authentication state into request metadata, creating the
// map when needed.
func (r *Request) SetAuth(authenticated bool, userID int) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[metaAuthenticated] = authenticated
	if userID > 0 {
		r.Metadata[metaUserID] = userID
	}
}

// SetRequestType stamps a request_type hint into request metadata.
func (r *Request) SetRequestType(requestType string) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[metaRequestType] = requestType
}
