package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techverse/aiverse/internal/auth"
	"github.com/techverse/aiverse/internal/intent"
)

// RegisterRoutes mounts the chat API. The /chat prefix serves anonymous
// conversations, /auth-chat resolves bearer tokens and unlocks
// personalized order tracking.
func RegisterRoutes(r chi.Router, svc *Service, verifier auth.Verifier) {
	r.Route("/api/v1/chat", func(r chi.Router) {
		r.Post("/chat", handleChat(svc))
		r.Get("/ws", handleChatSocket(svc, verifier))
	})

	r.Route("/api/v1/auth-chat", func(r chi.Router) {
		r.Post("/chat", handleAuthChat(svc, verifier))
		r.Post("/order-tracking", handleOrderTracking(svc, verifier))
	})
}

func handleChat(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, svc.Process(r.Context(), req))
	}
}

func handleAuthChat(svc *Service, verifier auth.Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}

		identity, authenticated := auth.FromRequest(r, verifier)
		req.SetAuth(authenticated, identity.UserID)

		writeJSON(w, svc.Process(r.Context(), req))
	}
}

func handleOrderTracking(svc *Service, verifier auth.Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}

		identity, authenticated := auth.FromRequest(r, verifier)
		if !authenticated {
			writeJSON(w, &Response{Answer: guestTrackingAnswer})
			return
		}

		req.SetAuth(true, identity.UserID)
		req.SetRequestType(intent.HintOrderTracking)

		writeJSON(w, svc.Process(r.Context(), req))
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*Request, bool) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return nil, false
	}
	if req.Query == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
