package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/techverse/aiverse/internal/auth"
	"github.com/techverse/aiverse/internal/llm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketMessage is one inbound WebSocket frame.
type socketMessage struct {
	Query string `json:"query"`
}

// socketReply is one outbound WebSocket frame. Error is set instead of the
// answer fields when the frame could not be processed.
type socketReply struct {
	Answer  string   `json:"answer,omitempty"`
	Context []string `json:"context,omitempty"`
	Sources []string `json:"sources,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// handleChatSocket runs a persistent chat session over a WebSocket. The
// connection keeps its own history so follow-up questions see the earlier
// turns; authentication is resolved once, at upgrade time.
func handleChatSocket(svc *Service, verifier auth.Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, authenticated := auth.FromRequest(r, verifier)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		var history []llm.Message
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			var msg socketMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				sendSocketError(conn, "invalid message format")
				continue
			}
			if msg.Query == "" {
				sendSocketError(conn, "query is required")
				continue
			}

			req := &Request{Query: msg.Query, History: history}
			req.SetAuth(authenticated, identity.UserID)

			resp := svc.Process(r.Context(), req)

			history = append(history,
				llm.Message{Role: llm.RoleUser, Content: msg.Query},
				llm.Message{Role: llm.RoleAssistant, Content: resp.Answer},
			)

			reply := socketReply{Answer: resp.Answer, Context: resp.Context, Sources: resp.Sources}
			if err := conn.WriteJSON(reply); err != nil {
				log.Printf("chat: websocket write: %v", err)
				return
			}
		}
	}
}

func sendSocketError(conn *websocket.Conn, msg string) {
	if err := conn.WriteJSON(socketReply{Error: msg}); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}
