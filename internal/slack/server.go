package slack

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

type Server struct {
	client             *Client
	messageHandler     *MessageHandler
	interactionHandler *InteractionHandler
	signingSecret      string
}

func NewServer(client *Client, messageHandler *MessageHandler, interactionHandler *InteractionHandler, signingSecret string) *Server {
	log.Printf("🔐 Slack signing secret configured (length: %d)", len(signingSecret))
	return &Server{
		client:             client,
		messageHandler:     messageHandler,
		interactionHandler: interactionHandler,
		signingSecret:      signingSecret,
	}
}

// verifyRequest reads the body and checks the Slack request signature.
func (s *Server) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Error reading body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	sv, err := slack.NewSecretsVerifier(r.Header, s.signingSecret)
	if err != nil {
		log.Printf("❌ Error creating secrets verifier: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	if _, err := sv.Write(body); err != nil {
		log.Printf("❌ Error writing to verifier: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := sv.Ensure(); err != nil {
		log.Printf("❌ Error verifying signature: %v", err)
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := s.verifyRequest(w, r)
	if !ok {
		return
	}

	eventsAPIEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		log.Printf("❌ Error parsing event: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if eventsAPIEvent.Type == slackevents.URLVerification {
		var cr *slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &cr); err != nil {
			log.Printf("❌ Error unmarshaling challenge: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		log.Printf("✅ Responding to URL verification challenge")
		w.Header().Set("Content-Type", "text")
		w.Write([]byte(cr.Challenge))
		return
	}

	if eventsAPIEvent.Type == slackevents.CallbackEvent {
		innerEvent := eventsAPIEvent.InnerEvent
		ctx := context.Background()

		log.Printf("📬 Inner event type: %s", innerEvent.Type)

		switch ev := innerEvent.Data.(type) {
		case *slackevents.MessageEvent:
			log.Printf("💬 Message event received")
			if err := s.messageHandler.HandleMessage(ctx, ev); err != nil {
				log.Printf("❌ Error handling message: %v", err)
			}

		case *slackevents.AppMentionEvent:
			log.Printf("📣 App mention event received")
			if err := s.messageHandler.HandleAppMention(ctx, ev); err != nil {
				log.Printf("❌ Error handling mention: %v", err)
			}

		default:
			log.Printf("⚠️ Unsupported event type: %v", innerEvent.Type)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleInteractions(w http.ResponseWriter, r *http.Request) {
	body, ok := s.verifyRequest(w, r)
	if !ok {
		return
	}

	// Interaction payloads arrive form-encoded as payload=<json>.
	payload := strings.TrimPrefix(string(body), "payload=")
	jsonStr, err := url.QueryUnescape(payload)
	if err != nil {
		log.Printf("❌ Error unescaping payload: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(jsonStr), &callback); err != nil {
		log.Printf("❌ Error parsing interaction payload: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.interactionHandler.HandleInteraction(context.Background(), &callback); err != nil {
		log.Printf("❌ Error handling interaction: %v", err)
	}

	w.WriteHeader(http.StatusOK)
}

// Start starts the Slack event server
func (s *Server) Start(port string) error {
	http.HandleFunc("/slack/events", s.handleEvents)
	http.HandleFunc("/slack/interactions", s.handleInteractions)
	http.HandleFunc("/health", s.healthCheck)

	log.Printf("🚀 Slack server starting on port %s", port)
	log.Printf("📡 Event endpoint: http://localhost:%s/slack/events", port)
	log.Printf("🖱️ Interactivity endpoint: http://localhost:%s/slack/interactions", port)
	log.Printf("🏥 Health check: http://localhost:%s/health", port)

	return http.ListenAndServe(":"+port, nil)
}

// healthCheck provides a simple health check endpoint
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
