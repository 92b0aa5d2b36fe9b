package whatsapp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"automaxbot/internal/agent"
	"automaxbot/internal/memory"
	"automaxbot/internal/model"
)

// metaPayload mirrors the slice of the Cloud API webhook schema we consume.
type metaPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Contacts []struct {
					WaID    string `json:"wa_id"`
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []struct {
					ID   string `json:"id"`
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
					Interactive struct {
						Type        string `json:"type"`
						ButtonReply struct {
							ID    string `json:"id"`
							Title string `json:"title"`
						} `json:"button_reply"`
						ListReply struct {
							ID    string `json:"id"`
							Title string `json:"title"`
						} `json:"list_reply"`
					} `json:"interactive"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Webhook receives Meta events and drives the agent.
type Webhook struct {
	verifyToken string
	agent       *agent.Agent
	sender      *Sender
	states      *memory.StateStore
}

func NewWebhook(verifyToken string, ag *agent.Agent, sender *Sender, states *memory.StateStore) *Webhook {
	return &Webhook{verifyToken: verifyToken, agent: ag, sender: sender, states: states}
}

// Handler serves both webhook verbs: GET for Meta's subscription handshake,
// POST for message events.
func (w *Webhook) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.verify(rw, r)
		case http.MethodPost:
			w.receive(rw, r)
		default:
			http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (w *Webhook) verify(rw http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("hub.mode") == "subscribe" && q.Get("hub.verify_token") == w.verifyToken {
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte(q.Get("hub.challenge")))
		return
	}
	log.Printf("[Webhook] verification rejected")
	http.Error(rw, "forbidden", http.StatusForbidden)
}

// receive always answers 200 to Meta; processing errors are logged, never
// surfaced, so the platform does not retry or disable the webhook.
func (w *Webhook) receive(rw http.ResponseWriter, r *http.Request) {
	var payload metaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("[Webhook] payload decode failed: %v", err)
		rw.WriteHeader(http.StatusOK)
		json.NewEncoder(rw).Encode(map[string]string{"status": "ok"})
		return
	}

	for _, in := range normalize(payload) {
		w.dispatch(r.Context(), in)
	}

	rw.Header().Set("Content-Type", "application/json")
	json.NewEncoder(rw).Encode(map[string]string{"status": "ok"})
}

// normalize flattens the webhook envelope into agent-ready messages.
func normalize(payload metaPayload) []model.InboundMessage {
	var out []model.InboundMessage
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			names := map[string]string{}
			for _, c := range change.Value.Contacts {
				names[c.WaID] = c.Profile.Name
			}
			for _, m := range change.Value.Messages {
				in := model.InboundMessage{
					UserID:    m.From,
					UserName:  names[m.From],
					MessageID: m.ID,
				}
				switch m.Type {
				case "text":
					in.Kind = model.KindText
					in.Text = m.Text.Body
				case "interactive":
					switch m.Interactive.Type {
					case "button_reply":
						in.Kind = model.KindButton
						in.Text = agent.UtteranceForButton(m.Interactive.ButtonReply.ID, m.Interactive.ButtonReply.Title)
					case "list_reply":
						in.Kind = model.KindList
						in.Text = agent.UtteranceForListSelection(m.Interactive.ListReply.Title)
					default:
						continue
					}
				case "image":
					in.Kind = model.KindImage
				default:
					continue
				}
				out = append(out, in)
			}
		}
	}
	return out
}

func (w *Webhook) dispatch(ctx context.Context, in model.InboundMessage) {
	if in.MessageID != "" {
		if err := w.sender.MarkAsRead(ctx, in.MessageID); err != nil {
			log.Printf("[Webhook] mark as read failed: %v", err)
		}
	}

	reply := w.agent.Process(ctx, in)

	var err error
	switch {
	case reply.ImageRef != "":
		err = w.sender.SendImage(ctx, reply.UserID, reply.ImageRef, reply.Text)
	case len(reply.Buttons) > 0:
		buttons := make([]Button, 0, len(reply.Buttons))
		for _, b := range reply.Buttons {
			buttons = append(buttons, Button{ID: b.ID, Title: b.Title})
		}
		err = w.sender.SendButtons(ctx, reply.UserID, reply.Text, buttons)
	default:
		err = w.sender.SendText(ctx, reply.UserID, reply.Text)
	}
	if err != nil {
		log.Printf("[Webhook] reply delivery failed for %s: %v", reply.UserID, err)
	}

	if loc := reply.Location; loc != nil {
		if err := w.sender.SendLocation(ctx, reply.UserID, loc.Latitude, loc.Longitude, loc.Name, loc.Address); err != nil {
			log.Printf("[Webhook] location delivery failed for %s: %v", reply.UserID, err)
		}
	}
}

// StatusHandler reports service liveness and the number of users with state.
func (w *Webhook) StatusHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		json.NewEncoder(rw).Encode(map[string]any{
			"status":               "active",
			"service":              "automax-whatsapp-bot",
			"version":              "1.0.0",
			"active_conversations": w.states.ActiveUsers(),
		})
	}
}
