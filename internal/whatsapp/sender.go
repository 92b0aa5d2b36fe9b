// Package whatsapp is the transport boundary: it verifies and receives Meta
// webhook events, normalizes them for the agent, and sends replies through
// the Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// graphAPIBase is overridable in tests.
var graphAPIBase = "https://graph.facebook.com/v18.0"

// Button is one interactive reply button.
type Button struct {
	ID    string
	Title string
}

// Sender pushes messages to one WhatsApp Business phone number.
type Sender struct {
	token         string
	phoneNumberID string
	client        *http.Client
}

func NewSender(token, phoneNumberID string) *Sender {
	return &Sender{
		token:         token,
		phoneNumberID: phoneNumberID,
		client:        &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *Sender) send(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	url := fmt.Sprintf("%s/%s/messages", graphAPIBase, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("send message: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// SendText delivers a plain text message.
func (s *Sender) SendText(ctx context.Context, to, text string) error {
	return s.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]any{"body": text},
	})
}

// SendImage delivers an image by link with an optional caption.
func (s *Sender) SendImage(ctx context.Context, to, link, caption string) error {
	image := map[string]any{"link": link}
	if caption != "" {
		image["caption"] = caption
	}
	return s.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "image",
		"image":             image,
	})
}

// SendButtons delivers a message with up to three reply buttons.
func (s *Sender) SendButtons(ctx context.Context, to, body string, buttons []Button) error {
	var actions []map[string]any
	for _, b := range buttons {
		actions = append(actions, map[string]any{
			"type":  "reply",
			"reply": map[string]any{"id": b.ID, "title": b.Title},
		})
	}
	return s.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]any{
			"type":   "button",
			"body":   map[string]any{"text": body},
			"action": map[string]any{"buttons": actions},
		},
	})
}

// SendLocation delivers the dealership pin.
func (s *Sender) SendLocation(ctx context.Context, to string, lat, lon float64, name, address string) error {
	return s.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "location",
		"location": map[string]any{
			"latitude":  lat,
			"longitude": lon,
			"name":      name,
			"address":   address,
		},
	})
}

// SendContact delivers a contact card with the dealership's phone, email
// and website.
func (s *Sender) SendContact(ctx context.Context, to, name, phone, email, website string) error {
	return s.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "contacts",
		"contacts": []map[string]any{{
			"name": map[string]any{
				"formatted_name": name,
				"first_name":     name,
			},
			"phones": []map[string]any{{"phone": phone, "type": "WORK"}},
			"emails": []map[string]any{{"email": email, "type": "WORK"}},
			"urls":   []map[string]any{{"url": website, "type": "WORK"}},
		}},
	})
}

// MarkAsRead acknowledges an inbound message so the user sees read receipts.
func (s *Sender) MarkAsRead(ctx context.Context, messageID string) error {
	return s.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        messageID,
	})
}
