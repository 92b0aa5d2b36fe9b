package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"automaxbot/internal/agent"
	"automaxbot/internal/dealership"
	"automaxbot/internal/intent"
	"automaxbot/internal/llm"
	"automaxbot/internal/memory"
	"automaxbot/internal/model"
	"automaxbot/internal/translate"
)

type fakeCompleter struct{}

func (fakeCompleter) Complete(_ context.Context, _ []model.ChatMessage, _ llm.Options) (string, error) {
	return "respuesta del modelo", nil
}

// fakeGraphAPI records every message posted to the Cloud API.
type fakeGraphAPI struct {
	server   *httptest.Server
	payloads []map[string]any
}

func newFakeGraphAPI(t *testing.T) *fakeGraphAPI {
	t.Helper()
	f := &fakeGraphAPI{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode outbound payload: %v", err)
		}
		f.payloads = append(f.payloads, payload)
		w.Write([]byte(`{"messages":[{"id":"wamid.test"}]}`))
	}))
	t.Cleanup(f.server.Close)

	orig := graphAPIBase
	graphAPIBase = f.server.URL
	t.Cleanup(func() { graphAPIBase = orig })
	return f
}

func newTestWebhook() *Webhook {
	states := memory.NewStateStore()
	ag := agent.New(
		memory.NewMemoryStore(memory.DefaultHistoryLimit),
		states,
		intent.NewKeywordClassifier(),
		fakeCompleter{},
		translate.New(fakeCompleter{}, false),
		dealership.NewAppointmentBook(),
	)
	return NewWebhook("secret-token", ag, NewSender("test-token", "123456"), states)
}

func TestWebhookVerification(t *testing.T) {
	hook := newTestWebhook()

	req := httptest.NewRequest(http.MethodGet, "/whatsapp?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=42", nil)
	rec := httptest.NewRecorder()
	hook.Handler()(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "42" {
		t.Errorf("verification = %d %q, want 200 %q", rec.Code, rec.Body.String(), "42")
	}

	req = httptest.NewRequest(http.MethodGet, "/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=42", nil)
	rec = httptest.NewRecorder()
	hook.Handler()(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("bad token = %d, want 403", rec.Code)
	}
}

const textEventTemplate = `{
  "entry": [{
    "changes": [{
      "value": {
        "contacts": [{"wa_id": "34600111222", "profile": {"name": "Ana"}}],
        "messages": [{
          "id": "wamid.abc",
          "from": "34600111222",
          "type": "text",
          "text": {"body": %q}
        }]
      }
    }]
  }]
}`

func postEvent(t *testing.T, hook *Webhook, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(body))
	rec := httptest.NewRecorder()
	hook.Handler()(rec, req)
	return rec
}

func TestWebhookWelcomeCarriesReplyButtons(t *testing.T) {
	api := newFakeGraphAPI(t)
	hook := newTestWebhook()

	rec := postEvent(t, hook, fmt.Sprintf(textEventTemplate, "Hola"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// One mark-as-read plus one interactive reply.
	if len(api.payloads) != 2 {
		t.Fatalf("expected 2 API calls, got %d", len(api.payloads))
	}
	if api.payloads[0]["status"] != "read" {
		t.Errorf("first call should mark as read: %+v", api.payloads[0])
	}
	reply := api.payloads[1]
	if reply["type"] != "interactive" || reply["to"] != "34600111222" {
		t.Errorf("reply envelope = %+v", reply)
	}
	interactive := reply["interactive"].(map[string]any)
	body := interactive["body"].(map[string]any)["text"].(string)
	if !strings.Contains(body, "Ana") {
		t.Errorf("welcome should greet by name: %q", body)
	}
	buttons := interactive["action"].(map[string]any)["buttons"].([]any)
	if len(buttons) != 3 {
		t.Errorf("welcome should offer 3 quick replies, got %d", len(buttons))
	}
}

func TestWebhookDeliversTextReply(t *testing.T) {
	api := newFakeGraphAPI(t)
	hook := newTestWebhook()

	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "Hola"))
	api.payloads = nil

	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "busco coches azules"))
	if len(api.payloads) != 2 {
		t.Fatalf("expected 2 API calls, got %d", len(api.payloads))
	}
	reply := api.payloads[1]
	if reply["type"] != "text" {
		t.Fatalf("listing reply should be plain text: %+v", reply)
	}
	body := reply["text"].(map[string]any)["body"].(string)
	if !strings.Contains(body, "Vehículos encontrados") {
		t.Errorf("expected an inventory listing: %q", body)
	}
}

func TestWebhookCompanyInfoAttachesLocation(t *testing.T) {
	api := newFakeGraphAPI(t)
	hook := newTestWebhook()

	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "Hola"))
	api.payloads = nil

	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "¿dónde están? dame la dirección"))
	// Mark-as-read, the text block, then the map pin.
	if len(api.payloads) != 3 {
		t.Fatalf("expected 3 API calls, got %d", len(api.payloads))
	}
	pin := api.payloads[2]
	if pin["type"] != "location" {
		t.Fatalf("last call should be a location: %+v", pin)
	}
	loc := pin["location"].(map[string]any)
	if loc["name"] != "AutoMax" {
		t.Errorf("location payload = %+v", loc)
	}
}

func TestWebhookDeliversImageForDetails(t *testing.T) {
	api := newFakeGraphAPI(t)
	hook := newTestWebhook()

	// First contact gets the welcome out of the way.
	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "Hola"))
	api.payloads = nil

	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "más información del BMW X3"))
	if len(api.payloads) != 2 {
		t.Fatalf("expected 2 API calls, got %d", len(api.payloads))
	}
	reply := api.payloads[1]
	if reply["type"] != "image" {
		t.Fatalf("detail reply should be an image message: %+v", reply)
	}
	caption := reply["image"].(map[string]any)["caption"].(string)
	if !strings.Contains(caption, "€45,000") {
		t.Errorf("caption missing the price: %q", caption)
	}
}

func TestWebhookButtonReplyRoutesLikeText(t *testing.T) {
	api := newFakeGraphAPI(t)
	hook := newTestWebhook()

	postEvent(t, hook, fmt.Sprintf(textEventTemplate, "Hola"))
	api.payloads = nil

	buttonEvent := `{
	  "entry": [{
	    "changes": [{
	      "value": {
	        "contacts": [{"wa_id": "34600111222", "profile": {"name": "Ana"}}],
	        "messages": [{
	          "id": "wamid.btn",
	          "from": "34600111222",
	          "type": "interactive",
	          "interactive": {
	            "type": "button_reply",
	            "button_reply": {"id": "schedule_test", "title": "Agendar cita"}
	          }
	        }]
	      }
	    }]
	  }]
	}`
	postEvent(t, hook, buttonEvent)
	if len(api.payloads) != 2 {
		t.Fatalf("expected 2 API calls, got %d", len(api.payloads))
	}
	body := api.payloads[1]["text"].(map[string]any)["body"].(string)
	if !strings.Contains(body, "horario de atención") {
		t.Errorf("button tap should reach the appointment flow: %q", body)
	}
}

func TestWebhookMalformedPayloadStillAcks(t *testing.T) {
	hook := newTestWebhook()
	rec := postEvent(t, hook, "not json at all")
	if rec.Code != http.StatusOK {
		t.Errorf("malformed payload = %d, want 200", rec.Code)
	}
}

func TestStatusHandler(t *testing.T) {
	hook := newTestWebhook()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	hook.StatusHandler()(rec, req)

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if payload["status"] != "active" {
		t.Errorf("status payload = %+v", payload)
	}
}
