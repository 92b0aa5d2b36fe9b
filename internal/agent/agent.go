// Package agent is the conversation orchestrator: it welcomes new users,
// handles commands, classifies everything else and routes each intent to the
// matching responder. It never returns an error; every failure path ends in
// a usable reply.
package agent

import (
	"context"
	"log"
	"strings"
	"time"

	"automaxbot/internal/catalog"
	"automaxbot/internal/dealership"
	"automaxbot/internal/intent"
	"automaxbot/internal/llm"
	"automaxbot/internal/memory"
	"automaxbot/internal/model"
	"automaxbot/internal/observability"
	"automaxbot/internal/translate"
)

type Agent struct {
	store      memory.Store
	states     *memory.StateStore
	classifier intent.Classifier
	completer  llm.Completer
	translator *translate.Translator
	book       *dealership.AppointmentBook
}

func New(store memory.Store, states *memory.StateStore, classifier intent.Classifier, completer llm.Completer, translator *translate.Translator, book *dealership.AppointmentBook) *Agent {
	return &Agent{
		store:      store,
		states:     states,
		classifier: classifier,
		completer:  completer,
		translator: translator,
		book:       book,
	}
}

// Process turns one inbound message into one reply. History is committed
// only after the final reply text is known, so a failed turn never leaves a
// half-written exchange behind.
func (a *Agent) Process(ctx context.Context, in model.InboundMessage) model.OutboundMessage {
	state := a.states.Get(in.UserID)

	if in.Kind == model.KindImage {
		return model.OutboundMessage{
			UserID: in.UserID,
			Text:   "He recibido tu imagen, pero por ahora solo puedo ayudarte por texto. 🙏",
		}
	}

	if state.Status == model.StatusNew {
		reply := a.translator.Render(ctx, dealership.WelcomeMessage(in.UserName), in.Text)
		a.states.Update(in.UserID, func(s *model.UserState) {
			s.Status = model.StatusWelcomed
			s.LastInteraction = time.Now().Format(time.RFC3339)
		})
		a.commit(ctx, in.UserID, in.Text, reply)
		observability.MessagesTotal.WithLabelValues("welcome").Inc()
		return model.OutboundMessage{UserID: in.UserID, Text: reply, Buttons: welcomeButtons}
	}

	if reply, handled := a.handleCommand(ctx, in); handled {
		return reply
	}

	history, err := a.store.History(ctx, in.UserID)
	if err != nil {
		log.Printf("[Agent] history load failed for %s: %v", in.UserID, err)
		history = nil
	}

	var (
		text     string
		imageRef string
		location *model.Location
		label    string
	)
	if isFinancingQuery(in.Text) {
		text = a.financing(in.Text)
		label = "financing"
	} else {
		it := a.classifier.Classify(ctx, history, in.Text)
		label = strings.ToLower(string(it))
		switch it {
		case intent.SearchInventory:
			text = catalog.Search(in.Text).Text
		case intent.VehicleDetails:
			res := catalog.Details(in.Text)
			text, imageRef = res.Text, res.ImageRef
		case intent.ScheduleAppointment:
			text = a.appointment(in)
		case intent.CompanyInfo:
			text = dealership.CompanyInfoBlock()
			location = &model.Location{
				Latitude:  dealership.Info.Latitude,
				Longitude: dealership.Info.Longitude,
				Name:      dealership.Info.Name,
				Address:   dealership.Info.Address,
			}
		default:
			text = a.freeform(ctx, history, in.Text)
		}
	}

	text = a.translator.Render(ctx, text, in.Text)

	a.states.Update(in.UserID, func(s *model.UserState) {
		s.Status = model.StatusActive
		s.LastInteraction = time.Now().Format(time.RFC3339)
	})
	a.commit(ctx, in.UserID, in.Text, text)
	observability.MessagesTotal.WithLabelValues(label).Inc()

	return model.OutboundMessage{UserID: in.UserID, Text: text, ImageRef: imageRef, Location: location}
}

// appointment books a slot when the message names one, otherwise invites
// the user to pick from today's open hours.
func (a *Agent) appointment(in model.InboundMessage) string {
	date, slot, ok := parseSlotRequest(in.Text, time.Now())
	if !ok {
		today := time.Now().Format("2006-01-02")
		return dealership.AppointmentBlock(a.book.AvailableSlots(today))
	}

	appt, err := a.book.Schedule(in.UserID, date, slot)
	if err != nil {
		return dealership.SlotTakenMessage(date, a.book.AvailableSlots(date))
	}
	a.states.Update(in.UserID, func(s *model.UserState) {
		s.Appointment["id"] = appt.ID
		s.Appointment["date"] = appt.Date
		s.Appointment["time"] = appt.Time
	})
	return dealership.AppointmentConfirmation(appt)
}

// financing answers with a per-vehicle installment simulation when the
// message names a vehicle, or the general product overview when it doesn't.
func (a *Agent) financing(text string) string {
	if id, ok := catalog.ReferencedVehicle(text); ok {
		if v, found := catalog.ByID(id); found {
			return dealership.FinancingSimulation(v.Brand+" "+v.Model, v.PriceEUR)
		}
	}
	return dealership.FinancingBlock()
}

// handleCommand intercepts the slash commands. Reset replies without
// committing, so the next message starts from a clean history.
func (a *Agent) handleCommand(ctx context.Context, in model.InboundMessage) (model.OutboundMessage, bool) {
	switch strings.ToLower(strings.TrimSpace(in.Text)) {
	case "/menu", "/inicio", "menu", "inicio", "/start":
		reply := "¿En qué puedo ayudarte? 😊\n\n" + dealership.MainMenu()
		a.commit(ctx, in.UserID, in.Text, reply)
		return model.OutboundMessage{UserID: in.UserID, Text: reply}, true
	case "/reset", "/reiniciar", "reiniciar":
		if err := a.store.Reset(ctx, in.UserID); err != nil {
			log.Printf("[Agent] history reset failed for %s: %v", in.UserID, err)
		}
		a.states.Reset(in.UserID)
		reply := "Listo, empezamos de cero. 🔄 ¿En qué puedo ayudarte?"
		return model.OutboundMessage{UserID: in.UserID, Text: reply}, true
	case "/help", "/ayuda", "ayuda":
		reply := dealership.HelpMessage()
		a.commit(ctx, in.UserID, in.Text, reply)
		return model.OutboundMessage{UserID: in.UserID, Text: reply}, true
	}
	return model.OutboundMessage{}, false
}

// freeform sends the message through the model with recent history. Failures
// degrade to canned replies in the user's language.
func (a *Agent) freeform(ctx context.Context, history []model.ChatMessage, userText string) string {
	msgs := make([]model.ChatMessage, 0, len(history)+2)
	msgs = append(msgs, model.ChatMessage{Role: model.RoleSystem, Content: systemPrompt})
	msgs = append(msgs, history...)
	msgs = append(msgs, model.ChatMessage{Role: model.RoleUser, Content: userText})

	out, err := a.completer.Complete(ctx, msgs, llm.Options{MaxTokens: 500, Temperature: 0.7})
	if err != nil {
		if llm.IsTimeout(err) {
			log.Printf("[Agent] completion timed out: %v", err)
			return timeoutReply(userText)
		}
		log.Printf("[Agent] completion failed: %v", err)
		return errorReply(userText)
	}
	return out
}

// commit appends the user message and the final reply as one exchange.
func (a *Agent) commit(ctx context.Context, userID, userText, reply string) {
	if err := a.store.Append(ctx, userID, model.ChatMessage{Role: model.RoleUser, Content: userText}); err != nil {
		log.Printf("[Agent] history append failed for %s: %v", userID, err)
		return
	}
	if err := a.store.Append(ctx, userID, model.ChatMessage{Role: model.RoleAssistant, Content: reply}); err != nil {
		log.Printf("[Agent] history append failed for %s: %v", userID, err)
	}
}

var financingKeywords = []string{"financi", "leasing", "préstamo", "prestamo", "cuota"}

func isFinancingQuery(text string) bool {
	q := strings.ToLower(text)
	for _, kw := range financingKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
