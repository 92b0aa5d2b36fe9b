package intent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"automaxbot/internal/llm"
	"automaxbot/internal/model"
)

const classifyPrompt = `Eres un clasificador de intenciones para un concesionario de coches.
Clasifica el último mensaje del usuario en exactamente una de estas etiquetas:

SEARCH_INVENTORY - busca coches o pregunta por el inventario disponible
VEHICLE_DETAILS - pide detalles, ficha o especificaciones de un vehículo concreto
SCHEDULE_APPOINTMENT - quiere agendar una cita o visita
COMPANY_INFO - pregunta por horarios, dirección o datos de contacto
GENERAL_CHAT - cualquier otra cosa

Responde únicamente con la etiqueta, sin explicación.`

// DelegatedClassifier asks the language model for a label. The last few
// turns of history are included so follow-ups like "y el rojo?" classify in
// context. Any error or unrecognized answer degrades to GeneralChat.
type DelegatedClassifier struct {
	completer llm.Completer
}

func NewDelegatedClassifier(completer llm.Completer) *DelegatedClassifier {
	return &DelegatedClassifier{completer: completer}
}

const historyTurns = 3

func (c *DelegatedClassifier) Classify(ctx context.Context, history []model.ChatMessage, message string) Intent {
	msgs := []model.ChatMessage{{Role: model.RoleSystem, Content: classifyPrompt}}
	if n := len(history); n > 0 {
		start := n - historyTurns*2
		if start < 0 {
			start = 0
		}
		var b strings.Builder
		b.WriteString("Conversación reciente:\n")
		for _, m := range history[start:] {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
		msgs = append(msgs, model.ChatMessage{Role: model.RoleSystem, Content: b.String()})
	}
	msgs = append(msgs, model.ChatMessage{Role: model.RoleUser, Content: message})

	out, err := c.completer.Complete(ctx, msgs, llm.Options{MaxTokens: 10, Temperature: 0})
	if err != nil {
		log.Printf("[Intent] classification failed, defaulting to general chat: %v", err)
		return GeneralChat
	}

	label := strings.ToUpper(strings.TrimSpace(out))
	label = strings.Trim(label, ".¡!\"'`")
	switch Intent(label) {
	case SearchInventory, VehicleDetails, ScheduleAppointment, CompanyInfo, GeneralChat:
		return Intent(label)
	}
	log.Printf("[Intent] unrecognized label %q, defaulting to general chat", label)
	return GeneralChat
}
