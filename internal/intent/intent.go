// Package intent classifies an incoming user message into one of the
// assistant's conversational intents. Two strategies are available: a
// deterministic keyword matcher and a model-delegated classifier.
package intent

import (
	"context"

	"automaxbot/internal/model"
)

// Intent labels what the user is trying to do.
type Intent string

const (
	SearchInventory     Intent = "SEARCH_INVENTORY"
	VehicleDetails      Intent = "VEHICLE_DETAILS"
	ScheduleAppointment Intent = "SCHEDULE_APPOINTMENT"
	CompanyInfo         Intent = "COMPANY_INFO"
	GeneralChat         Intent = "GENERAL_CHAT"
)

// Classifier decides the intent of a message, optionally using recent
// conversation history for context. Implementations never fail: anything
// unclassifiable is GeneralChat.
type Classifier interface {
	Classify(ctx context.Context, history []model.ChatMessage, message string) Intent
}
