package agent

import "automaxbot/internal/translate"

// Canned replies for when the model is unreachable. The coarse language
// guess on the user's own text decides which version to send; the normal
// translation pass is skipped because it needs the same model that just
// failed.
const (
	timeoutReplyES = "Lo siento, la respuesta está tardando demasiado. ¿Puedes ser un poco más específico con tu pregunta? ⏳"
	timeoutReplyEN = "Sorry, this is taking too long. Could you be a bit more specific? ⏳"

	errorReplyES = "¡Hola! Soy el asistente de AutoMax. Ahora mismo tengo problemas técnicos, pero puedo ayudarte a buscar coches, ver fichas o agendar una cita. 🚗"
	errorReplyEN = "Hi! I'm the AutoMax assistant. I'm having technical trouble right now, but I can help you search cars, see vehicle details or schedule an appointment. 🚗"
)

func timeoutReply(userText string) string {
	if translate.Detect(userText) == translate.English {
		return timeoutReplyEN
	}
	return timeoutReplyES
}

func errorReply(userText string) string {
	if translate.Detect(userText) == translate.English {
		return errorReplyEN
	}
	return errorReplyES
}
