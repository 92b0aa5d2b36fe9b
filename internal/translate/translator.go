package translate

import (
	"context"
	"fmt"
	"log"

	"automaxbot/internal/llm"
	"automaxbot/internal/model"
	"automaxbot/internal/observability"
)

// Translator rewrites canned Spanish replies into the user's language when
// they wrote in something else. Any failure leaves the reply untouched.
type Translator struct {
	completer llm.Completer
	enabled   bool
}

func New(completer llm.Completer, enabled bool) *Translator {
	return &Translator{completer: completer, enabled: enabled}
}

// Render returns reply translated to the language of userText, or reply
// unchanged when translation is disabled, unnecessary, or fails.
func (t *Translator) Render(ctx context.Context, reply, userText string) string {
	if !t.enabled {
		return reply
	}
	target := Detect(userText)
	if target == Unknown || target == Spanish {
		return reply
	}
	if Detect(reply) == target {
		return reply
	}

	prompt := fmt.Sprintf(`Translate the following message to %s.
Keep emojis, prices, phone numbers, addresses and brand names exactly as they are.
Respond with a single JSON object: {"translation": "..."}

Message:
%s`, target, reply)

	out, err := t.completer.Complete(ctx, []model.ChatMessage{
		{Role: model.RoleUser, Content: prompt},
	}, llm.Options{MaxTokens: 800, Temperature: 0.2})
	if err != nil {
		log.Printf("[Translate] translation failed, keeping original: %v", err)
		observability.TranslationFailures.Inc()
		return reply
	}

	translated, ok := extractTranslation(out)
	if !ok {
		log.Printf("[Translate] could not parse translation output, keeping original")
		observability.TranslationFailures.Inc()
		return reply
	}
	return translated
}
