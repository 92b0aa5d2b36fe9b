// Package translate keeps assistant replies in the user's language. Detection
// is a cheap indicator-word heuristic; the actual translation is delegated to
// the language model and parsed tolerantly.
package translate

import "strings"

// Language is a detected user language.
type Language string

const (
	Spanish Language = "español"
	English Language = "english"
	Unknown Language = "unknown"
)

var spanishIndicators = []string{
	"hola", "gracias", "quiero", "busco", "coche", "precio", "cuánto", "cuanto",
	"qué", "que", "dónde", "donde", "más", "información", "informacion",
	"buenos", "buenas", "por favor", "tienen", "cita",
}

var englishIndicators = []string{
	"hello", "hi ", "thanks", "thank you", "i want", "looking for", "car",
	"price", "how much", "where", "what", "more", "information", "please",
	"do you have", "appointment", "the ",
}

// Detect guesses the language of a text by counting indicator words. Ties
// and texts with no indicators are Unknown.
func Detect(text string) Language {
	q := " " + strings.ToLower(text) + " "
	var es, en int
	for _, w := range spanishIndicators {
		if strings.Contains(q, w) {
			es++
		}
	}
	for _, w := range englishIndicators {
		if strings.Contains(q, w) {
			en++
		}
	}
	switch {
	case es > en:
		return Spanish
	case en > es:
		return English
	default:
		return Unknown
	}
}
