package telegram

import (
	"errors"

	"fridge-inventory/internal/voice"
)

// userMessage returns the reply shown to the chat when processing fails.
// Internal error text is never sent.
func userMessage(err error) string {
	switch {
	case errors.Is(err, voice.ErrInterpreterRateLimited):
		return "⏳ Asystent jest teraz zajęty. Spróbuj ponownie za chwilę."
	case errors.Is(err, voice.ErrInterpreterUnavailable):
		return "⚠️ Asystent jest chwilowo niedostępny. Spróbuj ponownie później."
	case errors.Is(err, voice.ErrNoTranscriber):
		return "🎤 Wiadomości głosowe nie są obsługiwane. Napisz polecenie tekstem."
	case errors.Is(err, voice.ErrEmptyTranscript), errors.Is(err, voice.ErrEmptyAudio):
		return "🎤 Nie udało się nic rozpoznać w nagraniu."
	case errors.Is(err, voice.ErrEmptyQuery):
		return "Podaj, czego szukać, np. `/szukaj mleko`."
	default:
		return "❌ Coś poszło nie tak. Spróbuj ponownie."
	}
}
