package usecase

import "strings"

const (
	LocalePL = "pl"
	LocaleEN = "en"
)

// catalog holds every user-facing string of the pipeline for one locale.
type catalog struct {
	added   string // quantity, item, shelf, container
	removed string // quantity, item, shelf, container
	updated string // item, shelf, container, quantity

	separator        string
	unknownShelf     string
	unknownContainer string
	genericSuccess   string
	genericFailure   string

	fallbackMessage  string
	fallbackQuestion string

	queryNothing      string // term
	querySingle       string // quantity, item, shelf, container
	queryManyPlaces   string // quantity, item, places
	queryManyDistinct string // count
}

var catalogs = map[string]catalog{
	LocalePL: {
		added:             "Dodano %d %s na półkę %s w %s",
		removed:           "Usunięto %d %s z półki %s w %s",
		updated:           "Zmieniono %s na półce %s w %s na %d",
		separator:         ". ",
		unknownShelf:      "nieznana półka",
		unknownContainer:  "nieznane urządzenie",
		genericSuccess:    "Gotowe",
		genericFailure:    "Nie udało się wykonać polecenia",
		fallbackMessage:   "Nie zrozumiałem polecenia",
		fallbackQuestion:  "Czy możesz powtórzyć, co dokładnie mam zrobić?",
		queryNothing:      "Nic nie znaleziono dla: %s",
		querySingle:       "Masz %d %s na półce %s w %s",
		queryManyPlaces:   "Masz %d %s w %d miejscach",
		queryManyDistinct: "Znaleziono %d różnych produktów",
	},
	LocaleEN: {
		added:             "Added %d %s to %s in %s",
		removed:           "Removed %d %s from %s in %s",
		updated:           "Updated %s on %s in %s to %d",
		separator:         ". ",
		unknownShelf:      "unknown shelf",
		unknownContainer:  "unknown container",
		genericSuccess:    "Done",
		genericFailure:    "Could not complete the command",
		fallbackMessage:   "I could not understand the command",
		fallbackQuestion:  "Could you repeat what exactly you want me to do?",
		queryNothing:      "Nothing found for: %s",
		querySingle:       "You have %d %s on %s in %s",
		queryManyPlaces:   "You have %d %s in %d places",
		queryManyDistinct: "Found %d different items",
	},
}

func catalogFor(locale string) catalog {
	if c, ok := catalogs[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return c
	}
	return catalogs[LocalePL]
}
