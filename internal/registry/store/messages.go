package store

import (
	"errors"

	"github.com/dserbyn/regconsole/internal/registry/api"
)

// User-facing failure strings. The mixed Ukrainian/English set is
// the wording the production console shipped with, kept verbatim as
// data; the selection logic below is the single normalization policy.
const (
	msgGeneric      = "Щось пішло не так. Спробуйте перезавантажити застосунок"
	msgForbidden    = "У вас недостатньо прав для цієї дії"
	msgUnauthorized = "Сесія завершилась. Увійдіть знову"
)

var fallbackMessages = map[string]string{
	"people/list":      "Не вдалося завантажити список осіб",
	"people/get":       "Не вдалося завантажити дані особи",
	"people/search":    "Пошук не дав результатів через помилку сервера",
	"people/count":     "Не вдалося отримати кількість записів",
	"people/ids":       "Не вдалося завантажити перелік ідентифікаторів",
	"people/create":    "Failed to create person",
	"people/update":    "Failed to update person",
	"people/delete":    "Failed to delete person",
	"cars/list":        "Не вдалося завантажити транспортні засоби",
	"cars/count":       "Не вдалося отримати кількість транспортних засобів",
	"cars/create":      "Failed to create car",
	"cars/update":      "Failed to update car",
	"cars/delete":      "Failed to delete car",
	"addresses/list":   "Не вдалося завантажити адреси",
	"addresses/create": "Failed to create address",
	"addresses/update": "Failed to update address",
	"addresses/delete": "Failed to delete address",
	"residents/list":   "Не вдалося завантажити історію проживання",
	"crimes/list":      "Не вдалося завантажити судимості",
	"crimes/create":    "Failed to create criminal record",
	"crimes/update":    "Failed to update criminal record",
	"crimes/delete":    "Failed to delete criminal record",
	"prisons/list":     "Не вдалося завантажити довідник установ",
	"phones/list":      "Не вдалося завантажити номери телефонів",
	"phones/create":    "Failed to create phone",
	"phones/update":    "Failed to update phone",
	"phones/delete":    "Failed to delete phone",
	"photos/list":      "Не вдалося завантажити фотографії",
	"photos/create":    "Failed to upload photo",
	"photos/delete":    "Failed to delete photo",
	"history/list":     "Не вдалося завантажити історію пошуку",
	"history/record":   "Failed to record search",
	"auth/login":       "Invalid email or password",
	"auth/register":    "Failed to register staff member",
}

// errorMessage is the single error-to-message normalization point.
// Conflicts keep their field-scoped server text, authorization
// failures map to role-specific wording, transport failures fall back
// to the per-operation default, and anything else surfaces the error
// text directly.
func errorMessage(op string, err error) string {
	var ce *api.ConflictError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	if errors.Is(err, api.ErrForbidden) {
		return msgForbidden
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return msgUnauthorized
	}
	if errors.Is(err, api.ErrUnavailable) {
		return fallback(op)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback(op)
}

func fallback(op string) string {
	if msg, ok := fallbackMessages[op]; ok {
		return msg
	}
	return msgGeneric
}
