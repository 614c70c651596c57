// Package response содержит типы JSON‑ответов HTTP‑обработчиков.
//
// Формат тел ответов входит в контракт сервиса: клиенты различают
// ответы с ключом "message" (исходы аутентификации и авторизации)
// и с ключом "error" (ошибки валидации и отказ внешних систем).
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// MessageResponse — тело ответа с ключом "message".
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse — тело ответа с ключом "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// Message возвращает MessageResponse с переданным текстом.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// Error возвращает ErrorResponse с переданным текстом.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст,
// тексты объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
