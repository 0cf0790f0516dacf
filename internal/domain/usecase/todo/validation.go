package todo

import (
	"strings"
	"unicode/utf8"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const (
	MaxTextLength = 255
	MaxBatchSize  = 100
)

// ValidateText trims text and checks it is neither empty nor longer than
// MaxTextLength characters. The trimmed text is what gets stored.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", model.NewValidationError(msg.GetMessage("todo.error.empty-text"))
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return "", model.NewValidationError(msg.GetMessage("todo.error.too-long", MaxTextLength))
	}
	return trimmed, nil
}

// validateOptionalText treats an absent text as empty
func validateOptionalText(text *string) (string, error) {
	if text == nil {
		return ValidateText("")
	}
	return ValidateText(*text)
}
