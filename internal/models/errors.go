package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError describes the first rule an entity failed.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Entity, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// EntityIssue locates a validation failure inside an import document.
type EntityIssue struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// ImportError aggregates every issue found in an import document.
type ImportError struct {
	Issues []EntityIssue
}

func (e *ImportError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Index < 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", is.Category, is.Message))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s[%d].%s: %s", is.Category, is.Index, is.Field, is.Message))
	}
	return "invalid import document: " + strings.Join(parts, "; ")
}

func (e *ImportError) Unwrap() error {
	return ErrValidation
}

func (e *ImportError) add(category string, index int, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		e.Issues = append(e.Issues, EntityIssue{Category: category, Index: index, Field: ve.Field, Message: ve.Message})
		return
	}
	e.Issues = append(e.Issues, EntityIssue{Category: category, Index: index, Message: err.Error()})
}
