package models

import (
	"maps"
	"slices"
	"time"

	"github.com/gookit/validate"
)

type requiredField struct {
	name  string
	value string
}

// requireStrings reports the first empty field in declaration order.
func requireStrings(entity string, fields ...requiredField) error {
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Entity: entity, Field: f.name, Message: "is required"}
		}
	}
	return nil
}

// checkRules runs the struct tag rules (ranges, enums, URLs) through gookit/validate.
// With several failures the alphabetically first field and rule are reported.
func checkRules(entity string, v any) error {
	vd := validate.Struct(v)
	if vd.Validate() {
		return nil
	}
	for _, field := range slices.Sorted(maps.Keys(vd.Errors)) {
		msgs := vd.Errors[field]
		for _, rule := range slices.Sorted(maps.Keys(msgs)) {
			return &ValidationError{Entity: entity, Field: field, Message: msgs[rule]}
		}
	}
	return &ValidationError{Entity: entity, Field: "", Message: vd.Errors.One()}
}

func requireTimestamps(entity string, createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return &ValidationError{Entity: entity, Field: "createdAt", Message: "is required"}
	}
	if updatedAt.IsZero() {
		return &ValidationError{Entity: entity, Field: "updatedAt", Message: "is required"}
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
