package faq

import (
	"sort"
	"strings"

	"portfolio-backend/internal/validation"
)

const (
	questionRules = "notblank,max=500"
	answerRules   = "notblank,max=2000"
	categoryRules = "oneof=General Technical Services Portfolio Contact Pricing"
)

var fieldValidator = validation.New()

// ValidationError lists every rejected field with a readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a complete entry. It does not trim; callers normalize first.
func Validate(e Entry) error {
	fields := make(map[string]string)
	check(fields, "question", e.Question, questionRules)
	check(fields, "answer", e.Answer, answerRules)
	check(fields, "category", e.Category, categoryRules)
	return asError(fields)
}

// ValidatePatch applies the Validate rules to the fields present in p only.
// Stored values already satisfied them, so this is equivalent to validating
// the merged document.
func ValidatePatch(p Patch) error {
	fields := make(map[string]string)
	if p.Question.Set {
		check(fields, "question", p.Question.Value, questionRules)
	}
	if p.Answer.Set {
		check(fields, "answer", p.Answer.Value, answerRules)
	}
	if p.Category.Set {
		check(fields, "category", p.Category.Value, categoryRules)
	}
	return asError(fields)
}

func check(fields map[string]string, name string, value interface{}, rules string) {
	err := fieldValidator.Var(value, rules)
	if err == nil {
		return
	}
	for _, fe := range fieldValidator.ValidationErrors(err) {
		fields[name] = validation.Message(name, fe.Tag(), fe.Param())
		return
	}
	fields[name] = name + " is invalid"
}

func asError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
