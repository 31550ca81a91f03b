package models

import "sort"

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

// GeneralField carries errors that do not belong to a single input.
const GeneralField = "general"

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// First returns the first message recorded for field, or "".
func (f FieldErrors) First(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (f FieldErrors) Empty() bool {
	for _, msgs := range f {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Fields returns the field names in a stable order.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name, msgs := range f {
		if len(msgs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
