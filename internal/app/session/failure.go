package session

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureMessage
	FailureFields
)

// Failure is the single shape the rest of the dashboard sees for a failed
// authentication attempt: nothing, one message, or messages keyed by field.
// The zero value is "no failure".
type Failure struct {
	kind    FailureKind
	message string
	fields  models.FieldErrors
}

func MessageFailure(message string) Failure {
	if strings.TrimSpace(message) == "" {
		return Failure{}
	}
	return Failure{kind: FailureMessage, message: message}
}

func FieldFailure(fields models.FieldErrors) Failure {
	if fields.Empty() {
		return Failure{}
	}
	return Failure{kind: FailureFields, fields: fields}
}

func (f Failure) Kind() FailureKind { return f.kind }

func (f Failure) Present() bool { return f.kind != FailureNone }

// Message returns the single message, or for field failures the general
// message falling back to the first field's first message.
func (f Failure) Message() string {
	switch f.kind {
	case FailureMessage:
		return f.message
	case FailureFields:
		if msg := f.fields.First(models.GeneralField); msg != "" {
			return msg
		}
		for _, name := range f.fields.Fields() {
			return f.fields.First(name)
		}
	}
	return ""
}

// Fields returns a copy of the field messages. A message failure is
// reported under the general key.
func (f Failure) Fields() models.FieldErrors {
	out := models.FieldErrors{}
	switch f.kind {
	case FailureMessage:
		out.Add(models.GeneralField, f.message)
	case FailureFields:
		for k, v := range f.fields {
			out[k] = append([]string(nil), v...)
		}
	}
	return out
}

var messageKeys = []string{"message", "detail", "error"}

// normalizePayload resolves whatever the remote authority sent as an error
// body into a Failure. Known shapes:
//
//	{"errors": {"field": ["msg"]}}   {"errors": {"field": "msg"}}
//	{"errors": "msg"}                {"errors": ["msg", ...]}
//	{"message"|"detail"|"error": "msg"}
//	{"field": ["msg"], ...}          (bare serializer errors)
//	"msg"                            ["msg", ...]
func normalizePayload(raw []byte) Failure {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Failure{}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return MessageFailure(messageOf(raw))
	}

	if errs, ok := obj["errors"]; ok {
		if f := normalizeErrors(errs); f.Present() {
			return f
		}
	}
	for _, key := range messageKeys {
		if v, ok := obj[key]; ok {
			if msg := messageOf(v); msg != "" {
				return MessageFailure(msg)
			}
		}
	}
	if _, enveloped := obj["success"]; !enveloped {
		return FieldFailure(fieldsOf(obj))
	}
	return Failure{}
}

func normalizeErrors(raw json.RawMessage) Failure {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		return FieldFailure(fieldsOf(obj))
	}
	return MessageFailure(messageOf(raw))
}

func fieldsOf(obj map[string]json.RawMessage) models.FieldErrors {
	fields := models.FieldErrors{}
	for name, v := range obj {
		if name == "non_field_errors" {
			name = models.GeneralField
		}
		for _, msg := range messagesOf(v) {
			fields.Add(name, msg)
		}
	}
	return fields
}

// messagesOf accepts a string or an array of strings.
func messagesOf(raw json.RawMessage) []string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return []string{s}
		}
		return nil
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func messageOf(raw []byte) string {
	return strings.Join(messagesOf(raw), " ")
}

// FailureFromError resolves the body of a remote rejection, as carried by
// *api.Error, into a Failure. Other errors yield no failure.
func FailureFromError(err error) Failure {
	return faultFailure(err)
}
