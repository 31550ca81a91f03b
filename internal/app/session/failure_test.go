package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

func TestNormalizePayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		kind    FailureKind
		message string
		fields  models.FieldErrors
	}{
		{name: "empty", body: "", kind: FailureNone},
		{name: "errors map of lists", body: `{"success":false,"errors":{"email":["taken","invalid"]}}`,
			kind: FailureFields, message: "taken", fields: models.FieldErrors{"email": {"taken", "invalid"}}},
		{name: "errors map of strings", body: `{"errors":{"username":"required"}}`,
			kind: FailureFields, message: "required", fields: models.FieldErrors{"username": {"required"}}},
		{name: "errors string", body: `{"errors":"Something broke"}`, kind: FailureMessage, message: "Something broke"},
		{name: "errors array", body: `{"errors":["one","two"]}`, kind: FailureMessage, message: "one two"},
		{name: "message", body: `{"success":false,"message":"Invalid credentials"}`, kind: FailureMessage, message: "Invalid credentials"},
		{name: "detail", body: `{"detail":"Not found."}`, kind: FailureMessage, message: "Not found."},
		{name: "bare serializer", body: `{"non_field_errors":["Passwords do not match"],"email":["bad"]}`,
			kind: FailureFields, message: "Passwords do not match",
			fields: models.FieldErrors{"general": {"Passwords do not match"}, "email": {"bad"}}},
		{name: "top-level string", body: `"nope"`, kind: FailureMessage, message: "nope"},
		{name: "html", body: `<html>502</html>`, kind: FailureNone},
		{name: "envelope without detail", body: `{"success":false}`, kind: FailureNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := normalizePayload([]byte(tt.body))
			assert.Equal(t, tt.kind, f.Kind())
			assert.Equal(t, tt.message, f.Message())
			if tt.fields != nil {
				assert.Equal(t, tt.fields, f.Fields())
			}
		})
	}
}

func TestFailureConstructors(t *testing.T) {
	assert.False(t, MessageFailure("  ").Present())
	assert.False(t, FieldFailure(models.FieldErrors{}).Present())

	f := MessageFailure("bad")
	assert.Equal(t, models.FieldErrors{"general": {"bad"}}, f.Fields())

	fields := models.FieldErrors{"email": {"taken"}}
	ff := FieldFailure(fields)
	ff.Fields().Add("email", "mutated")
	assert.Equal(t, []string{"taken"}, ff.Fields()["email"])
}
