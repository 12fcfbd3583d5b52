package validation

import (
	"errors"
	"testing"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

type sample struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Optional string `json:"optional"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(sample{Title: "t", Message: "m"}, "bad"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStruct_ReportsMissingFieldsByJSONName(t *testing.T) {
	err := Struct(sample{Title: "t"}, "Title and message are required")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Title and message are required" {
		t.Errorf("message = %q", err.Error())
	}
	if !apperrors.IsValidationError(err) {
		t.Error("expected a validation error")
	}

	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		t.Fatal("expected *apperrors.CustomError")
	}
	fields, _ := customErr.Details["fields"].([]string)
	if len(fields) != 1 || fields[0] != "message" {
		t.Errorf("fields = %v, want [message]", fields)
	}
}
