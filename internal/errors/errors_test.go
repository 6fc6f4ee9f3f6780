package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTinkError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *TinkError
		wantStr string
	}{
		{
			name: "simple error",
			err: &TinkError{
				Code:    "TEST_001",
				Message: "test error",
			},
			wantStr: "[TEST_001] test error",
		},
		{
			name: "error with cause",
			err: &TinkError{
				Code:    "TEST_002",
				Message: "wrapped error",
				Cause:   errors.New("underlying"),
			},
			wantStr: "[TEST_002] wrapped error: underlying",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestTinkError_WithDetail(t *testing.T) {
	err := New("TEST_001", "test").
		WithDetail("key1", "value1").
		WithDetail("key2", 42)

	if err.Details["key1"] != "value1" {
		t.Errorf("Details[key1] = %v, want value1", err.Details["key1"])
	}
	if err.Details["key2"] != 42 {
		t.Errorf("Details[key2] = %v, want 42", err.Details["key2"])
	}
}

func TestTinkError_MarshalJSON(t *testing.T) {
	err := EntryDuplicate("label", "Debug app").WithCause(errors.New("underlying"))

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("Marshal failed: %v", jsonErr)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}

	if result["code"] != CodeEntryDuplicate {
		t.Errorf("code = %v, want %s", result["code"], CodeEntryDuplicate)
	}
	if result["cause"] != "underlying" {
		t.Errorf("cause = %v, want underlying", result["cause"])
	}
	details, ok := result["details"].(map[string]any)
	if !ok {
		t.Fatalf("details not a map")
	}
	if details["key"] != "Debug app" {
		t.Errorf("details.key = %v, want Debug app", details["key"])
	}
}

func TestEntryDuplicateMessage(t *testing.T) {
	err := EntryDuplicate("label", "Debug myprog")
	if !strings.Contains(err.Error(), "profile with label 'Debug myprog' already exists") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestHasCode(t *testing.T) {
	err := New("TEST_001", "test")
	if !HasCode(err, "TEST_001") {
		t.Error("HasCode(err, TEST_001) = false, want true")
	}
	if HasCode(err, "TEST_002") {
		t.Error("HasCode(err, TEST_002) = true, want false")
	}
	if HasCode(errors.New("plain"), "TEST_001") {
		t.Error("HasCode(regular error) = true, want false")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, "TEST_001") {
		t.Error("HasCode should find code in wrapped error")
	}
}

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NoProgram())
	if got := Code(wrapped); got != CodeInputNoProgram {
		t.Errorf("Code(wrapped) = %s, want %s", got, CodeInputNoProgram)
	}
	if got := Code(errors.New("regular")); got != "" {
		t.Errorf("Code(regular) = %s, want empty", got)
	}
}

func TestFactoryFunctions(t *testing.T) {
	tests := []struct {
		name     string
		err      *TinkError
		wantCode string
	}{
		{"NoProgram", NoProgram(), CodeInputNoProgram},
		{"InvalidTarget", InvalidTarget("emacs", []string{"zed", "vscode"}), CodeInputInvalidTarget},
		{"EntryDuplicate", EntryDuplicate("name", "x"), CodeEntryDuplicate},
		{"EntryNotFound", EntryNotFound("name", "x"), CodeEntryNotFound},
		{"ConfigMissingField", ConfigMissingField("field"), CodeConfigMissingField},
		{"ConfigInvalidValue", ConfigInvalidValue("field", "val", "reason"), CodeConfigInvalidValue},
		{"ConfigExists", ConfigExists("/p/.tink/config.toml"), CodeConfigExists},
		{"ParseError", ParseError("/path", errors.New("err")), CodeParseError},
		{"IOReadError", IOReadError("/path", errors.New("err")), CodeIOReadError},
		{"IOWriteError", IOWriteError("/path", errors.New("err")), CodeIOWriteError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("%s Code = %s, want %s", tt.name, tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() == "" {
				t.Errorf("%s Error() is empty", tt.name)
			}
		})
	}
}

func TestErrorsUnwrapChain(t *testing.T) {
	root := errors.New("root cause")
	wrapped := IOWriteError("/tmp/x", root)

	if !errors.Is(wrapped, root) {
		t.Error("errors.Is should find root cause")
	}
}
