package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCreation(t *testing.T) {
	err := New("test", "test message", nil, http.StatusBadRequest)
	if err.Type != "test" || err.Message != "test message" || err.Code != http.StatusBadRequest {
		t.Errorf("New() created incorrect error: %v", err)
	}

	cause := fmt.Errorf("original error")
	err = New("test", "test with cause", cause, http.StatusInternalServerError)
	if err.Cause != cause {
		t.Errorf("New() did not set cause correctly: %v", err)
	}

	expected := "test: test with cause: original error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrorWrapping(t *testing.T) {
	original := fmt.Errorf("original error")
	wrapped := Wrap(original, "wrapped", "wrapped message", http.StatusBadRequest)

	if wrapped.Type != "wrapped" || wrapped.Message != "wrapped message" {
		t.Errorf("Wrap() created incorrect error: %v", wrapped)
	}

	if wrapped.Cause != original {
		t.Errorf("Wrap() did not set cause correctly")
	}

	// wrapping an AppError keeps type and code
	appErr := New("app", "app error", nil, http.StatusNotFound)
	rewrapped := Wrap(appErr, "ignored", "new message", http.StatusBadRequest)

	if rewrapped.Type != "app" {
		t.Errorf("Wrap() did not preserve original AppError type: got %s, want %s",
			rewrapped.Type, appErr.Type)
	}

	if rewrapped.Message != "new message" {
		t.Errorf("Wrap() did not update message: got %s, want %s",
			rewrapped.Message, "new message")
	}

	if rewrapped.Code != appErr.Code {
		t.Errorf("Wrap() did not preserve original status code: got %d, want %d",
			rewrapped.Code, appErr.Code)
	}
}

func TestErrorTypeChecking(t *testing.T) {
	configErr := Config("config error", nil)
	notFoundErr := NotFound("thing", nil)

	if !Is(configErr, ErrTypeConfig) {
		t.Errorf("Is() failed to identify config error")
	}

	if Is(configErr, ErrTypeNotFound) {
		t.Errorf("Is() incorrectly identified config error as not-found error")
	}

	if !Is(notFoundErr, ErrTypeNotFound) {
		t.Errorf("Is() failed to identify not-found error")
	}

	if GetType(fmt.Errorf("plain")) != "unknown" {
		t.Errorf("GetType() should report unknown for foreign errors")
	}
}

func TestDomainErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{
			name:     "group not found",
			err:      GroupNotFound("ops"),
			wantCode: http.StatusNotFound,
			wantType: ErrTypeNotFound,
		},
		{
			name:     "ipc dir not found",
			err:      IPCDirNotFound("/data/ipc/main/messages"),
			wantCode: http.StatusServiceUnavailable,
			wantType: ErrTypeUnavailable,
		},
		{
			name:     "invalid send request",
			err:      InvalidSendRequest(fmt.Errorf("missing field")),
			wantCode: http.StatusUnprocessableEntity,
			wantType: ErrTypeValidation,
		},
		{
			name:     "groups config invalid",
			err:      GroupsConfigInvalid("/config/groups.json", fmt.Errorf("bad json")),
			wantCode: http.StatusInternalServerError,
			wantType: ErrTypeConfig,
		},
		{
			name:     "ipc write failed",
			err:      IPCWriteFailed("/data/ipc/main/messages/webhook-1.json", fmt.Errorf("disk full")),
			wantCode: http.StatusInternalServerError,
			wantType: ErrTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %d, want %d", got, tt.wantCode)
			}
			if got := GetType(tt.err); got != tt.wantType {
				t.Errorf("GetType() = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestGroupNotFoundNamesGroup(t *testing.T) {
	err := GroupNotFound("nonexistent")
	if got := err.Message; got != "group 'nonexistent' not found in groups config" {
		t.Errorf("GroupNotFound() message = %q", got)
	}
}
