package errors

import (
	"fmt"
	"net/http"
)

// GroupNotFound reports a group name absent from the loaded groups config.
func GroupNotFound(group string) *AppError {
	return New(ErrTypeNotFound, fmt.Sprintf("group '%s' not found in groups config", group), nil, http.StatusNotFound).WithStack()
}

// GroupsConfigInvalid reports a groups config file that exists but cannot be
// parsed as a flat string-to-string JSON object.
func GroupsConfigInvalid(path string, cause error) *AppError {
	return New(ErrTypeConfig, fmt.Sprintf("invalid groups config: %s", path), cause, http.StatusInternalServerError).WithStack()
}

// IPCDirNotFound reports a missing IPC messages directory. The consuming bot
// creates it on startup, so its absence means the bot is not running.
func IPCDirNotFound(dir string) *AppError {
	return New(ErrTypeUnavailable, fmt.Sprintf("ipc messages directory does not exist: %s", dir), nil, http.StatusServiceUnavailable).WithStack()
}

// IPCWriteFailed reports a filesystem failure while writing a message file.
func IPCWriteFailed(path string, cause error) *AppError {
	return New(ErrTypeInternal, fmt.Sprintf("failed to write ipc file: %s", path), cause, http.StatusInternalServerError).WithStack()
}

// InvalidSendRequest reports a /send body that failed binding, typically a
// missing or ill-typed message field.
func InvalidSendRequest(cause error) *AppError {
	return New(ErrTypeValidation, "invalid send request", cause, http.StatusUnprocessableEntity).WithStack()
}
