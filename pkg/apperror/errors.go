package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes. The verification engine branches on these, and the
// request router maps them to user-facing replies.
const (
	CodeDuplicateAddress  = "WAL_001"
	CodeWalletNotFound    = "WAL_002"
	CodeVerifyConflict    = "WAL_003"
	CodeLedgerUnavailable = "LED_001"
	CodeInviteFailure     = "INV_001"
	CodeInvalidToken      = "SEC_001"
	CodeMalformedUpdate   = "REQ_001"
	CodeInternal          = "SYS_001"
)

// AppError is a structured error carrying a stable code.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to users)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Code extracts the stable code from err, or "" when err is not an AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return Code(err) == code
}

// ---- Wallet ledger (WAL) ----

// ErrDuplicateAddress signals a persistence uniqueness violation. Should be
// statistically unreachable with real keypair entropy, but is handled, not
// assumed impossible.
func ErrDuplicateAddress(err error) *AppError {
	return Wrap(CodeDuplicateAddress, "Address already provisioned", http.StatusConflict, err)
}

func ErrWalletNotFound() *AppError {
	return New(CodeWalletNotFound, "Wallet not found", http.StatusNotFound)
}

// ErrVerifyConflict signals that a concurrent check already verified the
// record. Resolved by re-reading state, never retried blindly.
func ErrVerifyConflict() *AppError {
	return New(CodeVerifyConflict, "Wallet already verified by a concurrent check", http.StatusConflict)
}

// ---- External ledger (LED) ----

func ErrLedgerUnavailable(err error) *AppError {
	return Wrap(CodeLedgerUnavailable, "Ledger query failed", http.StatusServiceUnavailable, err)
}

// ---- Invite issuance (INV) ----

func ErrInviteFailure(err error) *AppError {
	return Wrap(CodeInviteFailure, "Invite link creation failed", http.StatusBadGateway, err)
}

// ---- Operator authorization (SEC) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired operator token", http.StatusUnauthorized)
}

// ---- Ingress (REQ) ----

// ErrMalformedUpdate signals an update payload that could not be decoded.
func ErrMalformedUpdate(err error) *AppError {
	return Wrap(CodeMalformedUpdate, "Malformed update payload", http.StatusBadRequest, err)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
