// Package common defines the shared error taxonomy and HTTP status
// constants used across the application.
package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	// Client Error Codes (4xx)
	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusConflict         = 409
	StatusTooManyRequests  = 429

	// Server Error Codes (5xx)
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Response Messages
const (
	MsgSuccess = "Operation successful"

	MsgBadRequest      = "Invalid request"
	MsgUnauthorized    = "Authentication required"
	MsgForbidden       = "Access denied"
	MsgNotFound        = "Resource not found"
	MsgInternalError   = "Internal server error"
	MsgValidationError = "Invalid data"
	MsgDatabaseError   = "Database interaction error"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid token"
	MsgTokenExpired = "Token has expired"
)

// ErrorCode describes a coded error class.
type ErrorCode struct {
	Code        string // Error code (e.g. AUTH_001)
	Category    string // Error category (e.g. Authentication)
	SubCategory string // Sub-category (e.g. Token)
	Description string // Human description
}

// Error classes, grouped by category prefix.
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Token related error",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Credential related error",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Role related error",
	}

	ErrCodeWebhookSecret = ErrorCode{
		Code:        "AUTH_004",
		Category:    "Authentication",
		SubCategory: "Webhook",
		Description: "Webhook shared secret mismatch",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid data format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "General database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query error",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Business operation error",
	}

	// External Source Errors (EXT_xxx)
	ErrCodeExternalAPI = ErrorCode{
		Code:        "EXT_001",
		Category:    "External",
		SubCategory: "API",
		Description: "External tracking API error",
	}
)

// Error is the detailed error structure carried through the application.
type Error struct {
	Code       ErrorCode // Error class
	Message    string    // Error message
	StatusCode int       // HTTP status code
	Details    any       // Additional detail
}

// Error returns the message.
func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is comparison on code + message.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError creates an error with full detail.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common sentinel errors.
var (
	// Authentication
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Invalid credentials", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Session has expired", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Invalid token", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Missing authentication token", StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, "Access denied for this role", StatusForbidden, nil)
	ErrWebhookSecret      = NewError(ErrCodeWebhookSecret, "Invalid webhook secret", StatusUnauthorized, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Invalid input data", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Database
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Data not found", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Data already exists", StatusConflict, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
)

// NewExternalAPIError wraps a failure talking to the external tracking
// source so callers can map it to a bad-gateway class response.
func NewExternalAPIError(message string, details any) error {
	return NewError(ErrCodeExternalAPI, message, StatusBadGateway, details)
}

// ConvertMongoError folds MongoDB driver errors into the taxonomy.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound passes through untouched
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err)
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return NewError(ErrCodeDatabase, MsgDatabaseError, StatusUnauthorized, err)
		default:
			return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, err)
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, "Network error talking to MongoDB", StatusServiceUnavailable, err)
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "MongoDB operation timed out", StatusServiceUnavailable, err)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
