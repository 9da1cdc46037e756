// Package error defines domain-specific errors for the Expense Chat application.
package error

import "errors"

// Message domain errors.
var (
	// ErrMessageNotFound is returned when a message is not found in the system.
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidMessageID is returned when a message identifier is malformed.
	ErrInvalidMessageID = errors.New("invalid message identifier")

	// ErrMissingInputText is returned when message creation lacks input text.
	ErrMissingInputText = errors.New("inputText is required")

	// ErrNotAuthorizedToModifyMessage is returned when user is not authorized to modify a message.
	ErrNotAuthorizedToModifyMessage = errors.New("not authorized to modify message")

	// ErrMessageNotParsed is returned when a parsed-field update targets a message without parsed data.
	ErrMessageNotParsed = errors.New("message has no parsed data")

	// ErrInvalidMessageTransactionType is returned when an update carries an unknown transaction type.
	ErrInvalidMessageTransactionType = errors.New("invalid transaction type")

	// ErrNegativeAmount is returned when an update carries a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// MessageErrorCode defines error codes for message errors.
// Format: MSG-XXYYYY where XX is category and YYYY is specific error.
type MessageErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingInputText   MessageErrorCode = "MSG-010001"
	ErrCodeInvalidMessageID   MessageErrorCode = "MSG-010002"
	ErrCodeInvalidMessageType MessageErrorCode = "MSG-010003"
	ErrCodeNegativeAmount     MessageErrorCode = "MSG-010004"
	ErrCodeMessageNotParsed   MessageErrorCode = "MSG-010005"

	// Lookup errors (02XXXX)
	ErrCodeMessageNotFound      MessageErrorCode = "MSG-020001"
	ErrCodeNotAuthorizedMessage MessageErrorCode = "MSG-020002"

	// Dependency errors (03XXXX)
	ErrCodeMessageStoreFailure MessageErrorCode = "MSG-030001"
)

// MessageError represents a message error with code and message.
type MessageError struct {
	Code    MessageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MessageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MessageError) Unwrap() error {
	return e.Err
}

// NewMessageError creates a new MessageError.
func NewMessageError(code MessageErrorCode, message string, err error) *MessageError {
	return &MessageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
