package service

import "fmt"

// ValidationError reports rejected input. Handlers surface it in the
// response envelope with no side effects having occurred.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ProductNotFoundError names the unknown product instead of skipping it.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ProductID)
}

// SignatureError marks a webhook that failed signature verification.
// It is the only webhook error answered with an HTTP error status.
type SignatureError struct {
	Cause error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("verify webhook signature: %v", e.Cause)
}

func (e *SignatureError) Unwrap() error {
	return e.Cause
}
