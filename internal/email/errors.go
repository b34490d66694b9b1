package email

import "errors"

// Domain-specific errors for the email package.
var (
	ErrListEmails = errors.New("failed to list emails")
)
