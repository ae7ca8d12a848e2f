package errs

import (
	"errors"
	"net/http"
)

// Outbound email is a collaborator, not a dependency: a delivery failure never
// fails the request that triggered it, it only changes the response message.
var (
	ErrEmailDelivery      = errors.New("email delivery failed")
	ErrEmailNotConfigured = errors.New("email is not configured")
)

func NewEmailDeliveryError(detail string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmailDelivery,
		Details:    detail,
		Cause:      cause,
	}
}

func NewEmailNotConfiguredError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrEmailNotConfigured,
		Details:    "Set RESEND_API_KEY, RESEND_FROM and RESEND_TO to enable delivery",
	}
}

func IsEmailDelivery(err error) bool {
	return errors.Is(err, ErrEmailDelivery)
}

func IsEmailNotConfigured(err error) bool {
	return errors.Is(err, ErrEmailNotConfigured)
}
