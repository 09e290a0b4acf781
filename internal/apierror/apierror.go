// Package apierror defines the JSON error envelopes the API returns.
// Handlers translate every failure into one of these shapes so clients
// never see raw driver or stack information.
package apierror

// APIError carries a single human-readable message.
type APIError struct {
	Detail string `json:"detail"`
}

func New(detail string) *APIError {
	return &APIError{Detail: detail}
}

// ValidationError reports per-field binding failures; Fields maps the
// struct field name to the validator tag that rejected it.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
