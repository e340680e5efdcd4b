package domain

// ValidationError reports a missing or malformed request field. Handlers map
// it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError reports missing or unusable local credentials. The
// message must never carry secret material; handlers map it to a 500
// response with a generic body.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ProviderError reports that the telephony provider rejected or failed an
// operation. The provider's own message is kept verbatim for diagnosability.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
