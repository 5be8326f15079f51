package api

// APIError is a non-2xx response from the backend. Message carries the
// server-provided error text, or a generic per-endpoint fallback when the
// body has none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
