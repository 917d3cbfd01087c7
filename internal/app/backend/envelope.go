package backend

// Envelope is the uniform response shape for async operations surfaced to a
// presentation layer: payload plus success flag and optional message.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK wraps a successful result.
func OK[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Data: data, Success: true, Message: message}
}

// Fail wraps a failed result. The zero value of T stands in for the payload.
func Fail[T any](err error) Envelope[T] {
	var zero T
	return Envelope[T]{Data: zero, Success: false, Message: err.Error()}
}
