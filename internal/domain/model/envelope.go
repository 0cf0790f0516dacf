package model

// Envelope is the wire shape of every API response
type Envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
	Stack      string `json:"stack,omitempty"`
}

// NewSuccessEnvelope builds a successful envelope
func NewSuccessEnvelope(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}
