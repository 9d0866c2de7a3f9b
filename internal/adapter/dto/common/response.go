package common

// ErrorResponse is the uniform failure envelope: success is always false and
// error is a short generic message. Internal detail never reaches the client.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is the envelope for operations with no payload
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
