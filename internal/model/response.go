package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details string         `json:"details,omitempty"`
	Fields  []FieldFailure `json:"fields,omitempty"`
}

type FieldFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
