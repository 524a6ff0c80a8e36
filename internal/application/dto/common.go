package dto

// ErrorResponse corpo de erro HTTP: sempre uma lista de mensagens.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse monta o envelope de erro com uma ou mais mensagens.
func NewErrorResponse(messages ...string) ErrorResponse {
	return ErrorResponse{Errors: messages}
}
