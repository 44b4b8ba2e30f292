package dto

import (
	"fmt"
	"time"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"` // Tipo estável do erro de negócio
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse envolve listas retornadas pela API
type ListResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewKindErrorResponse cria uma resposta de erro com o tipo do erro de negócio
func NewKindErrorResponse(code int, kind, message, details string) ErrorResponse {
	r := NewErrorResponse(code, message, details)
	r.Kind = kind
	return r
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// NewListResponse cria uma resposta de lista
func NewListResponse(items interface{}, count int) ListResponse {
	return ListResponse{Items: items, Count: count}
}

// ParseDate aceita RFC3339 ou AAAA-MM-DD. Com endOfDay, datas sem hora vão para o fim do dia.
func ParseDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: use AAAA-MM-DD ou RFC3339", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
