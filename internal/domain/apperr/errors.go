package apperr

import (
	"errors"
	"fmt"
)

// Kind identifica a categoria estável de um erro de negócio
type Kind string

const (
	KindValidation        Kind = "validation"
	KindInvalidQuantity   Kind = "invalid_quantity"
	KindInsufficientStock Kind = "insufficient_stock"
	KindNotFound          Kind = "not_found"
	KindAuthorization     Kind = "authorization"
	KindInvalidState      Kind = "invalid_state"
	KindConcurrency       Kind = "concurrency"
)

// Erros sentinela usados com errors.Is
var (
	ErrValidation        = &Error{Kind: KindValidation, Message: "dados inválidos"}
	ErrInvalidQuantity   = &Error{Kind: KindInvalidQuantity, Message: "quantidade inválida"}
	ErrInsufficientStock = &Error{Kind: KindInsufficientStock, Message: "estoque insuficiente"}
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "registro não encontrado"}
	ErrAuthorization     = &Error{Kind: KindAuthorization, Message: "acesso negado"}
	ErrInvalidState      = &Error{Kind: KindInvalidState, Message: "transição de estado inválida"}
	ErrConcurrency       = &Error{Kind: KindConcurrency, Message: "conflito de concorrência"}
)

// Error representa um erro de negócio com tipo estável e mensagem legível
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implementa a interface error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap expõe o erro encadeado
func (e *Error) Unwrap() error {
	return e.Err
}

// Is compara pelo tipo. Quantidade inválida também é um erro de validação.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == e.Kind {
		return true
	}
	return t.Kind == KindValidation && e.Kind == KindInvalidQuantity
}

// New cria um erro do tipo informado
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap cria um erro do tipo informado encadeando a causa
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Validation cria um erro de validação
func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, format, args...)
}

// InvalidQuantity cria um erro de quantidade inválida
func InvalidQuantity(format string, args ...interface{}) *Error {
	return New(KindInvalidQuantity, format, args...)
}

// InsufficientStock cria um erro de estoque insuficiente
func InsufficientStock(format string, args ...interface{}) *Error {
	return New(KindInsufficientStock, format, args...)
}

// NotFound cria um erro de registro não encontrado
func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, format, args...)
}

// Authorization cria um erro de autorização
func Authorization(format string, args ...interface{}) *Error {
	return New(KindAuthorization, format, args...)
}

// InvalidState cria um erro de estado inválido
func InvalidState(format string, args ...interface{}) *Error {
	return New(KindInvalidState, format, args...)
}

// Concurrency cria um erro de conflito de concorrência
func Concurrency(err error, format string, args ...interface{}) *Error {
	return Wrap(KindConcurrency, err, format, args...)
}

// KindOf retorna o tipo do primeiro *Error da cadeia, ou vazio para erros de infraestrutura
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
