package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByKind(t *testing.T) {
	err := InsufficientStock("disponível: %d", 3)

	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "disponível: 3", err.Error())
}

func TestInvalidQuantityIsAlsoValidation(t *testing.T) {
	err := InvalidQuantity("quantidade deve ser positiva")

	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(Validation("x"), ErrInvalidQuantity))
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("ao registrar venda: %w", NotFound("item não encontrado"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("falha de rede")))
}

func TestConcurrencyUnwrapsCause(t *testing.T) {
	cause := errors.New("could not serialize access")
	err := Concurrency(cause, "conflito ao atualizar item")

	assert.True(t, errors.Is(err, ErrConcurrency))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "could not serialize access")
}
