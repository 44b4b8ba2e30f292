package period

import (
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
)

// Window é um intervalo de datas com limites inclusivos e opcionais.
// A janela vazia cobre todo o histórico.
type Window struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// AllTime retorna a janela sem limites
func AllTime() Window {
	return Window{}
}

// Between cria uma janela com os dois limites
func Between(from, to time.Time) Window {
	return Window{From: &from, To: &to}
}

// Validate rejeita janelas invertidas
func (w Window) Validate() error {
	if w.From != nil && w.To != nil && w.To.Before(*w.From) {
		return apperr.Validation("data final anterior à data inicial")
	}
	return nil
}

// Contains verifica se o instante está dentro da janela
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}
