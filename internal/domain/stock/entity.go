package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/shopspring/decimal"
)

// Valores padrão herdados do cadastro de itens
const (
	DefaultMinThreshold = 10
	DefaultMaxCapacity  = 100
)

// Item representa um item de estoque de uma organização
type Item struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"org_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`      // Preço unitário de venda
	CostPrice    decimal.Decimal `json:"cost_price"` // Custo unitário de aquisição
	MinThreshold int             `json:"min_threshold"`
	MaxCapacity  int             `json:"max_capacity"`
	Version      int             `json:"version"` // Controle otimista de concorrência
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Attributes agrupa os campos editáveis de um item (exceto quantidade)
type Attributes struct {
	Name         string
	Category     string
	Price        decimal.Decimal
	CostPrice    decimal.Decimal
	MinThreshold int
	MaxCapacity  int
}

// Patch descreve uma atualização parcial. Quantidade só muda pelo ledger.
type Patch struct {
	Name         *string
	Category     *string
	Price        *decimal.Decimal
	CostPrice    *decimal.Decimal
	MinThreshold *int
	MaxCapacity  *int
}

// NewItem cria um novo item validando os atributos. A quantidade inicial é
// registrada depois pelo ledger como movimento "initial".
func NewItem(orgID string, attrs Attributes) (*Item, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)
	attrs.Category = strings.TrimSpace(attrs.Category)
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Item{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		Name:         attrs.Name,
		Category:     attrs.Category,
		Price:        attrs.Price,
		CostPrice:    attrs.CostPrice,
		MinThreshold: attrs.MinThreshold,
		MaxCapacity:  attrs.MaxCapacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// MoneyScale é o número de casas decimais dos valores monetários, igual ao das colunas NUMERIC(15,2)
const MoneyScale = 2

// Validate verifica as faixas de cada atributo
func (a Attributes) Validate() error {
	if a.Name == "" {
		return apperr.Validation("nome não pode ser vazio")
	}
	if a.Category == "" {
		return apperr.Validation("categoria não pode ser vazia")
	}
	if a.Price.IsNegative() {
		return apperr.Validation("preço de venda não pode ser negativo")
	}
	if a.CostPrice.IsNegative() {
		return apperr.Validation("preço de custo não pode ser negativo")
	}
	if !a.Price.Equal(a.Price.Round(MoneyScale)) {
		return apperr.Validation("preço de venda aceita no máximo %d casas decimais", MoneyScale)
	}
	if !a.CostPrice.Equal(a.CostPrice.Round(MoneyScale)) {
		return apperr.Validation("preço de custo aceita no máximo %d casas decimais", MoneyScale)
	}
	if a.MinThreshold < 0 {
		return apperr.Validation("estoque mínimo não pode ser negativo")
	}
	if a.MaxCapacity < 0 {
		return apperr.Validation("capacidade máxima não pode ser negativa")
	}
	if a.MaxCapacity < a.MinThreshold {
		return apperr.Validation("capacidade máxima deve ser maior ou igual ao estoque mínimo")
	}
	return nil
}

func (i *Item) attributes() Attributes {
	return Attributes{
		Name:         i.Name,
		Category:     i.Category,
		Price:        i.Price,
		CostPrice:    i.CostPrice,
		MinThreshold: i.MinThreshold,
		MaxCapacity:  i.MaxCapacity,
	}
}

// ApplyPatch aplica uma atualização parcial, validando o resultado antes de alterar o item
func (i *Item) ApplyPatch(p Patch) error {
	attrs := i.attributes()
	if p.Name != nil {
		attrs.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		attrs.Category = strings.TrimSpace(*p.Category)
	}
	if p.Price != nil {
		attrs.Price = *p.Price
	}
	if p.CostPrice != nil {
		attrs.CostPrice = *p.CostPrice
	}
	if p.MinThreshold != nil {
		attrs.MinThreshold = *p.MinThreshold
	}
	if p.MaxCapacity != nil {
		attrs.MaxCapacity = *p.MaxCapacity
	}
	if err := attrs.Validate(); err != nil {
		return err
	}

	i.Name = attrs.Name
	i.Category = attrs.Category
	i.Price = attrs.Price
	i.CostPrice = attrs.CostPrice
	i.MinThreshold = attrs.MinThreshold
	i.MaxCapacity = attrs.MaxCapacity
	i.UpdatedAt = time.Now()
	return nil
}

// ApplyDelta soma delta à quantidade. Falha sem alterar o item se o resultado ficar negativo.
func (i *Item) ApplyDelta(delta int, at time.Time) error {
	next := i.Quantity + delta
	if next < 0 {
		return apperr.InsufficientStock("estoque insuficiente para %s: disponível %d, solicitado %d", i.Name, i.Quantity, -delta)
	}
	i.Quantity = next
	i.UpdatedAt = at
	return nil
}

// Status retorna a classificação atual do item
func (i *Item) Status() Status {
	return Classify(i.Quantity, i.MinThreshold, i.MaxCapacity)
}

// Valuation retorna o valor de venda e o custo do saldo atual
func (i *Item) Valuation() Valuation {
	return Valuate(i)
}
