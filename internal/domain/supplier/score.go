package supplier

import (
	"sort"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
)

// Grade classifica o desempenho médio de um fornecedor
type Grade string

const (
	GradeGood Grade = "good"
	GradeFair Grade = "fair"
	GradePoor Grade = "poor"
)

// Score calcula a porcentagem da quantidade esperada recebida em boas condições, limitada a [0, 100]
func Score(expectedQuantity, receivedQuantity, damagedQuantity int) (float64, error) {
	if receivedQuantity < 0 {
		return 0, apperr.InvalidQuantity("quantidade recebida não pode ser negativa")
	}
	if damagedQuantity < 0 || damagedQuantity > receivedQuantity {
		return 0, apperr.InvalidQuantity("quantidade avariada deve estar entre 0 e a quantidade recebida")
	}
	if expectedQuantity <= 0 {
		return 0, apperr.InvalidState("remessa sem quantidade esperada não pode ser avaliada")
	}

	good := receivedQuantity - damagedQuantity
	score := float64(good) * 100 / float64(expectedQuantity)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, nil
}

// GradeFor converte a nota média em conceito
func GradeFor(score float64) Grade {
	switch {
	case score >= 90:
		return GradeGood
	case score >= 70:
		return GradeFair
	default:
		return GradePoor
	}
}

// SupplierScore é a média das notas das remessas avaliadas de um fornecedor
type SupplierScore struct {
	SupplierID     string  `json:"supplier_id"`
	SupplierName   string  `json:"supplier_name"`
	AverageScore   float64 `json:"average_score"`
	RatedShipments int     `json:"rated_shipments"`
	Grade          Grade   `json:"grade"`
}

// Aggregate calcula a média por fornecedor. Fornecedores sem remessas avaliadas ficam de fora.
func Aggregate(shipments []*Shipment) []SupplierScore {
	type acc struct {
		name  string
		sum   float64
		count int
	}
	bySupplier := make(map[string]*acc)
	for _, s := range shipments {
		if !s.IsRated() {
			continue
		}
		a, ok := bySupplier[s.SupplierID]
		if !ok {
			a = &acc{name: s.SupplierName}
			bySupplier[s.SupplierID] = a
		}
		a.sum += *s.Score
		a.count++
	}

	result := make([]SupplierScore, 0, len(bySupplier))
	for id, a := range bySupplier {
		avg := a.sum / float64(a.count)
		result = append(result, SupplierScore{
			SupplierID:     id,
			SupplierName:   a.name,
			AverageScore:   avg,
			RatedShipments: a.count,
			Grade:          GradeFor(avg),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].SupplierName != result[j].SupplierName {
			return result[i].SupplierName < result[j].SupplierName
		}
		return result[i].SupplierID < result[j].SupplierID
	})
	return result
}
