package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/service/shipments"
	"github.com/hugohenrick/bizit/pkg/auth"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// ShipmentController gerencia as requisições de remessas
type ShipmentController struct {
	service *shipments.Service
	logger  logger.Logger
}

// NewShipmentController cria uma nova instância de ShipmentController
func NewShipmentController(service *shipments.Service, logger logger.Logger) *ShipmentController {
	return &ShipmentController{service: service, logger: logger}
}

// Create cadastra uma remessa esperada
// @Summary Criar remessa
// @Tags shipments
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param shipment body dto.ShipmentRequest true "Dados da remessa"
// @Success 201 {object} supplier.Shipment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shipments [post]
func (c *ShipmentController) Create(ctx *gin.Context) {
	var req dto.ShipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	expected, err := dto.ParseDate(req.ExpectedDate, false)
	if err != nil {
		badRequest(ctx, "data esperada inválida", err)
		return
	}

	shipment, err := c.service.CreateShipment(ctx, auth.GetScope(ctx), shipments.ShipmentInput{
		SupplierID:       req.SupplierID,
		StockItemID:      req.StockItemID,
		ExpectedQuantity: req.ExpectedQuantity,
		ExpectedDate:     *expected,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar remessa", err)
		return
	}

	ctx.JSON(http.StatusCreated, shipment)
}

// List lista as remessas da organização
// @Summary Listar remessas
// @Tags shipments
// @Produce json
// @Param org-id header string true "ID da organização"
// @Success 200 {object} dto.ListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /shipments [get]
func (c *ShipmentController) List(ctx *gin.Context) {
	list, err := c.service.ListShipments(ctx, auth.GetScope(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar remessas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(list, len(list)))
}

// Arrive marca a remessa como recebida, opcionalmente já avaliando
// @Summary Receber remessa
// @Description Marca a remessa como recebida. Com received_quantity, avalia e credita o estoque na mesma operação
// @Tags shipments
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID da remessa"
// @Param rating body dto.ArriveRequest false "Avaliação opcional"
// @Success 200 {object} supplier.Shipment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /shipments/{id}/arrive [patch]
func (c *ShipmentController) Arrive(ctx *gin.Context) {
	var req dto.ArriveRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(ctx, "dados inválidos", err)
			return
		}
	}

	var rating *shipments.Rating
	if req.ReceivedQuantity != nil {
		received, err := dto.ParseDate(req.ReceivedDate, false)
		if err != nil {
			badRequest(ctx, "data de recebimento inválida", err)
			return
		}
		rating = &shipments.Rating{
			ReceivedQuantity: *req.ReceivedQuantity,
			DamagedQuantity:  req.DamagedQuantity,
			ReceivedDate:     received,
		}
	}

	shipment, err := c.service.MarkArrived(ctx, auth.GetScope(ctx), ctx.Param("id"), rating)
	if err != nil {
		respondError(ctx, c.logger, "erro ao receber remessa", err)
		return
	}

	ctx.JSON(http.StatusOK, shipment)
}

// Rate avalia uma remessa recebida
// @Summary Avaliar remessa
// @Description Registra as quantidades conferidas e calcula a nota. O estoque recebe a diferença das quantidades boas
// @Tags shipments
// @Accept json
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID da remessa"
// @Param rating body dto.RatingRequest true "Quantidades conferidas"
// @Success 200 {object} supplier.Shipment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /shipments/{id}/rate [post]
func (c *ShipmentController) Rate(ctx *gin.Context) {
	var req dto.RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	received, err := dto.ParseDate(req.ReceivedDate, false)
	if err != nil {
		badRequest(ctx, "data de recebimento inválida", err)
		return
	}

	shipment, err := c.service.RateShipment(ctx, auth.GetScope(ctx), ctx.Param("id"), shipments.Rating{
		ReceivedQuantity: *req.ReceivedQuantity,
		DamagedQuantity:  req.DamagedQuantity,
		ReceivedDate:     received,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao avaliar remessa", err)
		return
	}

	ctx.JSON(http.StatusOK, shipment)
}

// Cancel cancela uma remessa
// @Summary Cancelar remessa
// @Tags shipments
// @Produce json
// @Param org-id header string true "ID da organização"
// @Param id path string true "ID da remessa"
// @Success 200 {object} supplier.Shipment
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /shipments/{id}/cancel [patch]
func (c *ShipmentController) Cancel(ctx *gin.Context) {
	shipment, err := c.service.CancelShipment(ctx, auth.GetScope(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao cancelar remessa", err)
		return
	}

	ctx.JSON(http.StatusOK, shipment)
}
