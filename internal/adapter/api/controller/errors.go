package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/bizit/internal/adapter/api/dto"
	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/hugohenrick/bizit/internal/domain/period"
	"github.com/hugohenrick/bizit/pkg/logger"
)

// statusFor mapeia o tipo do erro de negócio para o status HTTP
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindInvalidQuantity:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindInsufficientStock, apperr.KindInvalidState, apperr.KindConcurrency:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError responde com o status correspondente ao erro. Erros sem tipo são registrados no log.
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		log.Error(message, "error", err, "path", ctx.FullPath())
		ctx.JSON(status, dto.NewErrorResponse(status, message, "erro interno"))
		return
	}
	ctx.JSON(status, dto.NewKindErrorResponse(status, string(kind), message, err.Error()))
}

func badRequest(ctx *gin.Context, message string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewKindErrorResponse(http.StatusBadRequest, string(apperr.KindValidation), message, err.Error()))
}

// windowFromQuery lê o intervalo ?from=&to= da requisição
func windowFromQuery(ctx *gin.Context) (period.Window, error) {
	from, err := dto.ParseDate(ctx.Query("from"), false)
	if err != nil {
		return period.Window{}, apperr.Validation("%s", err.Error())
	}
	to, err := dto.ParseDate(ctx.Query("to"), true)
	if err != nil {
		return period.Window{}, apperr.Validation("%s", err.Error())
	}
	w := period.Window{From: from, To: to}
	if err := w.Validate(); err != nil {
		return period.Window{}, err
	}
	return w, nil
}
