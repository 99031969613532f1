package audit

import (
	"net/http"

	"github.com/kidaholy/human-resource-sub000/internal/middleware"
	"github.com/kidaholy/human-resource-sub000/internal/shared/apperror"
	"github.com/kidaholy/human-resource-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) History(c *gin.Context) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c,
			apperror.ErrUnauthorized.HTTPStatus,
			apperror.ErrUnauthorized.Code,
			apperror.ErrUnauthorized.Message,
			nil,
		)
		return
	}

	resp, err := h.service.History(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("audit history request failed",
			zap.String("leave_id", c.Param("id")),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
