package leave

import (
	"net/http"
	"strconv"

	"github.com/kidaholy/human-resource-sub000/internal/middleware"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	log := h.logger.Warn
	if httpErr.Status >= http.StatusInternalServerError {
		log = h.logger.Error
	}
	log("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("leave request validation failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) actor(c *gin.Context) (actor.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c,
			apperror.ErrUnauthorized.HTTPStatus,
			apperror.ErrUnauthorized.Code,
			apperror.ErrUnauthorized.Message,
			nil,
		)
		return actor.Actor{}, false
	}
	return a, true
}

func (h *Handler) Create(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}
	h.logger.Debug("http create leave request", zap.String("user_id", a.UserID))

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), a, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetHistory(c.Request.Context(), a)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetBalance(c.Request.Context(), a)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDepartmentRequests(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetDepartmentPending(c.Request.Context(), a)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDepartmentHistory(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetDepartmentHistory(c.Request.Context(), a, c.Query("stage"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDepartmentStats(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetDepartmentStats(c.Request.Context(), a)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DecideAsDepartmentHead(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.logger.Debug("http department head decision",
		zap.String("leave_id", id),
		zap.String("user_id", a.UserID),
	)

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.DecideAsDepartmentHead(c.Request.Context(), a, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), a, c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	items, meta := response.Paginate(resp, page, pageSize)

	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetAdminPending(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetPendingForAdmin(c.Request.Context(), a)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DecideAsAdmin(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.logger.Debug("http admin decision",
		zap.String("leave_id", id),
		zap.String("user_id", a.UserID),
	)

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.DecideAsAdmin(c.Request.Context(), a, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetGlobalStats(c *gin.Context) {
	a, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetGlobalStats(c.Request.Context(), a)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
