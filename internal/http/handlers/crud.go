package handlers

import (
	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/http/response"
	"github.com/yungbote/agroregistry-backend/internal/platform/ctxutil"
	"github.com/yungbote/agroregistry-backend/internal/services"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

// CRUDHandler exposes one registry service as a REST resource.
type CRUDHandler[T any, C any, P any] struct {
	kind    domainagg.Kind
	service services.CRUD[T, C, P]
}

func NewCRUDHandler[T any, C any, P any](kind domainagg.Kind, service services.CRUD[T, C, P]) *CRUDHandler[T, C, P] {
	return &CRUDHandler[T, C, P]{kind: kind, service: service}
}

// Register mounts list/get/create/update/delete under g.
func (h *CRUDHandler[T, C, P]) Register(g gin.IRoutes) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// POST /
func (h *CRUDHandler[T, C, P]) Create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, domainagg.Invalid(h.kind, "body", "request body is not valid JSON: "+err.Error()))
		return
	}
	out, err := h.service.Create(c.Request.Context(), in, actingUserID(c))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, out)
}

// GET /
func (h *CRUDHandler[T, C, P]) List(c *gin.Context) {
	out, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /:id
func (h *CRUDHandler[T, C, P]) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	out, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PATCH /:id
// body: any subset of the create fields.
func (h *CRUDHandler[T, C, P]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, domainagg.Invalid(h.kind, "body", "request body is not valid JSON: "+err.Error()))
		return
	}
	out, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /:id
func (h *CRUDHandler[T, C, P]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (h *CRUDHandler[T, C, P]) pathID(c *gin.Context) (uint, bool) {
	id, err := validation.ParseID(h.kind, c.Param("id"))
	if err != nil {
		response.RespondError(c, err)
		return 0, false
	}
	return id, true
}

// actingUserID is the authenticated caller, or 0 on public routes.
func actingUserID(c *gin.Context) uint {
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		return rd.UserID
	}
	return 0
}
