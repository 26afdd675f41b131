package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"authors-backend/internal/domains/authorinfo"
	"authors-backend/internal/shared/response"
)

type AuthorInfoHandler struct {
	service authorinfo.Service
}

func NewAuthorInfoHandler(svc authorinfo.Service) *AuthorInfoHandler {
	return &AuthorInfoHandler{
		service: svc,
	}
}

// POST /author-infos
func (h *AuthorInfoHandler) Create(c *gin.Context) {
	var req authorinfo.CreateAuthorInfoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author info payload", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// PUT /author-infos
func (h *AuthorInfoHandler) Update(c *gin.Context) {
	var req authorinfo.UpdateAuthorInfoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author info payload", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// DELETE /author-infos/:id
func (h *AuthorInfoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author info deleted")
}

// GET /author-infos/:id
func (h *AuthorInfoHandler) FindByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	info, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if info == nil {
		response.NotFound(c, "author info not found")
		return
	}

	response.Success(c, http.StatusOK, info.ToResponse())
}

// GET /author-infos
func (h *AuthorInfoHandler) ListAll(c *gin.Context) {
	infos, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponses(infos))
}

// GET /author-infos/role?termo=
func (h *AuthorInfoHandler) FindByTerm(c *gin.Context) {
	term := c.Query("termo")

	infos, err := h.service.FindByTerm(c.Request.Context(), term)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponses(infos))
}

// GET /author-infos/total
func (h *AuthorInfoHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, total)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author info id")
		return 0, false
	}
	return id, true
}

func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authorinfo.ErrAuthorInfoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, authorinfo.ErrConstraintViolation):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

func toResponses(infos []authorinfo.AuthorInfo) []authorinfo.AuthorInfoResponse {
	out := make([]authorinfo.AuthorInfoResponse, 0, len(infos))
	for _, i := range infos {
		out = append(out, *i.ToResponse())
	}
	return out
}
