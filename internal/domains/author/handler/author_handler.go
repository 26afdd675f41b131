package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"authors-backend/internal/domains/author"
	"authors-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ========================================
// CREATE: POST /authors
// ========================================

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author payload", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// ========================================
// UPDATE: PUT /authors
// ========================================

func (h *AuthorHandler) Update(c *gin.Context) {
	var req author.UpdateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author payload", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// ========================================
// DELETE: DELETE /authors/:id
// ========================================

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author deleted")
}

// ========================================
// READ: GET /authors/:id
// ========================================

func (h *AuthorHandler) FindByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// A missing id is an empty result at the repository; the HTTP
	// surface reports it as not-found.
	if a == nil {
		response.NotFound(c, "author not found")
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// ========================================
// READ: GET /authors
// ========================================

func (h *AuthorHandler) ListAll(c *gin.Context) {
	authors, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponses(authors))
}

// ========================================
// SEARCH: GET /authors/nomeOrSobrenome?termo=
// ========================================

func (h *AuthorHandler) FindByTerm(c *gin.Context) {
	term := c.Query("termo")

	authors, err := h.service.FindByTerm(c.Request.Context(), term)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponses(authors))
}

// ========================================
// COUNT: GET /authors/total
// ========================================

func (h *AuthorHandler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, total)
}

// parseID reads the :id path parameter; a non-numeric id is a 400.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return 0, false
	}
	return id, true
}

// respondDomainError translates domain errors into the envelope: 404
// for not-found, 409 for constraint violations, 500 otherwise. No
// storage failure escapes as an unhandled fault.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, author.ErrConstraintViolation):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

func toResponses(authors []author.Author) []author.AuthorResponse {
	out := make([]author.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, *a.ToResponse())
	}
	return out
}
