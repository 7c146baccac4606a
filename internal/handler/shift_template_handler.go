package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftdesk/shiftdesk-api/internal/dto"
	"github.com/shiftdesk/shiftdesk-api/internal/service"
	appErrors "github.com/shiftdesk/shiftdesk-api/pkg/errors"
	"github.com/shiftdesk/shiftdesk-api/pkg/response"
)

// ShiftTemplateHandler manages the shift catalogue endpoints.
type ShiftTemplateHandler struct {
	templates *service.ShiftTemplateService
}

// NewShiftTemplateHandler constructs handler.
func NewShiftTemplateHandler(templates *service.ShiftTemplateService) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{templates: templates}
}

// List godoc
// @Summary List shift templates
// @Tags ShiftTemplates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /shift-templates [get]
func (h *ShiftTemplateHandler) List(c *gin.Context) {
	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, templates, nil)
}

// Get godoc
// @Summary Get a shift template
// @Tags ShiftTemplates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} response.Envelope
// @Router /shift-templates/{id} [get]
func (h *ShiftTemplateHandler) Get(c *gin.Context) {
	template, err := h.templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, template, nil)
}

// Create godoc
// @Summary Create a shift template
// @Tags ShiftTemplates
// @Accept json
// @Produce json
// @Param payload body dto.CreateShiftTemplateRequest true "Template payload"
// @Success 201 {object} response.Envelope
// @Router /shift-templates [post]
func (h *ShiftTemplateHandler) Create(c *gin.Context) {
	var req dto.CreateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	template, err := h.templates.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, template)
}

// Update godoc
// @Summary Update a shift template
// @Tags ShiftTemplates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param payload body dto.UpdateShiftTemplateRequest true "Template payload"
// @Success 200 {object} response.Envelope
// @Router /shift-templates/{id} [put]
func (h *ShiftTemplateHandler) Update(c *gin.Context) {
	var req dto.UpdateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	template, err := h.templates.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, template, nil)
}

// Delete godoc
// @Summary Delete a shift template
// @Tags ShiftTemplates
// @Param id path string true "Template ID"
// @Success 204
// @Router /shift-templates/{id} [delete]
func (h *ShiftTemplateHandler) Delete(c *gin.Context) {
	if err := h.templates.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
