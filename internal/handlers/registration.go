package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"impilo/registry/internal/models"
	"impilo/registry/internal/repository"
	"impilo/registry/internal/service"
)

func (h HandlerSet) CreateRegistration(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart body"})
		return
	}

	fields := make(map[string]string)
	var visualArts []string
	var files map[string][]*multipart.FileHeader

	if form != nil {
		for name, values := range form.Value {
			if len(values) == 0 {
				continue
			}
			if name == "visualArts" {
				visualArts = values
				continue
			}
			fields[name] = values[0]
		}
		files = form.File
	}

	reg, err := h.intake.Submit(c.Request.Context(), service.SubmitInput{
		Fields:     fields,
		VisualArts: visualArts,
		Files:      files,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration saved",
		"registration": reg,
	})
}

func (h HandlerSet) ListRegistrations(c *gin.Context) {
	limit := 100
	offset := 0

	if perPage := c.Query("perPage"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	if page := c.Query("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 1 {
			offset = (v - 1) * limit
		}
	}

	regs, err := h.regs.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if regs == nil {
		regs = []models.Registration{}
	}

	c.JSON(http.StatusOK, gin.H{"items": regs})
}

func (h HandlerSet) GetRegistration(c *gin.Context) {
	reg, err := h.regs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h HandlerSet) UpdateRegistrationStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	reg, err := h.moderation.Transition(c.Request.Context(), c.Param("id"), models.RegistrationStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h HandlerSet) DeleteRegistration(c *gin.Context) {
	if err := h.regs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// respondError maps the error taxonomy onto status codes. Unexpected errors
// are logged and reported generically.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	if service.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return
	}
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}
