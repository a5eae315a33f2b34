package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/parun-tech/resume-checker/api/http/presenter"
	"github.com/parun-tech/resume-checker/pkg/analysis"
)

type ChecksHandler struct {
	uc analysis.UseCase
}

func NewChecksHandler(uc analysis.UseCase) *ChecksHandler { return &ChecksHandler{uc: uc} }

// List returns recent checks, newest first.
// @Summary Recent checks
// @Tags    History
// @Produce json
// @Param   limit  query int false "Page size (default 10, max 200)"
// @Param   offset query int false "Offset"
// @Success 200 {array} analysis.Check
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /checks [get]
func (h *ChecksHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 0)
	items, err := h.uc.Recent(c.Context(), limit, offset)
	if err != nil {
		log.Errorf("list checks: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to list checks")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns a single check.
// @Summary Get check
// @Tags    History
// @Produce json
// @Param   id path string true "Check ID (UUID)"
// @Success 200 {object} analysis.Check
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /checks/{id} [get]
func (h *ChecksHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "check not found")
		}
		log.Errorf("get check: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to get check")
	}
	return presenter.JSON(c, http.StatusOK, out)
}
