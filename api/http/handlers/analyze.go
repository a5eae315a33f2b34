package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/parun-tech/resume-checker/api/http/presenter"
	"github.com/parun-tech/resume-checker/pkg/analysis"
	"github.com/parun-tech/resume-checker/pkg/resume"
)

const (
	msgDecodeFailed = "Failed to read file. Please try a different file or convert it to plain text."
	msgEmptyText    = "Could not extract text from the file. It might be an image-only PDF."
)

var errTooLarge = errors.New("file too large")

type AnalyzeHandler struct {
	uc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewAnalyzeHandler(uc analysis.UseCase, maxBytes int64) *AnalyzeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &AnalyzeHandler{uc: uc, maxBytes: maxBytes}
}

// Analyze compares an uploaded resume with a job description.
// @Summary Match a resume against a job description
// @Description Accepts a PDF, DOCX or plain-text resume plus job description text, returns the keyword match score and the job keywords missing from the resume.
// @Tags    Analyze
// @Accept  multipart/form-data
// @Produce json
// @Param   resume         formData file   true  "Resume file (PDF, DOCX or text)"
// @Param   jobDescription formData string true  "Job description text"
// @Param   jobTitle       formData string false "Job title shown in history"
// @Success 200 {object} analysis.Report
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, analysis.ErrResumeMissing.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	log.Infof("analyze %q (%s, %d bytes)", fh.Filename, fh.Header.Get("Content-Type"), len(data))

	rep, err := h.uc.Analyze(c.Context(), analysis.Submission{
		FileName:       fh.Filename,
		MimeType:       fh.Header.Get("Content-Type"),
		Data:           data,
		JobTitle:       c.FormValue("jobTitle"),
		JobDescription: c.FormValue("jobDescription"),
	})
	if err != nil {
		return analyzeError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, rep)
}

func analyzeError(c *fiber.Ctx, err error) error {
	var decodeErr *resume.DecodeError
	var validationErr analysis.ErrValidation
	switch {
	case errors.As(err, &decodeErr):
		log.Warnf("decode: %v", err)
		return presenter.Error(c, http.StatusBadRequest, msgDecodeFailed)
	case errors.Is(err, resume.ErrEmptyText):
		return presenter.Error(c, http.StatusBadRequest, msgEmptyText)
	case errors.As(err, &validationErr):
		return presenter.Error(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return presenter.Error(c, http.StatusServiceUnavailable, "request cancelled")
	default:
		log.Errorf("analyze: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", errTooLarge, max)
	}
	return b, nil
}
