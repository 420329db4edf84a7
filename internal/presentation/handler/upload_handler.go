package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"sitesnap/internal/application/usecase"
	"sitesnap/internal/application/usecase/abstraction"
	"sitesnap/internal/domain/dto"
	"sitesnap/internal/domain/entity"
	"sitesnap/internal/presentation"
	"sitesnap/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /upload requests: a multipart form with a
// constructionSite value and one or more images parts.
func (h *UploadHandler) Handle(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "invalid multipart form")

		return c.String(http.StatusBadRequest, "Invalid upload request.")
	}

	site := c.FormValue(presentation.SiteParam)

	headers := form.File[presentation.FilesField]
	if len(headers) == 0 {
		c.Response().Header().Set(presentation.ReasonTag, "no files attached")

		return c.String(http.StatusBadRequest, "No files uploaded.")
	}

	files := make([]entity.File, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			logger.Error("failed to open multipart file", "filename", header.Filename, "err", err)

			return c.String(http.StatusInternalServerError, "Internal server error.")
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			logger.Error("failed to read multipart file", "filename", header.Filename, "err", err)

			return c.String(http.StatusInternalServerError, "Internal server error.")
		}

		files = append(files, entity.File{
			Name: filepath.Base(header.Filename),
			Size: header.Size,
			Data: data,
		})
	}

	report, err := h.uploader.Upload(c.Request().Context(), site, files)
	if err != nil {
		if errors.Is(err, usecase.ErrNoFiles) {
			c.Response().Header().Set(presentation.ReasonTag, err.Error())

			return c.String(http.StatusBadRequest, "No files uploaded.")
		}

		logger.Error("upload failed", "site", site, "err", err)

		return c.String(http.StatusInternalServerError, "Internal server error.")
	}

	return c.JSON(http.StatusOK, dto.NewUploadReport(report))
}
