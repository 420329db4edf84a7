package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"sitesnap/internal/application/usecase/abstraction"
	"sitesnap/internal/presentation"
	"sitesnap/pkg/logger"
)

type DownloadHandler struct {
	archiver abstraction.Archiver
}

func NewDownloadHandler(archiver abstraction.Archiver) *DownloadHandler {
	return &DownloadHandler{
		archiver: archiver,
	}
}

// Handle handles GET /download?constructionSite=<label>&date=<date> requests
// and streams back a zip of every matching image. The temporary archive is
// removed on every exit path, whether or not the send succeeded.
func (h *DownloadHandler) Handle(c echo.Context) error {
	site := c.QueryParam(presentation.SiteParam)
	date := c.QueryParam(presentation.DateParam)
	if site == "" || date == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing constructionSite or date")

		return c.String(http.StatusBadRequest, "Missing constructionSite or date.")
	}

	result, err := h.archiver.Archive(c.Request().Context(), site, date)
	if err != nil {
		logger.Error("download failed", "site", site, "date", date, "err", err)

		return c.String(http.StatusInternalServerError, "Internal server error.")
	}

	defer func() {
		if err := os.Remove(result.Path); err != nil {
			logger.Error("failed to remove temporary archive", "path", result.Path, "err", err)
		}
	}()

	return c.Attachment(result.Path, fmt.Sprintf("%s_%s_images.zip", date, site))
}
