package handlers

import (
	"fmt"
	"moodbite/domain"
	"moodbite/internal/api/presenters"
	"moodbite/pkg/export"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	ExportHandler interface {
		Export(c *fiber.Ctx) error
	}

	exportHandler struct {
		exportService export.ExportService
	}
)

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandler{
		exportService: exportService,
	}
}

func (h *exportHandler) Export(c *fiber.Ctx) error {
	f, err := h.exportService.Build(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedExport, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("close export workbook: %v", err)
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExport, err)
	}

	filename := fmt.Sprintf("moodbite-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Attachment(filename)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
