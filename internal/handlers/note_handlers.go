package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
)

// NoteHandlers renders delivery notes and salon contracts as PDFs and stores
// them in object storage.
type NoteHandlers struct {
	orderService services.OrderService
	salonService services.SalonService
	minioService services.MinioService

	bucket         string
	companyName    string
	companyTagline string
	companyContact string
}

func NewNoteHandlers(orderService services.OrderService, salonService services.SalonService, minioService services.MinioService, bucket, companyName, companyTagline, companyContact string) *NoteHandlers {
	return &NoteHandlers{
		orderService:   orderService,
		salonService:   salonService,
		minioService:   minioService,
		bucket:         bucket,
		companyName:    companyName,
		companyTagline: companyTagline,
		companyContact: companyContact,
	}
}

// GenerateOrderNote handles GET /orders/:id/note
func (h *NoteHandlers) GenerateOrderNote(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Order")
	}

	pdfBytes, err := h.renderOrderNote(order)
	if err != nil {
		return common.SendServerError(c, "Failed to generate note")
	}

	objectName := fmt.Sprintf("orders/%s.pdf", order.ID)
	h.store(ctx, objectName, pdfBytes)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="note-%s.pdf"`, order.ID))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// GenerateSalonContract handles GET /salon/events/:id/contract
func (h *NoteHandlers) GenerateSalonContract(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "event id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	event, err := h.salonService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Salon event")
	}

	pdfBytes, err := h.renderSalonContract(event)
	if err != nil {
		return common.SendServerError(c, "Failed to generate contract")
	}

	objectName := fmt.Sprintf("salon/%s.pdf", event.ID)
	h.store(ctx, objectName, pdfBytes)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="contract-%s.pdf"`, event.ID))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// GetNoteURL handles GET /orders/:id/note-url, returning a presigned link to
// the stored copy.
func (h *NoteHandlers) GetNoteURL(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	url, err := h.minioService.GetPresignedURL(h.bucket, fmt.Sprintf("orders/%s.pdf", id), 15*time.Minute)
	if err != nil {
		return common.SendNotFoundError(c, "Stored note")
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// store archives a copy in object storage; failures are logged and do not
// block the download.
func (h *NoteHandlers) store(ctx context.Context, objectName string, pdfBytes []byte) {
	if h.minioService == nil {
		return
	}
	err := h.minioService.UploadDocument(ctx, h.bucket, objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf")
	if err != nil {
		log.Printf("WARN: failed to archive %s: %v", objectName, err)
	}
}

func (h *NoteHandlers) renderOrderNote(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, h.companyName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, h.companyTagline)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "RENTAL NOTE")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", order.CustomerName))
	pdf.Ln(6)
	if order.CustomerPhone != nil && *order.CustomerPhone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Phone: %s", *order.CustomerPhone))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Event date: %s at %s", order.EventDate.Format("02-Jan-2006"), order.EventTime))
	pdf.Ln(6)
	venue := order.Venue
	if order.VenueDetail != nil && *order.VenueDetail != "" {
		venue += ", " + *order.VenueDetail
	}
	pdf.Cell(0, 6, fmt.Sprintf("Venue: %s", venue))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"Item", "Qty", "Price", "Subtotal"}
	colWidths := []float64{90, 20, 30, 30}
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(255, 255, 255)
	for _, item := range order.Items {
		name := item.ProductName
		if item.IsBundleComponent {
			name = "  - " + name
		}
		if color := common.SafeString(item.Color); color != "" {
			name += fmt.Sprintf(" (%s)", color)
		}
		pdf.CellFormat(colWidths[0], 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f", item.Subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(140, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Total), "", 0, "R", false, 0, "")
	pdf.Ln(8)
	if order.Deposit > 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(140, 6, "Deposit:", "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", order.Deposit), "", 0, "R", false, 0, "")
		pdf.Ln(6)
		pdf.CellFormat(140, 6, "Balance due:", "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", order.Total-order.Deposit), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Cell(0, 5, fmt.Sprintf("Contact: %s", h.companyContact))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (h *NoteHandlers) renderSalonContract(event *models.SalonEvent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, h.companyName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "SALON RENTAL CONTRACT")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", event.CustomerName))
	pdf.Ln(6)
	if event.CustomerPhone != nil && *event.CustomerPhone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Phone: %s", *event.CustomerPhone))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Event date: %s at %s", event.EventDate.Format("02-Jan-2006"), event.StartTime))
	pdf.Ln(6)
	if event.EventType != nil && *event.EventType != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Event type: %s", *event.EventType))
		pdf.Ln(6)
	}
	if event.GuestCount != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Guests: %d", *event.GuestCount))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Price: %.2f", event.Price))
	pdf.Ln(6)
	if event.Deposit > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Deposit: %.2f", event.Deposit))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Balance due: %.2f", event.Price-event.Deposit))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if event.Conditions != nil && *event.Conditions != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Conditions:")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, *event.Conditions, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Customer signature: ______________________")
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Cell(0, 5, fmt.Sprintf("Contact: %s", h.companyContact))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
