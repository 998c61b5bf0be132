package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptLine is one resolved sale item: the service name is already
// joined, no lookups happen during rendering.
type ReceiptLine struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

// Receipt is a fully resolved sale ready for export. Ref is the
// export reference assigned by the controller.
type Receipt struct {
	Ref           string
	Code          string
	Date          string
	ClientName    string
	PaymentMethod string
	Lines         []ReceiptLine
	Total         float64
}

// BuildReceipt renders the receipt to PDF bytes.
func BuildReceipt(r Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "AsthroApp", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Recibo de venta", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("No. %s   Fecha: %s", r.Code, r.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Cliente: %s", r.ClientName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Pago: %s", r.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Servicio", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Cant.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Precio", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Importe", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range r.Lines {
		pdf.CellFormat(90, 7, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.0f", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.0f", line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(145, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.0f", r.Total), "1", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Ref: %s", r.Ref), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Gracias por su visita", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
