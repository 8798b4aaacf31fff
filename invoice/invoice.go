package invoice

import (
	"bytes"
	"fmt"

	"stitchworks-api/models"

	"github.com/jung-kurt/gofpdf"
)

// Renderer produces PDF invoices from order snapshots. Company details come
// in at construction time.
type Renderer struct {
	companyName    string
	companyAddress string
	companyPhone   string
	currency       string
}

// NewRenderer creates an invoice Renderer.
func NewRenderer(companyName, companyAddress, companyPhone, currency string) *Renderer {
	return &Renderer{
		companyName:    companyName,
		companyAddress: companyAddress,
		companyPhone:   companyPhone,
		currency:       currency,
	}
}

func (r *Renderer) amount(v float64) string {
	return fmt.Sprintf("%s %.2f", r.currency, v)
}

// Render produces the invoice PDF for an order.
func (r *Renderer) Render(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, r.companyAddress)
	pdf.Ln(5)
	pdf.Cell(0, 6, r.companyPhone)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "INVOICE")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Invoice No: "+order.ID.String())
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+order.CreatedAt.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, order.CustomerName)
	pdf.Ln(5)
	pdf.Cell(0, 6, order.Address)
	pdf.Ln(5)
	pdf.Cell(0, 6, order.Email+" / "+order.Mobile)
	pdf.Ln(10)

	rows := [][2]string{
		{"Material", order.Material},
		{"Quantity", fmt.Sprintf("%d", order.Quantity)},
		{"Unit price", r.amount(order.Price.UnitPrice)},
		{"Subtotal", r.amount(order.Price.Subtotal)},
	}
	if order.Artwork {
		rows = append(rows, [2]string{"Artwork", order.ArtworkText})
		rows = append(rows, [2]string{"Artwork fee", r.amount(order.Price.ArtworkFee)})
	}
	rows = append(rows,
		[2]string{"Total", r.amount(order.Price.Total)},
		[2]string{"Advance (50%)", r.amount(order.Price.Advance)},
		[2]string{"Balance due", r.amount(order.Price.Balance)},
	)

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 8, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
