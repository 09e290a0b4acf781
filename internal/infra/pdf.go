package infra

// pdf.go — receipt ticket generation using go-pdf/fpdf.
// Renders a thermal-paper-sized ticket with store header, sale number and
// date, one row per line item, and the total / tendered / change block.
// Output is written to storagePath/ticket_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"tiendapos/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateTicketPDF renders the receipt for a completed Venta and returns
// the absolute path of the generated file.
func GenerateTicketPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ticket_%d.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "TiendaPOS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Venta N° %d", venta.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 4, "Producto", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 4, "Cant", "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 4, "Subtotal", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, d := range venta.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		if len(nombre) > 24 {
			nombre = nombre[:24]
		}
		pdf.CellFormat(col1, 4, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, fmt.Sprintf("%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 4, "$"+d.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "TOTAL  $"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Pago   $"+venta.PagoCliente.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 4, "Cambio $"+venta.Cambio.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write ticket: %w", err)
	}
	return filePath, nil
}
