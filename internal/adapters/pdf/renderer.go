// Package pdf renders report documents to PDF with go-pdf/fpdf.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/fruit_shop_app/internal/core/export"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// Renderer draws each text element at its absolute position on A4 pages, in millimetres.
type Renderer struct{}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ portssvc.ReportRenderer = (*Renderer)(nil)

// Render lays doc out page by page and returns the PDF bytes.
func (r *Renderer) Render(doc *export.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render pdf: nil document")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("fruit_shop_app", true)
	pdf.SetCreationDate(doc.GeneratedOn)
	pdf.SetAutoPageBreak(false, 0)
	// Core fonts are cp1252; translate so descriptions with accents print correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages() {
		pdf.AddPage()
		for _, el := range page {
			pdf.SetFont(fontFamily, "", el.FontSize)
			pdf.Text(el.X, el.Y, tr(el.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
