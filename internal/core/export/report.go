package export

import (
	"fmt"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/utils"
)

// ElementKind distinguishes text from page-break markers in a report document.
type ElementKind string

const (
	KindText      ElementKind = "text"
	KindPageBreak ElementKind = "pageBreak"
)

// Page geometry in millimetres, top-left origin.
const (
	MarginLeft       = 20.0
	PageTop          = 20.0
	PageContentLimit = 270.0
	firstEntryY      = 145.0
	entryLineStep    = 5.0
	entryHeight      = 15.0
	entryHeightDesc  = 20.0
)

// Font sizes in points.
const (
	FontTitle   = 20.0
	FontHeading = 16.0
	FontBody    = 12.0
	FontEntry   = 10.0
)

// DefaultReportTitle is used when no title is configured.
const DefaultReportTitle = "Fruit & Juice Shop Management Report"

// Element is one positioned line of text, or a page break.
type Element struct {
	Kind     ElementKind `json:"kind"`
	Text     string      `json:"text,omitempty"`
	FontSize float64     `json:"fontSize,omitempty"`
	X        float64     `json:"x,omitempty"`
	Y        float64     `json:"y,omitempty"`
}

// Document is a renderer-agnostic paginated report.
type Document struct {
	Title       string    `json:"title"`
	GeneratedOn time.Time `json:"generatedOn"`
	Elements    []Element `json:"elements"`
}

// Pages splits the element sequence on page-break markers.
func (d *Document) Pages() [][]Element {
	pages := [][]Element{{}}
	for _, el := range d.Elements {
		if el.Kind == KindPageBreak {
			pages = append(pages, []Element{})
			continue
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], el)
	}
	return pages
}

// PageCount returns the number of pages the document spans.
func (d *Document) PageCount() int {
	return len(d.Pages())
}

// ReportOptions customises BuildReport.
type ReportOptions struct {
	Title string
}

// BuildReport lays out the financial summary, the payment breakdown and one block per transaction.
// A new page starts whenever the cursor has moved past PageContentLimit before a transaction block.
func BuildReport(txns []domain.Transaction, res domain.AnalyticsResult, generatedOn time.Time, opts ReportOptions) *Document {
	title := opts.Title
	if title == "" {
		title = DefaultReportTitle
	}

	doc := &Document{Title: title, GeneratedOn: generatedOn}
	doc.text(title, FontTitle, 20)
	doc.text("Generated on: "+generatedOn.Format(domain.DateLayout), FontBody, 30)

	doc.text("Financial Summary", FontHeading, 45)
	doc.text("Total Income: "+utils.FormatCurrency(res.TotalIncome), FontBody, 55)
	doc.text("Total Expenses: "+utils.FormatCurrency(res.TotalExpenses), FontBody, 65)
	doc.text("Net Profit: "+utils.FormatCurrency(res.NetProfit), FontBody, 75)
	doc.text(fmt.Sprintf("Total Transactions: %d", len(txns)), FontBody, 85)

	doc.text("Payment Breakdown", FontHeading, 100)
	doc.text("Cash Income: "+utils.FormatCurrency(res.CashIncome), FontBody, 110)
	doc.text("Digital Income: "+utils.FormatCurrency(res.DigitalIncome), FontBody, 120)

	doc.text("Transactions", FontHeading, 135)

	y := firstEntryY
	for i, t := range txns {
		if y > PageContentLimit {
			doc.Elements = append(doc.Elements, Element{Kind: KindPageBreak})
			y = PageTop
		}

		doc.text(fmt.Sprintf("%d. %s - %s", i+1, t.Date.Format(domain.DateLayout), t.Type), FontEntry, y)
		doc.text("   Amount: "+utils.FormatCurrency(t.Amount), FontEntry, y+entryLineStep)
		doc.text("   Payment: "+string(t.PaymentMethod), FontEntry, y+2*entryLineStep)
		if desc := t.DisplayDescription(); desc != "" {
			doc.text("   Description: "+desc, FontEntry, y+3*entryLineStep)
			y += entryHeightDesc
		} else {
			y += entryHeight
		}
	}

	return doc
}

func (d *Document) text(s string, size, y float64) {
	d.Elements = append(d.Elements, Element{Kind: KindText, Text: s, FontSize: size, X: MarginLeft, Y: y})
}
