// Package export renders the quiz receipt. The PDF is built directly
// into a memory buffer; nothing touches disk.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// DownloadName is the filename the browser saves the receipt under.
const DownloadName = "result.pdf"

// ReceiptLines returns the five visible lines of the receipt in render
// order. The first line is the centered title.
func ReceiptLines(name, standard, subject string, score, total int) []string {
	return []string{
		"Exam Result",
		fmt.Sprintf("Name: %s", name),
		fmt.Sprintf("Standard: %s", standard),
		fmt.Sprintf("Subject: %s", subject),
		fmt.Sprintf("Score: %d/%d", score, total),
	}
}

// RenderReceipt produces the single-page PDF for one scored submission.
func RenderReceipt(name, standard, subject string, score, total int) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	lines := ReceiptLines(name, standard, subject, score, total)
	pdf.CellFormat(200, 10, lines[0], "", 1, "C", false, 0, "")
	for _, line := range lines[1:] {
		pdf.CellFormat(200, 10, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// DownloadHref wraps rendered bytes as a self-contained data URI the
// browser can save without another round trip.
func DownloadHref(pdfBytes []byte) string {
	return "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(pdfBytes)
}
