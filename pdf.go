package main

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/SOV710/gitlsf/internal/counter"
)

const (
	pdfPageWidth   = 210 // A4 width in mm
	pdfMargin      = 10  // Margin in mm
	pdfLineHeight  = 5   // Line height in mm
	pdfFontSize    = 9
	pdfLinesColumn = 30 // Width of the line-count column in mm
)

// generatePDF writes the summary as a two-column table of paths and line
// counts, followed by the totals and an optional language breakdown.
func generatePDF(summary counter.CountSummary, title string, byLanguage bool, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pathColumn := float64(pdfPageWidth - 2*pdfMargin - pdfLinesColumn)

	pdf.SetFont("Helvetica", "B", pdfFontSize+3)
	pdf.MultiCell(0, pdfLineHeight+2, title, "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	tableHeader := func(left, right string) {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(pdfLinesColumn, pdfLineHeight+1, right, "1", 0, "R", true, 0, "")
		pdf.CellFormat(pathColumn, pdfLineHeight+1, left, "1", 1, "L", true, 0, "")
		pdf.SetFont("Courier", "", pdfFontSize)
	}

	tableHeader("File", "Lines")
	for _, f := range sortedFiles(summary) {
		pdf.CellFormat(pdfLinesColumn, pdfLineHeight, strconv.Itoa(f.Lines), "LR", 0, "R", false, 0, "")
		pdf.CellFormat(pathColumn, pdfLineHeight, f.Path, "LR", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", pdfFontSize)
	pdf.CellFormat(pdfLinesColumn, pdfLineHeight+1, strconv.Itoa(summary.TotalLines), "1", 0, "R", false, 0, "")
	pdf.CellFormat(pathColumn, pdfLineHeight+1, "total", "1", 1, "L", false, 0, "")

	if byLanguage {
		pdf.Ln(pdfLineHeight)
		tableHeader("Language", "Lines")
		for _, lt := range totalsByLanguage(summary) {
			pdf.CellFormat(pdfLinesColumn, pdfLineHeight, strconv.Itoa(lt.Lines), "LR", 0, "R", false, 0, "")
			pdf.CellFormat(pathColumn, pdfLineHeight, fmt.Sprintf("%s (%d files)", lt.Language, lt.Files), "LR", 1, "L", false, 0, "")
		}
		pdf.CellFormat(pdfLinesColumn+pathColumn, 0, "", "T", 1, "L", false, 0, "")
	}

	pdf.Ln(pdfLineHeight)
	pdf.SetFont("Helvetica", "", pdfFontSize)
	pdf.MultiCell(0, pdfLineHeight, fmt.Sprintf("Files: %d\nLines: %d", summary.FileCount, summary.TotalLines), "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}
