package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	vita49 "github.com/voyager-tech-inc/vita49-go"
	"github.com/voyager-tech-inc/vita49-go/internal/common"
)

// SaveCapturePDF renders the capture summary into a PDF document.
func SaveCapturePDF(c Capture, out string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("VRT Capture Report", false)
	pdf.SetAuthor("vrtdump", false)
	pdf.SetCreator("vrtdump", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	addPDFTitle(pdf, "VRT Capture Report")
	addSummarySection(pdf, c)
	addTypeSection(pdf, c.Summary.ByType)
	addStreamSection(pdf, c.Summary.StreamIDs)
	addFieldUseSection(pdf, c.Summary.FieldUse)
	addIntegritySection(pdf, c)

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.OutputFileAndClose(out)
}

func addPDFTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
}

func addSummarySection(pdf *gofpdf.Fpdf, c Capture) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	items := []struct {
		label string
		value string
	}{
		{label: "Capture", value: c.Path},
		{label: "Size", value: common.FormatBytes(c.SizeBytes)},
		{label: "Packets", value: strconv.Itoa(c.Summary.Packets)},
		{label: "Decode Errors", value: strconv.Itoa(c.Summary.DecodeErrors)},
		{label: "Generated", value: c.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
	}
	for _, item := range items {
		pdf.CellFormat(50, 6, item.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, item.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func addTypeSection(pdf *gofpdf.Fpdf, byType map[vita49.PacketType]int) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Packets by Type")
	pdf.Ln(9)

	types := make([]vita49.PacketType, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	renderCountTable(pdf, "Type", func(yield func(string, int)) {
		for _, t := range types {
			yield(t.String(), byType[t])
		}
	})
}

func addStreamSection(pdf *gofpdf.Fpdf, streams map[uint32]int) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Stream Identifiers")
	pdf.Ln(9)

	if len(streams) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "No stream identifiers observed.", "", "L", false)
		pdf.Ln(4)
		return
	}

	ids := make([]uint32, 0, len(streams))
	for id := range streams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return streams[ids[i]] > streams[ids[j]] })
	const maxRows = 16
	truncated := false
	if len(ids) > maxRows {
		ids = ids[:maxRows]
		truncated = true
	}

	renderCountTable(pdf, "Stream ID", func(yield func(string, int)) {
		for _, id := range ids {
			yield(fmt.Sprintf("0x%08X", id), streams[id])
		}
	})
	if truncated {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Showing the %d busiest of %d streams.", maxRows, len(streams)), "", "L", false)
		pdf.Ln(2)
	}
}

func addFieldUseSection(pdf *gofpdf.Fpdf, use map[string]int) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Context Field Usage")
	pdf.Ln(9)

	if len(use) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "No context fields observed.", "", "L", false)
		pdf.Ln(4)
		return
	}

	names := make([]string, 0, len(use))
	for name := range use {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if use[names[i]] != use[names[j]] {
			return use[names[i]] > use[names[j]]
		}
		return names[i] < names[j]
	})

	renderCountTable(pdf, "Field", func(yield func(string, int)) {
		for _, name := range names {
			yield(name, use[name])
		}
	})
}

func renderCountTable(pdf *gofpdf.Fpdf, label string, rows func(yield func(string, int))) {
	widths := []float64{110, 40}
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0], 7, label, "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[1], 7, "Count", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	rows(func(name string, count int) {
		text := strings.TrimSpace(name)
		if text == "" {
			text = "-"
		}
		pdf.CellFormat(widths[0], 6, text, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, strconv.Itoa(count), "1", 1, "L", false, 0, "")
	})
	pdf.Ln(4)
}

func addIntegritySection(pdf *gofpdf.Fpdf, c Capture) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Integrity")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, "SHA-256: "+c.Sha256, "", "L", false)

	png, err := CaptureHashToQR(c.Sha256, 256)
	if err != nil {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "QR code unavailable: "+err.Error(), "", "L", false)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture-digest", opts, bytes.NewReader(png))
	pdf.ImageOptions("capture-digest", 15, pdf.GetY()+2, 35, 35, false, opts, 0, "")
	pdf.Ln(40)
}
