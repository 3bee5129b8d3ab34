// Package packet renders the sponsorship packet PDF from site content.
package packet

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	pageWidth = 215.9 // Letter, mm
	margin    = 18.0
	qrSize    = 256
)

// QRCode returns a PNG QR code for url.
func QRCode(url string, size int) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	return png, nil
}

// Write renders the packet for site to w.
func Write(w io.Writer, site *content.Site) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(site.Team.Name+" Sponsorship Packet", true)
	pdf.SetAuthor(site.Team.Name, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	sp := site.Sponsorship
	contentWidth := pageWidth - 2*margin

	// Cover
	pdf.AddPage()
	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(0, 0, pageWidth, 90, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "BI", 34)
	pdf.SetXY(margin, 30)
	pdf.CellFormat(contentWidth, 14, tr(strings.ToUpper(site.Team.Name)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(59, 130, 246)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentWidth, 10, tr(strings.ToUpper(site.Team.Division+" "+sp.Title+" "+sp.Highlight)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(160, 160, 170)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth, 8, tr(site.Team.Tagline), "", 1, "L", false, 0, "")

	pdf.SetY(105)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "", 13)
	pdf.MultiCell(contentWidth, 7, tr(sp.Lead), "", "L", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth, 10, tr(sp.Goal), "", 1, "L", false, 0, "")

	// Quick view pages
	pdf.Ln(6)
	for i, pg := range sp.Pages {
		pdf.SetTextColor(120, 120, 130)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentWidth, 6, fmt.Sprintf("PAGE %02d", i+1), "", 1, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "BI", 14)
		pdf.CellFormat(contentWidth, 8, tr(strings.ToUpper(pg.Title)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range pg.Items {
			pdf.CellFormat(contentWidth, 6, tr("- "+item), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Budget
	pdf.AddPage()
	section(pdf, tr, contentWidth, "Budget Allocation")
	barWidth := contentWidth - 70
	for _, b := range sp.Budget {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(60, 8, tr(b.Label), "", 0, "L", false, 0, "")
		y := pdf.GetY()
		pdf.SetFillColor(228, 228, 231)
		pdf.Rect(margin+62, y+2.5, barWidth, 3, "F")
		pdf.SetFillColor(59, 130, 246)
		pdf.Rect(margin+62, y+2.5, barWidth*float64(b.Share)/100, 3, "F")
		pdf.SetX(margin + 62 + barWidth)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(8, 8, fmt.Sprintf("%d%%", b.Share), "", 1, "R", false, 0, "")
	}

	// Recognition
	pdf.Ln(8)
	section(pdf, tr, contentWidth, "Sponsor Recognition")
	for _, ch := range sp.Channels {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentWidth, 7, tr(ch.Title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentWidth, 5, tr(ch.Text), "", "L", false)
		pdf.Ln(2)
	}

	// In-kind and support
	pdf.Ln(6)
	section(pdf, tr, contentWidth, "In-Kind Donations")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(contentWidth, 6, tr(sp.InKind.Lead), "", "L", false)
	pdf.CellFormat(contentWidth, 7, tr(strings.Join(sp.InKind.Items, "  /  ")), "", 1, "L", false, 0, "")
	pdf.Ln(6)
	section(pdf, tr, contentWidth, "How To Support")
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range sp.Support {
		pdf.MultiCell(contentWidth, 6, tr("- "+s), "", "L", false)
	}

	// Contact
	pdf.Ln(8)
	section(pdf, tr, contentWidth, "Contact")
	c := site.Contact
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{c.Person, c.Email, c.Phone, "@" + strings.TrimPrefix(c.InstagramHandle, "@")} {
		pdf.CellFormat(contentWidth-45, 6, tr(line), "", 1, "L", false, 0, "")
	}

	qr, err := QRCode(c.InstagramURL, qrSize)
	if err != nil {
		return err
	}
	const qrName = "instagram-qr"
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrName, opts, bytes.NewReader(qr))
	pdf.ImageOptions(qrName, pageWidth-margin-35, pdf.GetY()-30, 35, 35, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render packet: %w", err)
	}

	slog.Debug("rendered sponsorship packet", "pages", pdf.PageCount())
	return nil
}

// Bytes renders the packet into memory.
func Bytes(site *content.Site) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, site); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, width float64, title string) {
	pdf.SetTextColor(59, 130, 246)
	pdf.SetFont("Helvetica", "BI", 16)
	pdf.CellFormat(width, 10, tr(strings.ToUpper(title)), "B", 1, "L", false, 0, "")
	pdf.SetTextColor(20, 20, 20)
	pdf.Ln(3)
}
