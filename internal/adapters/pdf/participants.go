package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"seminarmanager/internal/domain"
	"seminarmanager/internal/sanitize"
)

// minTableRows is the minimum number of participant rows, so late arrivals can sign by hand.
const minTableRows = 10

type participantSheet struct {
	loc *time.Location
}

// NewParticipantSheetRenderer returns a renderer for the printable A4 participant
// list (seminar details plus a Name/Unterschrift table). Times are printed in loc.
func NewParticipantSheetRenderer(loc *time.Location) domain.ParticipantSheetRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &participantSheet{loc: loc}
}

func (r *participantSheet) Render(w io.Writer, seminar *domain.SeminarSummary, participants []*domain.Participant) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(14, 14, 14)
	doc.SetAutoPageBreak(true, 14)
	doc.SetTitle(seminar.Title, true)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 9, tr(seminar.Title), "", "C", false)
	doc.Ln(4)

	if desc := sanitize.Text(seminar.Description); desc != "" {
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 5.5, tr(desc), "", "L", false)
		doc.Ln(3)
	}

	starts := seminar.StartsAt.In(r.loc)
	info := [][2]string{
		{"Datum und Uhrzeit:", fmt.Sprintf("%s, %s Uhr", starts.Format("02.01.2006"), starts.Format("15:04"))},
		{"Ort:", locationLine(seminar.Location)},
		{"Preis:", priceLabel(seminar.Price)},
		{"Max. Teilnehmer:", maxParticipantsLabel(seminar.MaxParticipants)},
	}
	for _, row := range info {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(40, 6, tr(row[0]), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 6, tr(row[1]), "", "L", false)
	}
	doc.Ln(6)

	const colWidth = 91
	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(211, 211, 211)
	doc.SetDrawColor(128, 128, 128)
	doc.CellFormat(colWidth, 9, "Name", "1", 0, "L", true, 0, "")
	doc.CellFormat(colWidth, 9, "Unterschrift", "1", 1, "L", true, 0, "")

	doc.SetFont("Helvetica", "", 11)
	rows := len(participants)
	if rows < minTableRows {
		rows = minTableRows
	}
	for i := 0; i < rows; i++ {
		name := ""
		if i < len(participants) {
			name = participants[i].FullName()
		}
		doc.CellFormat(colWidth, 9, tr(name), "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidth, 9, "", "1", 1, "L", false, 0, "")
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render participant sheet: %w", err)
	}
	return nil
}

func locationLine(loc *domain.Location) string {
	if loc == nil {
		return "Keine Angabe"
	}
	line := fmt.Sprintf("%s, %s %s, %s %s", loc.Name, loc.Street, loc.HouseNumber, loc.ZipCode, loc.City)
	if loc.Remarks != nil && *loc.Remarks != "" {
		line += ", Anmerkungen: " + *loc.Remarks
	}
	return line
}

func priceLabel(price *float64) string {
	if price == nil || *price < 0 {
		return "Kostenfrei"
	}
	return strings.Replace(fmt.Sprintf("%.2f €", *price), ".", ",", 1)
}

func maxParticipantsLabel(max *int) string {
	if max == nil || *max == 0 {
		return "Keine Angabe"
	}
	return fmt.Sprintf("%d", *max)
}
