package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seminarmanager/internal/domain"
)

func TestParticipantSheet_Render(t *testing.T) {
	price := 25.0
	max := 12
	seminar := &domain.SeminarSummary{
		Seminar: domain.Seminar{
			Title:           "Stressbewältigung",
			Description:     "<p>Ein Abend über <strong>Pausen</strong>.</p>",
			StartsAt:        time.Date(2026, 5, 1, 16, 0, 0, 0, time.UTC),
			Price:           &price,
			MaxParticipants: &max,
		},
		Location: &domain.Location{Name: "Gemeindehaus", Street: "Hauptstraße", HouseNumber: "1", ZipCode: "79098", City: "Freiburg"},
	}
	participants := []*domain.Participant{
		{FirstName: "Ada", LastName: "Lovelace"},
		{FirstName: "Jürgen", LastName: "Müller"},
	}

	var buf bytes.Buffer
	r := NewParticipantSheetRenderer(time.UTC)
	require.NoError(t, r.Render(&buf, seminar, participants))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestParticipantSheet_Render_without_location(t *testing.T) {
	seminar := &domain.SeminarSummary{Seminar: domain.Seminar{Title: "Ohne Ort", StartsAt: time.Now()}}

	var buf bytes.Buffer
	require.NoError(t, NewParticipantSheetRenderer(nil).Render(&buf, seminar, nil))
	assert.NotZero(t, buf.Len())
}

func TestLabels(t *testing.T) {
	free := -1.0
	paid := 19.5
	zero := 0
	ten := 10

	assert.Equal(t, "Kostenfrei", priceLabel(nil))
	assert.Equal(t, "Kostenfrei", priceLabel(&free))
	assert.Equal(t, "19,50 €", priceLabel(&paid))
	assert.Equal(t, "Keine Angabe", maxParticipantsLabel(nil))
	assert.Equal(t, "Keine Angabe", maxParticipantsLabel(&zero))
	assert.Equal(t, "10", maxParticipantsLabel(&ten))
	assert.Equal(t, "Keine Angabe", locationLine(nil))

	remarks := "2. OG"
	assert.Equal(t, "Saal, Weg 3, 10115 Berlin, Anmerkungen: 2. OG",
		locationLine(&domain.Location{Name: "Saal", Street: "Weg", HouseNumber: "3", ZipCode: "10115", City: "Berlin", Remarks: &remarks}))
}
