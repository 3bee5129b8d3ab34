package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedSite(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eclipseroboticsca@gmail.com", s.Contact.Email)
	assert.Equal(t, "mailto:eclipseroboticsca@gmail.com", s.Contact.Mailto())
	assert.Equal(t, "Paul Corisuelo Valencia", s.Contact.Person)
	assert.Equal(t, "(209) 689-6655", s.Contact.Phone)
	assert.Equal(t, "/Eclipse_Robotics_Sponsorship_Packet.pdf", s.Packet.Path)

	assert.Len(t, s.Performance.Stats, 4)
	assert.Len(t, s.Performance.Features, 3)
	assert.Len(t, s.TeamPanel.Disciplines, 2)
	assert.Equal(t, "Collective", s.TeamPanel.Highlight)
	assert.Len(t, s.Sponsorship.Pages, 4)
	assert.Len(t, s.Sponsorship.Budget, 4)
	assert.Len(t, s.Sponsorship.Channels, 4)
	assert.Equal(t, []string{"Aluminum", "Lexan", "Tools", "Team Meals"}, s.Sponsorship.InKind.Items)
	assert.Equal(t, "Seasonal Goal: $10,000", s.Sponsorship.Goal)
	assert.Equal(t, "Touch", s.ContactPage.Highlight)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing email",
			doc:     "packet: {path: /p.pdf, filename: p.pdf}",
			wantErr: "contact email is required",
		},
		{
			name:    "missing packet",
			doc:     "contact: {email: a@b.c}",
			wantErr: "packet path and filename are required",
		},
		{
			name: "budget not 100",
			doc: `contact: {email: a@b.c}
packet: {path: /p.pdf, filename: p.pdf}
sponsorship:
  budget:
    - {label: Parts, share: 60}
    - {label: Travel, share: 30}`,
			wantErr: "add up to 90",
		},
		{
			name:    "not yaml",
			doc:     "contact: [",
			wantErr: "decode site content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
