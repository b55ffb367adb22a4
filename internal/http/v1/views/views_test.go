package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/domain/models"
)

func TestRenderHome(t *testing.T) {
	r := MustNew()

	view := &models.HomeView{
		Email:    "a@x.com",
		Username: "alice",
		Team:     "TeamA",
		Matches: []models.Match{
			{Team1: "TeamA", Team2: "TeamB", Stage: "Group A", Venue: "Lusail Stadium",
				Kickoff: time.Date(2022, 11, 20, 16, 0, 0, 0, time.UTC)},
		},
		Teams: []models.Team{{Name: "TeamA"}, {Name: "TeamB"}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageHome, view))

	out := buf.String()
	assert.Contains(t, out, `<span id="username">alice</span>`)
	assert.Contains(t, out, "TeamA vs TeamB")
	assert.Contains(t, out, `<td class="opponent">TeamB</td>`)
	assert.Contains(t, out, "Sun 20 Nov 16:00 UTC")
	assert.Contains(t, out, `<option value="TeamA" selected>`)
}

func TestRenderRegisterEscapesInput(t *testing.T) {
	r := MustNew()

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageRegister, RegisterPage{
		Username: `<script>alert(1)</script>`,
		Error:    "Passwords must match",
	}))

	assert.Contains(t, buf.String(), "Passwords must match")
	assert.NotContains(t, buf.String(), "<script>")
}

func TestRenderUnknownPage(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, MustNew().Render(&buf, "missing", nil))
	assert.Zero(t, buf.Len())
}
