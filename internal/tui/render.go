package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/ageguess/internal/session"
	"github.com/f3rmion/ageguess/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

const scientist = "👩‍🔬"

func (m AppModel) renderForm() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Age Predictor"))
	b.WriteString("\n")

	submit := SubmitDisabledStyle.Render("⏎")
	if m.session.Name != "" {
		submit = SubmitEnabledStyle.Render("⏎")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", submit)
	b.WriteString(InputBoxStyle.Render(row))

	return b.String()
}

func (m AppModel) renderLoading() string {
	var b strings.Builder
	b.WriteString(BackStyle.Render("←"))
	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	return b.String()
}

func (m AppModel) renderSuccess() string {
	var b strings.Builder
	b.WriteString(BackStyle.Render("←"))
	b.WriteString("\n")

	// Size the bubble for the whole sentence so it does not grow while typing.
	textWidth := runewidth.StringWidth(m.typewriter.Text())
	if limit := m.width - 16; m.width > 0 && textWidth > limit {
		textWidth = max(limit, 10)
	}
	bubble := BubbleStyle.
		Width(textWidth + BubbleStyle.GetHorizontalPadding()).
		Render(m.typewriter.View())

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		scientist+" ",
		TriangleStyle.Render("◀"),
		bubble,
	))

	if m.typewriter.Done() && *m.session.Age != session.NotPredictable {
		if art := bigchar.GetCached(strconv.Itoa(*m.session.Age), 4); art != "" {
			b.WriteString("\n")
			b.WriteString(AgeStyle.Render(art))
		}
	}

	switch {
	case m.copied:
		b.WriteString("\n")
		b.WriteString(CopiedStyle.Render("Copied!"))
	case m.copyErr != nil:
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Copy failed: " + m.copyErr.Error()))
	}

	return b.String()
}

func (m AppModel) renderError() string {
	var b strings.Builder
	b.WriteString(BackStyle.Render("←"))
	b.WriteString("\n")
	b.WriteString(ErrorTitleStyle.Render("Error!"))
	b.WriteString("\n")
	b.WriteString(ErrorStyle.Render(m.session.Err))
	return b.String()
}
