package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/style"
	"github.com/anisan-cli/anibot/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

// defaultWidth is used until the terminal reports its size.
const defaultWidth = 80

func hex(c view.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", int(c)))
}

// renderEmbed draws an embed as a bordered card no wider than width.
func renderEmbed(e *view.Embed, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	inner := max(width-4, 10)

	var lines []string
	lines = append(lines, style.Bold(style.Fg(hex(e.Color))(e.Title)))

	if e.Description != "" {
		lines = append(lines, "", wrap.String(e.Description, inner))
	}

	for _, f := range e.Fields {
		lines = append(lines, "", style.Fg(color.Purple)(f.Name), wrap.String(f.Value, inner))
	}

	if e.Image != "" {
		lines = append(lines, "", style.Faint(e.Image))
	}

	if e.Footer != "" {
		lines = append(lines, "", style.Faint(wrap.String(e.Footer, inner)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hex(e.Color)).
		Padding(0, 1).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

// renderButtons draws controls inline, dimming disabled ones.
func renderButtons(buttons []view.Button) string {
	return strings.Join(lo.Map(buttons, func(b view.Button, _ int) string {
		label := "[" + b.Label + "]"
		if b.Disabled {
			return style.Faint(label)
		}
		return style.Fg(color.Cyan)(label)
	}), " ")
}

// RenderReply draws a reply for a terminal of the given width.
func RenderReply(r view.Reply, width int) string {
	parts := lo.Map(r.Embeds, func(e *view.Embed, _ int) string {
		return renderEmbed(e, width)
	})
	if r.Content != "" {
		parts = append([]string{wrap.String(r.Content, width)}, parts...)
	}
	if len(r.Buttons) > 0 {
		parts = append(parts, renderButtons(r.Buttons))
	}
	return strings.Join(parts, "\n")
}
