package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/icon"
	"github.com/anisan-cli/anibot/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case errorState:
		return b.viewError()
	case guessState:
		return b.viewReply(b.inputC.View())
	case higherLowerState, browseState:
		return b.viewReply()
	case overState:
		return b.viewReply(b.viewFinal())
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) contentWidth() int {
	if b.width <= 0 {
		return defaultWidth
	}
	return max(b.width-4, 20)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " Fetching anime from MyAnimeList",
	})
}

func (b *statefulBubble) viewReply(extra ...string) string {
	lines := []string{RenderReply(b.reply, b.contentWidth())}

	if b.notice != "" {
		lines = append(lines, "", style.Fg(color.Yellow)(icon.Get(icon.Fail)+" "+b.notice))
	}

	if len(extra) > 0 {
		lines = append(lines, "")
		lines = append(lines, extra...)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewFinal() string {
	if b.options.Mode == HigherLowerMode {
		return style.Bold(fmt.Sprintf("%s Final streak: %d", icon.Get(icon.Streak), b.final))
	}
	return style.Bold(fmt.Sprintf("%s Final score: %d", icon.Get(icon.Score), b.final))
}

func (b *statefulBubble) viewError() string {
	message := style.Fg(color.Red)(b.lastError.Error())
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " An error occurred:",
		"",
		wrap.String(message, b.contentWidth()),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := strings.Count(l, "\n") + 1; b.height > h+2 {
			l += strings.Repeat("\n", b.height-h-2)
		}
		l += "\n" + b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
