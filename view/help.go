package view

import (
	_ "embed"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed help.yaml
var helpYAML []byte

// HelpSection is a group of command synopses on the overview page.
type HelpSection struct {
	Section string   `yaml:"section"`
	Lines   []string `yaml:"lines"`
}

// CommandHelp documents a single command.
type CommandHelp struct {
	Name         string `yaml:"name"`
	Usage        string `yaml:"usage"`
	Description  string `yaml:"description"`
	Example      string `yaml:"example"`
	Statuses     string `yaml:"statuses,omitempty"`
	RankingTypes string `yaml:"ranking_types,omitempty"`
	Seasons      string `yaml:"seasons,omitempty"`
	SortOptions  string `yaml:"sort_options,omitempty"`
	Difficulties string `yaml:"difficulties,omitempty"`
}

// HelpData is the whole help document.
type HelpData struct {
	Sections []HelpSection `yaml:"overview"`
	Commands []CommandHelp `yaml:"commands"`
}

// Help is the help document embedded in the binary.
var Help = lo.Must(ParseHelp(helpYAML))

// ParseHelp decodes a help document.
func ParseHelp(data []byte) (*HelpData, error) {
	var h HelpData
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("help: %w", err)
	}
	return &h, nil
}

// Names lists the documented commands in document order.
func (h *HelpData) Names() []string {
	return lo.Map(h.Commands, func(c CommandHelp, _ int) string {
		return c.Name
	})
}

// Lookup finds a command by name, ignoring case.
func (h *HelpData) Lookup(name string) (CommandHelp, bool) {
	return lo.Find(h.Commands, func(c CommandHelp) bool {
		return c.Name == strings.ToLower(name)
	})
}

const (
	helpFooter    = "Powered by MyAnimeList"
	suggestCutoff = 3
)

// Suggest returns the closest command name when it is near enough to be a typo.
func (h *HelpData) Suggest(name string) (string, bool) {
	if len(h.Commands) == 0 {
		return "", false
	}

	name = strings.ToLower(name)
	closest := lo.MinBy(h.Names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return closest, levenshtein.Distance(name, closest) <= suggestCutoff
}

// Overview is the embed listing every command.
func (h *HelpData) Overview() *Embed {
	e := NewEmbed("📖 Bot Command Help", Blurple).Describe(
		"Use `/help <command>` for detailed info\nExample: `/help search`\n`< >` are required fields\n`[ ]` are optional fields",
	)
	for _, s := range h.Sections {
		e.Field(s.Section, strings.Join(s.Lines, "\n"), false)
	}
	return e.Foot(helpFooter)
}

// Command renders the help of one command, or an unknown-command notice.
func (h *HelpData) Command(name string) *Embed {
	c, ok := h.Lookup(name)
	if !ok {
		text := fmt.Sprintf("'%s' is not a valid command.\nUse `/help` to see all available commands.", strings.ToLower(name))
		if s, ok := h.Suggest(name); ok {
			text += fmt.Sprintf("\nDid you mean `/help %s`?", s)
		}
		return NewEmbed("❌ Unknown Command", Red).Describe(text)
	}

	e := NewEmbed("📖 Help: /"+c.Name, Green).
		Field("Usage", "`"+c.Usage+"`", false).
		Field("Description", c.Description, false)

	optional := []struct{ name, value string }{
		{"Valid Statuses", c.Statuses},
		{"Ranking Types", c.RankingTypes},
		{"Valid Seasons", c.Seasons},
		{"Sort Options", c.SortOptions},
		{"Difficulties", c.Difficulties},
	}
	for _, o := range optional {
		if o.value != "" {
			e.Field(o.name, o.value, false)
		}
	}

	return e.Field("Example", c.Example, false).Foot(helpFooter)
}

// HelpHint is appended to validation messages.
func HelpHint(command string) string {
	return fmt.Sprintf(" Use `/help %s` for more info.", command)
}
