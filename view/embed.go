// Package view builds platform-neutral render models for bot replies.
package view

import (
	"github.com/anisan-cli/anibot/anime"
)

// Color is a 24-bit RGB value.
type Color int

// Accent colors of the reply kinds.
const (
	Blue    Color = 0x3498db
	Green   Color = 0x2ecc71
	Gold    Color = 0xf1c40f
	Red     Color = 0xe74c3c
	Purple  Color = 0x9b59b6
	Blurple Color = 0x5865f2
)

// Length limits enforced on every embed.
const (
	TitleLimit       = 256
	DescriptionLimit = 4096
	FieldNameLimit   = 256
	FieldValueLimit  = 1024
	FooterLimit      = 2048
	FieldCountLimit  = 25
	LabelLimit       = 100
)

// Field is a named block of an embed.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a structured message: a title, a color, body text, an image and ordered fields.
type Embed struct {
	Title       string
	Description string
	Color       Color
	Image       string
	Fields      []Field
	Footer      string
}

// NewEmbed starts an embed with the given title and color.
func NewEmbed(title string, color Color) *Embed {
	return &Embed{Title: anime.Truncate(title, TitleLimit), Color: color}
}

// Describe sets the body text.
func (e *Embed) Describe(text string) *Embed {
	e.Description = anime.Truncate(text, DescriptionLimit)
	return e
}

// Field appends a block. Empty values are replaced by a placeholder, since platforms reject them.
func (e *Embed) Field(name, value string, inline bool) *Embed {
	if len(e.Fields) >= FieldCountLimit {
		return e
	}
	if value == "" {
		value = anime.NotAvailable
	}
	e.Fields = append(e.Fields, Field{
		Name:   anime.Truncate(name, FieldNameLimit),
		Value:  anime.Truncate(value, FieldValueLimit),
		Inline: inline,
	})
	return e
}

// Picture sets the image when present.
func (e *Embed) Picture(url string) *Embed {
	e.Image = url
	return e
}

// Foot sets the footer text.
func (e *Embed) Foot(text string) *Embed {
	e.Footer = anime.Truncate(text, FooterLimit)
	return e
}

// ButtonStyle hints at how a button is drawn.
type ButtonStyle int

const (
	Primary ButtonStyle = iota
	Secondary
	Success
	Danger
)

// Button is an interactive control attached to a reply.
type Button struct {
	Action   string
	Label    string
	Style    ButtonStyle
	Disabled bool
}

// Option is an entry of a single-select dropdown.
type Option struct {
	Label string
	Value string
}

// Select is a single-select dropdown.
type Select struct {
	Placeholder string
	Options     []Option
}

// Reply is a complete message: optional text, embeds and controls.
type Reply struct {
	Content string
	Embeds  []*Embed
	Buttons []Button
	Select  *Select
	// Ephemeral replies are visible only to the invoking user.
	Ephemeral bool
}

// Text returns a reply with only a message.
func Text(content string) Reply {
	return Reply{Content: content}
}

// Private returns an ephemeral text reply.
func Private(content string) Reply {
	return Reply{Content: content, Ephemeral: true}
}
