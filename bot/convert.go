package bot

import (
	"github.com/anisan-cli/anibot/view"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var buttonStyles = map[view.ButtonStyle]discordgo.ButtonStyle{
	view.Primary:   discordgo.PrimaryButton,
	view.Secondary: discordgo.SecondaryButton,
	view.Success:   discordgo.SuccessButton,
	view.Danger:    discordgo.DangerButton,
}

func toEmbed(e *view.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       int(e.Color),
		Fields: lo.Map(e.Fields, func(f view.Field, _ int) *discordgo.MessageEmbedField {
			return &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline}
		}),
	}

	if e.Image != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: e.Image}
	}
	if e.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}

	return out
}

func toEmbeds(r view.Reply) []*discordgo.MessageEmbed {
	return lo.Map(r.Embeds, func(e *view.Embed, _ int) *discordgo.MessageEmbed {
		return toEmbed(e)
	})
}

// toComponents lays out the reply's controls, each addressed to the control id.
func toComponents(r view.Reply, id uuid.UUID) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent

	if r.Select != nil && len(r.Select.Options) > 0 {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    customID(id, selectAction),
					Placeholder: r.Select.Placeholder,
					Options: lo.Map(r.Select.Options, func(o view.Option, _ int) discordgo.SelectMenuOption {
						return discordgo.SelectMenuOption{Label: o.Label, Value: o.Value}
					}),
				},
			},
		})
	}

	if len(r.Buttons) > 0 {
		rows = append(rows, discordgo.ActionsRow{
			Components: lo.Map(r.Buttons, func(b view.Button, _ int) discordgo.MessageComponent {
				return discordgo.Button{
					Label:    b.Label,
					Style:    buttonStyles[b.Style],
					CustomID: customID(id, b.Action),
					Disabled: b.Disabled,
				}
			}),
		})
	}

	return rows
}

func flags(r view.Reply) discordgo.MessageFlags {
	if r.Ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}

func responseData(r view.Reply, id uuid.UUID) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content:    r.Content,
		Embeds:     toEmbeds(r),
		Components: toComponents(r, id),
		Flags:      flags(r),
	}
}

func webhookParams(r view.Reply, id uuid.UUID) *discordgo.WebhookParams {
	return &discordgo.WebhookParams{
		Content:    r.Content,
		Embeds:     toEmbeds(r),
		Components: toComponents(r, id),
		Flags:      flags(r),
	}
}
