package bot

import (
	"github.com/anisan-cli/anibot/view"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// Responder is the part of a Discord session used to answer interactions.
type Responder interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// exchange is one interaction and the answers given to it so far.
// The first answer must be an interaction response; anything after is a followup.
type exchange struct {
	r        Responder
	i        *discordgo.Interaction
	answered bool
}

func newExchange(r Responder, i *discordgo.Interaction) *exchange {
	return &exchange{r: r, i: i}
}

// user is the ID of whoever caused the interaction, in a guild or a direct message.
func (x *exchange) user() string {
	if x.i.Member != nil && x.i.Member.User != nil {
		return x.i.Member.User.ID
	}
	if x.i.User != nil {
		return x.i.User.ID
	}
	return ""
}

func (x *exchange) respond(kind discordgo.InteractionResponseType, data *discordgo.InteractionResponseData) error {
	x.answered = true
	return x.r.InteractionRespond(x.i, &discordgo.InteractionResponse{Type: kind, Data: data})
}

// wait acknowledges a slow command; the reply follows once it is ready.
func (x *exchange) wait() error {
	if x.answered {
		return nil
	}
	return x.respond(discordgo.InteractionResponseDeferredChannelMessageWithSource, nil)
}

// ack acknowledges a component click without changing its message.
func (x *exchange) ack() error {
	if x.answered {
		return nil
	}
	return x.respond(discordgo.InteractionResponseDeferredMessageUpdate, nil)
}

// send posts reply as a new message. Controls in it are addressed to id.
func (x *exchange) send(reply view.Reply, id uuid.UUID) error {
	if !x.answered {
		return x.respond(discordgo.InteractionResponseChannelMessageWithSource, responseData(reply, id))
	}

	_, err := x.r.FollowupMessageCreate(x.i, true, webhookParams(reply, id))
	return err
}

// text posts a plain message.
func (x *exchange) text(reply view.Reply) error {
	return x.send(reply, uuid.Nil)
}

// update replaces the message the clicked component belongs to.
func (x *exchange) update(reply view.Reply, id uuid.UUID) error {
	return x.respond(discordgo.InteractionResponseUpdateMessage, responseData(reply, id))
}
