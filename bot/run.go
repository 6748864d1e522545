package bot

import (
	"context"
	"fmt"

	"github.com/anisan-cli/anibot/log"
	"github.com/bwmarrin/discordgo"
)

// RunOptions configure the gateway connection.
type RunOptions struct {
	Token        string
	GuildID      string
	SyncCommands bool
}

// Run connects to the gateway and answers interactions until ctx is done.
func (b *Bot) Run(ctx context.Context, opts RunOptions) error {
	s, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds

	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithFields(log.Fields{"user": r.User.Username, "guilds": len(r.Guilds)}).Info("connected")
	})

	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.Handle(ctx, s, i.Interaction)
	})

	if err := s.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Warn(err)
		}
	}()

	if opts.SyncCommands {
		if _, err := Sync(s, s.State.User.ID, opts.GuildID, Commands, false); err != nil {
			return err
		}
	}

	<-ctx.Done()
	log.Info("shutting down")
	return nil
}
