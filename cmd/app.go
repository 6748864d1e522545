package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anisan-cli/anibot/auth"
	"github.com/anisan-cli/anibot/bot"
	"github.com/anisan-cli/anibot/game"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/log"
	"github.com/anisan-cli/anibot/mal"
	"github.com/anisan-cli/anibot/session"
	"github.com/anisan-cli/anibot/status"
	"github.com/spf13/viper"
)

// newClient builds the MyAnimeList client from the resolved client ID.
func newClient() (*mal.Client, error) {
	clientID, err := auth.Resolve(auth.MALClientID)
	if err != nil {
		return nil, err
	}
	return mal.NewFromConfig(clientID), nil
}

func newEngines(client *mal.Client) (*game.GuessEngine, *game.HigherLowerEngine) {
	source := game.NewMALSource(client)
	return game.NewGuessEngine(source, session.NewMemory[*game.GuessSession](), game.DefaultRand),
		game.NewHigherLowerEngine(source, session.NewMemory[*game.HigherLowerSession](), game.DefaultRand)
}

// runBot serves interactions until interrupted.
func runBot(ctx context.Context) error {
	token, err := auth.Resolve(auth.DiscordToken)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	guess, higherLower := newEngines(client)
	controls := bot.NewControls(time.Duration(viper.GetInt(key.BotControlTimeout)) * time.Second)
	b := bot.New(client, guess, higherLower, controls, bot.DefaultsFromConfig())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := viper.GetString(key.StatusAddress); addr != "" {
		go func() {
			if err := status.NewServer(b).ListenAndServe(ctx, addr); err != nil {
				log.Error(err)
			}
		}()
	}

	return b.Run(ctx, bot.RunOptions{
		Token:        token,
		GuildID:      viper.GetString(key.DiscordGuildID),
		SyncCommands: viper.GetBool(key.DiscordSyncCommands),
	})
}
