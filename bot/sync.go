package bot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anisan-cli/anibot/filesystem"
	"github.com/anisan-cli/anibot/log"
	"github.com/anisan-cli/anibot/where"
	"github.com/bwmarrin/discordgo"
	"github.com/metafates/gache"
)

// Registrar replaces the registered command set of an application.
type Registrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// syncRecord is what the digest cache remembers about the last registration.
type syncRecord struct {
	Digest  string `json:"digest"`
	GuildID string `json:"guild_id"`
}

var digestCacher = gache.New[syncRecord](&gache.Options{
	Path:       where.CommandDigest(),
	Lifetime:   time.Hour * 24 * 30,
	FileSystem: &filesystem.GacheFs{},
})

// Digest fingerprints a command set.
func Digest(commands []*discordgo.ApplicationCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "", fmt.Errorf("encode commands: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Synced reports whether commands were already registered for guildID, as recorded by the last Sync.
func Synced(commands []*discordgo.ApplicationCommand, guildID string) (bool, error) {
	digest, err := Digest(commands)
	if err != nil {
		return false, err
	}

	last, expired, err := digestCacher.Get()
	if err != nil {
		return false, err
	}

	return !expired && last.Digest == digest && last.GuildID == guildID, nil
}

// Sync registers commands for appID, globally or for a single guild.
// Unless forced, registration is skipped when the set is unchanged since the last sync.
// It reports whether a registration happened.
func Sync(r Registrar, appID, guildID string, commands []*discordgo.ApplicationCommand, force bool) (bool, error) {
	if !force {
		synced, err := Synced(commands, guildID)
		if err != nil {
			log.Warn(err)
		} else if synced {
			log.Debug("slash commands unchanged, skipping registration")
			return false, nil
		}
	}

	if _, err := r.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return false, fmt.Errorf("register commands: %w", err)
	}

	digest, err := Digest(commands)
	if err != nil {
		return true, err
	}

	if err := digestCacher.Set(syncRecord{Digest: digest, GuildID: guildID}); err != nil {
		log.Warn(err)
	}

	log.WithFields(log.Fields{"commands": len(commands), "guild": guildID}).Info("registered slash commands")
	return true, nil
}
