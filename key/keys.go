// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Discord gateway and command registration.
const (
	DiscordToken        = "discord.token"
	DiscordGuildID      = "discord.guild_id"
	DiscordSyncCommands = "discord.sync_commands"
)

// MyAnimeList API access.
const (
	MALClientID = "mal.client_id"
	MALEndpoint = "mal.endpoint"
	MALTimeout  = "mal.timeout"
)

// Interactive controls attached to bot messages.
const (
	BotControlTimeout = "bot.control_timeout"
)

// Game defaults applied when a command omits its options.
const (
	GameDefaultPoolSize   = "game.default_pool_size"
	GameDefaultDifficulty = "game.default_difficulty"
	GameDefaultRanking    = "game.default_ranking"
)

// Status server.
const (
	StatusAddress = "status.address"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite    = "logs.write"
	LogsLevel    = "logs.level"
	LogsJson     = "logs.json"
	LogsKeepDays = "logs.keep_days"
)

// Browser used by "lookup --open".
const (
	BrowserApp = "browser.app"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
