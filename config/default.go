// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/constant"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Anibot + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DiscordToken, "", "Discord bot token.\nFalls back to the system keyring when empty, see \"anibot auth set\"")
	register(key.DiscordGuildID, "", "Register commands for a single guild instead of globally.\nGuild commands update instantly, useful while testing")
	register(key.DiscordSyncCommands, true, "Register slash commands on startup when they have changed since the last sync")
	register(key.MALClientID, "", "MyAnimeList API client ID sent as X-MAL-Client-ID.\nFalls back to the system keyring when empty")
	register(key.MALEndpoint, "https://api.myanimelist.net/v2", "Base URL of the MyAnimeList v2 API")
	register(key.MALTimeout, 30, "Timeout in seconds for a single MyAnimeList request")
	register(key.BotControlTimeout, 300, "Seconds after which buttons and dropdowns on a bot message stop responding")
	register(key.GameDefaultPoolSize, 500, "Anime pool size used when a game command omits the limit")
	register(key.GameDefaultDifficulty, "medium", "Guess game difficulty used when omitted.\nAvailable options are: easy, medium, hard")
	register(key.GameDefaultRanking, "bypopularity", "Ranking used to build game pools when omitted.\nAvailable options are: bypopularity, airing, movie, favorite")
	register(key.StatusAddress, "", "Listen address of the status server, e.g. \":8080\".\nDisabled when empty")
	register(key.IconsVariant, "emoji", "Icons variant.\nAvailable options are: emoji, nerd, plain, kaomoji, squares")
	register(key.BrowserApp, "", "Browser that opens MyAnimeList pages.\nThe system default handler is used when empty")
	register(key.LogsWrite, false, "Write logs to a file in the logs directory instead of stderr")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsKeepDays, 14, "Days to keep log files before they are removed on startup.\nZero keeps them forever")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when showing help or version")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
