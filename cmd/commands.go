package cmd

import (
	"os"

	"github.com/anisan-cli/anibot/auth"
	"github.com/anisan-cli/anibot/bot"
	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/icon"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/style"
	"github.com/anisan-cli/anibot/util"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().BoolP("sync", "s", false, "Register the slash commands with Discord")
	commandsCmd.Flags().BoolP("force", "f", false, "Register even when the command set is unchanged since the last sync")
	commandsCmd.Flags().StringP("guild", "g", "", "Register for a single guild only")
	lo.Must0(viper.BindPFlag(key.DiscordGuildID, commandsCmd.Flags().Lookup("guild")))

	commandsCmd.SetOut(os.Stdout)
}

// commandsCmd lists the slash commands and optionally registers them.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the slash commands and register them with Discord",
	Run: func(cmd *cobra.Command, args []string) {
		guildID := viper.GetString(key.DiscordGuildID)

		for _, c := range bot.Commands {
			cmd.Printf("%s %s\n", style.Fg(color.Purple)("/"+c.Name), style.Faint(c.Description))
		}
		cmd.Println()

		if !lo.Must(cmd.Flags().GetBool("sync")) {
			synced, err := bot.Synced(bot.Commands, guildID)
			handleErr(err)

			if synced {
				cmd.Println(style.Fg(color.Green)("registered set is up to date"))
			} else {
				cmd.Println(style.Fg(color.Yellow)("changed since the last sync, run with --sync to register"))
			}
			return
		}

		token, err := auth.Resolve(auth.DiscordToken)
		handleErr(err)

		s, err := discordgo.New("Bot " + token)
		handleErr(err)

		me, err := s.User("@me")
		handleErr(err)

		registered, err := bot.Sync(s, me.ID, guildID, bot.Commands, lo.Must(cmd.Flags().GetBool("force")))
		handleErr(err)

		scope := "globally"
		if guildID != "" {
			scope = "for guild " + guildID
		}

		if registered {
			cmd.Printf("%s registered %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Quantify(len(bot.Commands), "command", "commands"), scope)
		} else {
			cmd.Printf("%s commands unchanged, nothing to register\n", icon.Get(icon.Success))
		}
	},
}
