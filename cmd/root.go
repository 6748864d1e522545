// Package cmd implements the command-line interface for anibot.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/constant"
	"github.com/anisan-cli/anibot/icon"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/log"
	"github.com/anisan-cli/anibot/style"
	"github.com/anisan-cli/anibot/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("guild", "g", "", "Register slash commands for a single guild only")
	lo.Must0(viper.BindPFlag(key.DiscordGuildID, rootCmd.Flags().Lookup("guild")))

	rootCmd.Flags().String("status", "", "Serve health and stats on this address, e.g. :8080")
	lo.Must0(viper.BindPFlag(key.StatusAddress, rootCmd.Flags().Lookup("status")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd runs the bot.
var rootCmd = &cobra.Command{
	Use:   constant.Anibot,
	Short: "A Discord bot for MyAnimeList lookups and rating games",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A Discord bot for MyAnimeList lookups and rating games"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(runBot(cmd.Context()))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
