package cmd

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/anibot/auth"
	"github.com/anisan-cli/anibot/color"
	"github.com/anisan-cli/anibot/icon"
	"github.com/anisan-cli/anibot/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.SetOut(os.Stdout)
}

// authCmd manages the credentials stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Discord token and MyAnimeList client ID",
	Long: `Manage the credentials the bot runs with.
Values set in the config file or environment take precedence over the keyring.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompt for the credentials and store them in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		for _, secret := range auth.Secrets {
			var value string
			prompt := &survey.Password{
				Message: secret.Label + ":",
				Help:    "Leave empty to keep the current value",
			}
			handleErr(survey.AskOne(prompt, &value))

			if value == "" {
				continue
			}

			handleErr(auth.Set(secret, value))
			cmd.Printf("%s stored %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), secret.Label)
		}
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where each credential is resolved from",
	Run: func(cmd *cobra.Command, args []string) {
		for _, secret := range auth.Secrets {
			cmd.Printf("%s: %s\n", style.Bold(secret.Label), credentialSource(secret))
		}
	},
}

func credentialSource(secret auth.Secret) string {
	if viper.GetString(secret.ConfigKey) != "" {
		return style.Fg(color.Green)("config (" + secret.ConfigKey + ")")
	}

	v, err := auth.Get(secret)
	switch {
	case errors.Is(err, keyring.ErrNotFound), err == nil && v == "":
		return style.Fg(color.Red)("missing")
	case err != nil:
		return style.Fg(color.Red)("keyring error: " + err.Error())
	default:
		return style.Fg(color.Green)("keyring")
	}
}

func init() {
	authCmd.AddCommand(authClearCmd)
	authClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored credentials from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{Message: "Remove all stored credentials?"}, &confirmed))
			if !confirmed {
				return
			}
		}

		for _, secret := range auth.Secrets {
			handleErr(auth.Delete(secret))
		}

		cmd.Printf("%s cleared stored credentials\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
