// Package open launches web pages, such as MyAnimeList entries, in a browser.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anisan-cli/anibot/constant"
)

// URL opens u with the system default handler, or with browser when it is set, without waiting for it to exit.
func URL(u, browser string) error {
	cmd, ok := command(runtime.GOOS, u, browser)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(goos, u, browser string) (*exec.Cmd, bool) {
	if browser != "" {
		switch goos {
		case constant.Windows:
			// start treats & as a command separator.
			return exec.Command("cmd", "/C", "start", "", browser, strings.ReplaceAll(u, "&", "^&")), true
		case constant.Darwin:
			return exec.Command("open", "-a", browser, u), true
		case constant.Linux:
			return exec.Command(browser, u), true
		}
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", u), true
	case constant.Darwin:
		return exec.Command("open", u), true
	case constant.Linux:
		return exec.Command("xdg-open", u), true
	case constant.Android:
		return exec.Command("termux-open-url", u), true
	default:
		return nil, false
	}
}
