// Package main is the entry point for anibot.
package main

import (
	"time"

	"github.com/anisan-cli/anibot/cmd"
	"github.com/anisan-cli/anibot/config"
	"github.com/anisan-cli/anibot/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go log.CollectGarbage(time.Now())

	cmd.Execute()
}
