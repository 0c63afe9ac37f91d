package main

import (
	"log"

	"github.com/avbelov/vkreportbot/bot"
	"github.com/avbelov/vkreportbot/core/cmd"
	coreconfig "github.com/avbelov/vkreportbot/core/config"
)

func main() {
	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		Bootstrap: func(cfg *coreconfig.Config) (cmd.TelegramApp, error) {
			return bot.New(cfg), nil
		},
	})
	if err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
