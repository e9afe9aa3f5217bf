package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/solomat-bot/DemoProBot/bot"
	corecmd "github.com/solomat-bot/DemoProBot/core/cmd"
	coreconfig "github.com/solomat-bot/DemoProBot/core/config"
)

func main() {
	// Local development reads secrets from .env; absence is fine.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return cfg, nil
		},
		Bootstrap: func(cfg corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			app, err := bot.New(cfg.CoreConfig())
			if err != nil {
				return nil, err
			}
			return app, nil
		},
	})
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
