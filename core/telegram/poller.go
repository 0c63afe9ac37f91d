package telegram

import (
	"fmt"
	"time"

	coreconfig "github.com/avbelov/vkreportbot/core/config"

	tele "gopkg.in/telebot.v4"
)

// defaultLongPollTimeoutSeconds applies when the config leaves the long-poll
// timeout unset.
const defaultLongPollTimeoutSeconds = 10

// BuildPoller selects the update source for the configured run mode. Config
// normalization has already validated the mode and the webhook fields, so
// anything that is not webhook long-polls.
func BuildPoller(cfg *coreconfig.Config) tele.Poller {
	if cfg != nil && cfg.Telegram.RunMode == coreconfig.RunModeWebhook {
		return &tele.Webhook{
			Listen:   fmt.Sprintf("%s:%d", cfg.Webhook.Listen, cfg.Webhook.Port),
			Endpoint: &tele.WebhookEndpoint{PublicURL: cfg.Webhook.URL},
		}
	}
	return &tele.LongPoller{
		Timeout: time.Duration(longPollTimeoutSeconds(cfg)) * time.Second,
	}
}

func longPollTimeoutSeconds(cfg *coreconfig.Config) int {
	if cfg != nil && cfg.Telegram.LongPollTimeoutSeconds > 0 {
		return cfg.Telegram.LongPollTimeoutSeconds
	}
	return defaultLongPollTimeoutSeconds
}
