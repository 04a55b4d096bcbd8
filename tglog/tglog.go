// Package tglog mirrors operational events (kicks, violations, setting
// changes) into a Telegram channel. Sends are fire-and-forget so the event
// path never blocks on the log channel.
package tglog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var (
	b         *bot.Bot
	channelID int64
	enabled   bool
)

func Init(tgBot *bot.Bot, chID int64) {
	if chID == 0 {
		log.Println("LOG_CHANNEL_ID not set, channel logging disabled")
		return
	}
	b = tgBot
	channelID = chID
	enabled = true
	log.Printf("channel logging to %d enabled", chID)
}

// Send posts a formatted line to the log channel (non-blocking).
func Send(format string, args ...any) {
	if !enabled {
		return
	}
	text := fmt.Sprintf(format, args...)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    channelID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			log.Printf("failed to send log to channel: %v", err)
		}
	}()
}
