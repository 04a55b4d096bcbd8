package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"videokick_bot/config"
	"videokick_bot/database"
	"videokick_bot/gateway"
	"videokick_bot/handlers"
	"videokick_bot/rewards"
	"videokick_bot/settings"
	"videokick_bot/stats"
	"videokick_bot/tglog"
	"videokick_bot/tracker"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	st := settings.New(cfg.TimeoutSeconds)
	counters := &stats.Counters{}
	trk := tracker.New(st)
	ledger := rewards.NewLedger(st)

	var db *database.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		log.Println("audit store connected")
	}

	// The default handler is bound late: the dispatcher needs the bot, and
	// the bot needs its options up front.
	var h *handlers.Handler
	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h != nil {
				h.OnMessage(ctx, b, update)
			}
		}),
		bot.WithAllowedUpdates(bot.AllowedUpdates{"message", "chat_member"}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		log.Fatal(err)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		log.Fatal(err)
	}

	tglog.Init(b, cfg.LogChannelID)

	h = handlers.New(gateway.NewTelegram(b), st, trk, ledger, counters, db)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, h.OnCommand)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.ChatMember != nil
	}, h.OnChatMemberUpdate)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil && len(update.Message.NewChatMembers) > 0
	}, h.OnNewMembers)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil && isVideoMessage(update.Message)
	}, h.OnVideo)

	log.Printf("bot @%s started, verification timeout %ds", me.Username, st.TimeoutSeconds())
	b.Start(ctx)

	trk.Shutdown()
	log.Println("bot stopped")
}

func isVideoMessage(msg *models.Message) bool {
	if msg.Video != nil || msg.VideoNote != nil {
		return true
	}
	return msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "video/")
}
