package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"videokick_bot/messages"
	"videokick_bot/tglog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// OnCommand dispatches slash commands. help, status and leaderboard are open
// to everyone; every other command requires a group admin or the creator.
func (h *Handler) OnCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	cmd, args := splitCommand(msg.Text)
	if cmd == "" {
		return
	}
	chatID := msg.Chat.ID

	switch cmd {
	case "help":
		h.send(ctx, chatID, messages.FormatHelp(h.st.Snapshot()), false)
		return
	case "status":
		pending, verified := h.trk.Counts()
		h.send(ctx, chatID, messages.FormatStatus(h.st.Snapshot(), pending, verified, h.counters.Snapshot()), false)
		return
	case "leaderboard":
		h.send(ctx, chatID, messages.FormatLeaderboard(h.ledger.Leaderboard(10)), false)
		return
	case "settimer", "pause", "resume", "stats", "report", "interaction",
		"antispam", "setwelcome", "rewards", "schedule":
	default:
		return
	}

	if !h.isAdmin(ctx, chatID, msg.From.ID) {
		h.send(ctx, chatID, messages.MsgAdminsOnly, false)
		return
	}

	switch cmd {
	case "settimer":
		h.cmdSetTimer(ctx, chatID, msg.From.ID, args)
	case "pause":
		h.st.Pause()
		h.send(ctx, chatID, messages.MsgPaused, false)
		log.Printf("bot paused by user %d", msg.From.ID)
	case "resume":
		h.st.Resume()
		h.send(ctx, chatID, messages.MsgResumed, false)
		log.Printf("bot resumed by user %d", msg.From.ID)
	case "stats":
		pending, _ := h.trk.Counts()
		h.send(ctx, chatID, messages.FormatStats(h.st.Snapshot(), pending, h.counters.Snapshot()), false)
	case "report":
		h.send(ctx, chatID, messages.FormatReport(h.st.Snapshot(), h.counters.Snapshot()), false)
	case "interaction":
		if h.st.ToggleInteraction() {
			h.send(ctx, chatID, "🔄 Interaction mode ON! Timer now starts when users send their first message (better for offline users)", false)
		} else {
			h.send(ctx, chatID, "⏰ Interaction mode OFF! Timer starts immediately when users join (default behavior)", false)
		}
	case "antispam":
		if h.st.ToggleAntiSpam() {
			h.send(ctx, chatID, "🛡️ Anti-spam protection ON! Now blocking links, banned words, and suspicious users", false)
		} else {
			h.send(ctx, chatID, "⚠️ Anti-spam protection OFF! Only video verification is active", false)
		}
	case "setwelcome":
		h.cmdSetWelcome(ctx, chatID, msg.From.ID, args)
	case "rewards":
		if h.st.ToggleRewards() {
			h.send(ctx, chatID, "🏆 Reward system ON! Users earn points for posting videos quickly:\n• 10s or less: 100 points\n• 30s or less: 50 points\n• Regular: 25 points", false)
		} else {
			h.send(ctx, chatID, "📝 Reward system OFF! No points will be awarded for videos", false)
		}
	case "schedule":
		h.cmdSchedule(ctx, chatID, args)
	}
}

func (h *Handler) isAdmin(ctx context.Context, chatID, userID int64) bool {
	role, err := h.gw.MemberRole(ctx, chatID, userID)
	if err != nil {
		log.Printf("failed to check role of %d in chat %d: %v", userID, chatID, err)
		return false
	}
	return role.IsAdmin()
}

func (h *Handler) cmdSetTimer(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) != 1 {
		h.send(ctx, chatID, messages.MsgTimerUsage, false)
		return
	}
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		h.send(ctx, chatID, messages.MsgTimerNaN, false)
		return
	}
	if err := h.st.SetTimeout(seconds); err != nil {
		h.send(ctx, chatID, messages.MsgTimerRange, false)
		return
	}
	h.send(ctx, chatID, fmt.Sprintf("✅ Timer updated to %d seconds!", seconds), false)
	log.Printf("timer changed to %d seconds by user %d", seconds, userID)
	tglog.Send("⚙️ timer set to %ds by user %d", seconds, userID)
}

func (h *Handler) cmdSetWelcome(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		h.send(ctx, chatID, messages.FormatWelcomeUsage(h.st.Welcome()), false)
		return
	}
	template := strings.Join(args, " ")
	h.st.SetWelcome(template)

	preview := messages.FormatWelcome(template, "John", h.st.TimeoutSeconds())
	h.send(ctx, chatID, fmt.Sprintf("✅ Welcome message updated!\n\nPreview:\n%s", preview), false)
	log.Printf("welcome message changed by user %d", userID)
}

func (h *Handler) cmdSchedule(ctx context.Context, chatID int64, args []string) {
	switch {
	case len(args) == 0:
		h.send(ctx, chatID, messages.FormatSchedule(h.st.Snapshot()), false)
	case strings.EqualFold(args[0], "toggle"):
		start, end := h.st.ActiveHours()
		if h.st.ToggleScheduled() {
			h.send(ctx, chatID, fmt.Sprintf("⏰ Scheduled mode ON! Bot only active %d:00-%d:00", start, end), false)
		} else {
			h.send(ctx, chatID, "⏰ Scheduled mode OFF!", false)
		}
	case len(args) == 2:
		start, err1 := strconv.Atoi(args[0])
		end, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			h.send(ctx, chatID, messages.MsgHourNaN, false)
			return
		}
		if err := h.st.SetActiveHours(start, end); err != nil {
			h.send(ctx, chatID, messages.MsgHourRange, false)
			return
		}
		h.send(ctx, chatID, fmt.Sprintf("✅ Active hours set to %d:00 - %d:00", start, end), false)
	}
}

// splitCommand parses "/cmd@BotName arg arg" into a lowercase command name
// and its arguments.
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), fields[1:]
}
