package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"videokick_bot/database"
	"videokick_bot/gateway"
	"videokick_bot/messages"
	"videokick_bot/moderation"
	"videokick_bot/rewards"
	"videokick_bot/settings"
	"videokick_bot/stats"
	"videokick_bot/tglog"
	"videokick_bot/tracker"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Handler routes platform events to the tracker, classifier and settings
// store, and performs gateway actions on the outcomes. Gateway calls always
// happen after the state transition has committed; a failed call is logged
// and never rolled back.
type Handler struct {
	gw       gateway.Gateway
	st       *settings.Store
	trk      *tracker.Tracker
	ledger   *rewards.Ledger
	counters *stats.Counters
	db       *database.DB // nil disables audit rows
}

func New(gw gateway.Gateway, st *settings.Store, trk *tracker.Tracker, ledger *rewards.Ledger, counters *stats.Counters, db *database.DB) *Handler {
	h := &Handler{gw: gw, st: st, trk: trk, ledger: ledger, counters: counters, db: db}
	trk.SetExpireFunc(h.handleExpiry)
	return h
}

// OnNewMembers handles the new_chat_members service message.
func (h *Handler) OnNewMembers(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	for _, user := range msg.NewChatMembers {
		if user.IsBot {
			continue
		}
		h.handleJoin(ctx, msg.Chat.ID, user.ID, fullName(&user))
	}
}

// OnChatMemberUpdate handles chat_member updates; only transitions from
// outside the group to membership count as joins.
func (h *Handler) OnChatMemberUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	upd := update.ChatMember
	if upd == nil {
		return
	}
	if !isOutside(upd.OldChatMember.Type) || !isInside(upd.NewChatMember.Type) {
		return
	}
	user := memberUser(upd.NewChatMember)
	if user == nil || user.IsBot {
		return
	}
	h.handleJoin(ctx, upd.Chat.ID, user.ID, fullName(user))
}

func (h *Handler) handleJoin(ctx context.Context, chatID, userID int64, name string) {
	h.counters.TotalJoins.Add(1)

	var text string
	switch h.trk.OnJoin(chatID, userID, name, time.Now()) {
	case tracker.WelcomePaused:
		text = fmt.Sprintf(messages.MsgWelcomePaused, name)
	case tracker.WelcomeOffHours:
		text = fmt.Sprintf(messages.MsgWelcomeOffHours, name)
	case tracker.WelcomeAwaitInteraction:
		text = fmt.Sprintf(messages.MsgWelcomeInteraction, name)
		log.Printf("new member %s (%d) joined chat %d, waiting for interaction", name, userID, chatID)
	case tracker.WelcomeBack:
		text = fmt.Sprintf(messages.MsgWelcomeBack, name)
	default:
		text = messages.FormatWelcome(h.st.Welcome(), name, h.st.TimeoutSeconds())
		log.Printf("new member %s (%d) joined chat %d, timer started", name, userID, chatID)
	}
	h.send(ctx, chatID, text, true)
}

// OnVideo handles video, video-note and video-document messages. A pending
// member becomes verified; anyone else is a no-op (already verified, already
// expired, or never tracked).
func (h *Handler) OnVideo(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}

	v, ok := h.trk.OnVideoPosted(msg.Chat.ID, msg.From.ID, fullName(msg.From), time.Now())
	if !ok {
		return
	}
	h.counters.UsersVerified.Add(1)
	points := h.ledger.Award(v)
	total := h.ledger.Total(v.Key)

	h.send(ctx, msg.Chat.ID, messages.FormatVerified(v.Name, v.Elapsed.Seconds(), points, total), true)
	log.Printf("user %s (%d) verified with video in %.1fs", v.Name, msg.From.ID, v.Elapsed.Seconds())
	tglog.Send("✅ %s verified in chat %d (%.1fs, %d pts)", v.Name, msg.Chat.ID, v.Elapsed.Seconds(), points)
	h.auditVerification(v, points)
}

// OnMessage is the default handler: every group message that is not a
// command, a video or a join notice. Spam classification runs first; a
// violation preempts the interaction-mode timer.
func (h *Handler) OnMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	if msg.Chat.Type != "group" && msg.Chat.Type != "supergroup" {
		return
	}

	chatID, userID := msg.Chat.ID, msg.From.ID
	name := fullName(msg.From)
	now := time.Now()

	if h.st.AntiSpam() && h.st.ActiveAt(now) && !h.trk.IsVerified(chatID, userID) {
		text := msg.Text
		if text == "" {
			text = msg.Caption
		}
		if v := moderation.Check(text, msg.From.Username, name, h.st.BannedWords()); v != nil {
			h.handleViolation(ctx, msg, v)
			return
		}
	}

	if msg.Text != "" && h.trk.OnFirstInteraction(chatID, userID, name, now) {
		h.send(ctx, chatID, fmt.Sprintf(messages.MsgInteractionTimer, name, h.st.TimeoutSeconds()), true)
		log.Printf("timer started for %s (%d) after first message in chat %d", name, userID, chatID)
	}
}

// handleViolation removes the offending message and its sender. The pending
// entry, if any, is cleared first so its timer cannot fire on a user who is
// already gone.
func (h *Handler) handleViolation(ctx context.Context, msg *models.Message, v *moderation.Violation) {
	chatID, userID := msg.Chat.ID, msg.From.ID
	name := fullName(msg.From)

	h.trk.CancelPending(chatID, userID)

	switch v.Type {
	case moderation.ViolationLink:
		h.counters.LinksBlocked.Add(1)
	case moderation.ViolationBannedWord:
		h.counters.SpamBlocked.Add(1)
	case moderation.ViolationSuspicious:
		h.counters.SuspiciousKicked.Add(1)
	}

	if err := h.gw.DeleteMessage(ctx, chatID, msg.ID); err != nil {
		log.Printf("failed to delete message %d in chat %d: %v", msg.ID, chatID, err)
	}
	if err := h.gw.RemoveMember(ctx, chatID, userID); err != nil {
		log.Printf("failed to kick %s (%d) from chat %d: %v", name, userID, chatID, err)
	}
	h.send(ctx, chatID, fmt.Sprintf(messages.MsgViolationKicked, name, v.Reason()), true)

	log.Printf("kicked user %s (%d) from chat %d for %s", name, userID, chatID, v.Reason())
	tglog.Send("🚫 %s removed from chat %d for %s", name, chatID, v.Reason())
	h.auditViolation(chatID, userID, name, v, msg.Text)
}

// handleExpiry runs when a verification timer fires. The tracker has already
// removed the entry; everything here is best-effort side effects.
func (h *Handler) handleExpiry(key tracker.Key, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h.counters.UsersKicked.Add(1)
	timeout := h.st.TimeoutSeconds()

	if err := h.gw.RemoveMember(ctx, key.ChatID, key.UserID); err != nil {
		log.Printf("failed to kick %s (%d) from chat %d: %v", name, key.UserID, key.ChatID, err)
	}
	h.send(ctx, key.ChatID, fmt.Sprintf(messages.MsgKicked, name, timeout), true)

	log.Printf("kicked user %s (%d) from chat %d for timeout", name, key.UserID, key.ChatID)
	tglog.Send("⏰ %s kicked from chat %d: no video within %ds", name, key.ChatID, timeout)
	h.auditKick(key, name, timeout)
}

func (h *Handler) send(ctx context.Context, chatID int64, text string, silent bool) {
	if err := h.gw.SendMessage(ctx, chatID, text, silent); err != nil {
		log.Printf("failed to send message to chat %d: %v", chatID, err)
	}
}

// ============================================
// Audit sink (best-effort, async)
// ============================================

const auditTimeout = 5 * time.Second

func (h *Handler) auditVerification(v tracker.Verification, points int) {
	if h.db == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := h.db.RecordVerification(ctx, v.Key.ChatID, v.Key.UserID, v.Name, v.Elapsed.Seconds(), points); err != nil {
			log.Printf("failed to record verification: %v", err)
		}
	}()
}

func (h *Handler) auditKick(key tracker.Key, name string, timeoutSeconds int) {
	if h.db == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := h.db.RecordKick(ctx, key.ChatID, key.UserID, name, timeoutSeconds); err != nil {
			log.Printf("failed to record kick: %v", err)
		}
	}()
}

func (h *Handler) auditViolation(chatID, userID int64, name string, v *moderation.Violation, text string) {
	if h.db == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := h.db.RecordViolation(ctx, chatID, userID, name, string(v.Type), v.Match, text); err != nil {
			log.Printf("failed to record violation: %v", err)
		}
	}()
}

// ============================================
// Telegram model helpers
// ============================================

func fullName(u *models.User) string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}

func isOutside(t models.ChatMemberType) bool {
	return t == models.ChatMemberTypeLeft || t == models.ChatMemberTypeBanned
}

func isInside(t models.ChatMemberType) bool {
	return t == models.ChatMemberTypeMember ||
		t == models.ChatMemberTypeAdministrator ||
		t == models.ChatMemberTypeOwner
}

func memberUser(cm models.ChatMember) *models.User {
	switch cm.Type {
	case models.ChatMemberTypeOwner:
		return cm.Owner.User
	case models.ChatMemberTypeAdministrator:
		return &cm.Administrator.User
	case models.ChatMemberTypeMember:
		return cm.Member.User
	case models.ChatMemberTypeRestricted:
		return cm.Restricted.User
	case models.ChatMemberTypeLeft:
		return cm.Left.User
	case models.ChatMemberTypeBanned:
		return cm.Banned.User
	}
	return nil
}
