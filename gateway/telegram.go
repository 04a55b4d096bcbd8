package gateway

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Telegram implements Gateway on the Bot API.
type Telegram struct {
	bot *bot.Bot
}

func NewTelegram(b *bot.Bot) *Telegram {
	return &Telegram{bot: b}
}

func (t *Telegram) SendMessage(ctx context.Context, chatID int64, text string, silent bool) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:              chatID,
		Text:                text,
		DisableNotification: silent,
	})
	return err
}

func (t *Telegram) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	_, err := t.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	return err
}

func (t *Telegram) RemoveMember(ctx context.Context, chatID, userID int64) error {
	_, err := t.bot.BanChatMember(ctx, &bot.BanChatMemberParams{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	// Lift the ban right away: this is a kick, not a permanent ban.
	_, err = t.bot.UnbanChatMember(ctx, &bot.UnbanChatMemberParams{
		ChatID:       chatID,
		UserID:       userID,
		OnlyIfBanned: true,
	})
	return err
}

func (t *Telegram) MemberRole(ctx context.Context, chatID, userID int64) (Role, error) {
	member, err := t.bot.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		return RoleOther, err
	}
	switch member.Type {
	case models.ChatMemberTypeOwner:
		return RoleCreator, nil
	case models.ChatMemberTypeAdministrator:
		return RoleAdmin, nil
	case models.ChatMemberTypeMember:
		return RoleMember, nil
	default:
		return RoleOther, nil
	}
}
