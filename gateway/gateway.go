// Package gateway is the boundary to the chat platform's moderation API.
// State transitions commit before any gateway call; a failed call is logged
// by the caller and never rolled back.
package gateway

import "context"

type Role string

const (
	RoleCreator Role = "creator"
	RoleAdmin   Role = "administrator"
	RoleMember  Role = "member"
	RoleOther   Role = "other"
)

// IsAdmin reports whether the role may run privileged commands.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleCreator
}

type Gateway interface {
	// SendMessage posts text to a chat; silent suppresses the notification.
	SendMessage(ctx context.Context, chatID int64, text string, silent bool) error

	// DeleteMessage removes a single message.
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// RemoveMember kicks a user: ban followed by an immediate unban, so the
	// user may rejoin.
	RemoveMember(ctx context.Context, chatID, userID int64) error

	// MemberRole reports the user's standing in the chat.
	MemberRole(ctx context.Context, chatID, userID int64) (Role, error)
}
