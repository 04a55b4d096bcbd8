package messages

import (
	"fmt"
	"strings"

	"videokick_bot/rewards"
	"videokick_bot/settings"
	"videokick_bot/stats"
)

const (
	MsgWelcomePaused = `👋 Welcome %s!

🔴 Bot is currently paused - no video verification required right now.
Enjoy the group!`

	MsgWelcomeOffHours = `👋 Welcome %s!

🌙 Verification is outside active hours right now - no video required.
Enjoy the group!`

	MsgWelcomeInteraction = `👋 Welcome %s!

📹 To stay in this group, please post a video after your first message.
⏰ Timer will start when you interact with the group!`

	MsgWelcomeBack = `👋 Welcome back %s! You are already verified. 🎉`

	MsgInteractionTimer = `⏰ Hi %s! You have %d seconds to post a video to stay in the group!`

	MsgKicked = `⚠️ %s was removed for not posting a video within %d seconds.`

	MsgViolationKicked = `⚠️ %s was removed for %s`

	MsgAdminsOnly = `⚠️ Only group admins can change bot settings.`

	MsgTimerUsage = "Usage: /settimer <seconds>\nExample: /settimer 120 (for 2 minutes)"

	MsgTimerRange = `⚠️ Timer must be between 10 seconds and 10 minutes (600 seconds).`

	MsgTimerNaN = `⚠️ Please enter a valid number of seconds.`

	MsgHourRange = `⚠️ Hours must be between 0-23`

	MsgHourNaN = `⚠️ Please provide valid hour numbers`

	MsgPaused = `⏸️ Bot paused! New members won't be kicked until you use /resume`

	MsgResumed = `▶️ Bot resumed! Video verification is now active.`

	MsgNoPoints = `🏆 No points awarded yet! Reward system may be disabled.`
)

// FormatWelcome renders the admin-set welcome template, substituting
// {name} and {timer}.
func FormatWelcome(template, name string, timerSeconds int) string {
	out := strings.ReplaceAll(template, "{name}", name)
	return strings.ReplaceAll(out, "{timer}", fmt.Sprintf("%d", timerSeconds))
}

func FormatVerified(name string, elapsedSeconds float64, points, total int) string {
	msg := fmt.Sprintf("✅ Great job %s! You posted a video in %.1f seconds. Welcome to the group! 🎉",
		name, elapsedSeconds)
	if points > 0 {
		msg += fmt.Sprintf("\n🏆 You earned %d points! Total: %d points", points, total)
	}
	return msg
}

func FormatStatus(s settings.Snapshot, pending, verified int, c stats.Snapshot) string {
	state := "Active"
	if s.Paused {
		state = "Paused"
	}
	return fmt.Sprintf(`🤖 Video Kick Bot Status

⏱️ Timer: %d seconds
▶️ Status: %s
👥 Pending verification: %d
✅ Verified members: %d

📊 Statistics
• Total joins: %d
• Users verified: %d
• Users kicked: %d`,
		s.TimeoutSeconds, state, pending, verified,
		c.TotalJoins, c.UsersVerified, c.UsersKicked)
}

func FormatHelp(s settings.Snapshot) string {
	var b strings.Builder
	b.WriteString("🎮 Video Kick Bot Commands:\n\n")
	b.WriteString("📊 Basic Controls:\n")
	b.WriteString("/help - Show commands\n")
	b.WriteString("/status - Bot status\n")
	b.WriteString("/settimer 300 - Change timer\n")
	b.WriteString("/pause - Stop kicking\n")
	b.WriteString("/resume - Start kicking\n\n")
	b.WriteString("🛡️ Protection Features:\n")
	b.WriteString("/antispam - Toggle spam protection\n")
	b.WriteString("/interaction - Toggle interaction mode\n")
	b.WriteString("/stats - Show statistics\n")
	b.WriteString("/report - Daily protection report\n\n")
	b.WriteString("🎉 Interactive Features:\n")
	b.WriteString("/setwelcome - Custom welcome message\n")
	b.WriteString("/rewards - Toggle point system\n")
	b.WriteString("/leaderboard - Top video posters\n")
	b.WriteString("/schedule - Set active hours\n\n")
	fmt.Fprintf(&b, "⚙️ Current Settings:\n")
	fmt.Fprintf(&b, "Timer: %ds | Interaction: %s | Anti-spam: %s\n",
		s.TimeoutSeconds, onOff(s.InteractionMode), onOff(s.AntiSpam))
	fmt.Fprintf(&b, "Rewards: %s | Schedule: %s", onOff(s.Rewards), onOff(s.Scheduled))
	return b.String()
}

func FormatStats(s settings.Snapshot, pending int, c stats.Snapshot) string {
	state := "🟢 Active"
	if s.Paused {
		state = "🔴 Paused"
	}
	return fmt.Sprintf(`📊 Detailed Bot Statistics

⏱️ Current timer: %d seconds
📈 Success rate: %.1f%%

Today's Activity:
👥 Total joins: %d
✅ Users verified: %d
❌ Users kicked: %d
🛡️ Spam blocked: %d
🔗 Links blocked: %d
⚠️ Suspicious kicked: %d
⏳ Currently pending: %d

Settings:
Status: %s
Anti-spam: %s
Timer: %ds (%dmin %ds)`,
		s.TimeoutSeconds, c.SuccessRate(),
		c.TotalJoins, c.UsersVerified, c.UsersKicked,
		c.SpamBlocked, c.LinksBlocked, c.SuspiciousKicked, pending,
		state, onOff(s.AntiSpam),
		s.TimeoutSeconds, s.TimeoutSeconds/60, s.TimeoutSeconds%60)
}

func FormatReport(s settings.Snapshot, c stats.Snapshot) string {
	state := "Active"
	if s.Paused {
		state = "Paused"
	}
	return fmt.Sprintf(`📈 Daily Protection Report

🛡️ Total Protection Actions: %d
👥 New Members: %d
✅ Verified: %d
❌ Kicked (no video): %d
🚫 Spam blocked: %d
🔗 Links blocked: %d
⚠️ Suspicious users: %d

📊 Success Rate: %.1f%%
🔒 Protection Rate: %.1f%%

Settings:
Timer: %ds
Anti-spam: %s
Status: %s`,
		c.ProtectionActions(), c.TotalJoins, c.UsersVerified, c.UsersKicked,
		c.SpamBlocked, c.LinksBlocked, c.SuspiciousKicked,
		c.SuccessRate(), c.ProtectionRate(),
		s.TimeoutSeconds, onOff(s.AntiSpam), state)
}

func FormatLeaderboard(entries []rewards.Entry) string {
	if len(entries) == 0 {
		return MsgNoPoints
	}
	var b strings.Builder
	b.WriteString("🏆 Group Leaderboard - Top Video Posters:\n\n")
	for i, e := range entries {
		var rank string
		switch i {
		case 0:
			rank = "🥇"
		case 1:
			rank = "🥈"
		case 2:
			rank = "🥉"
		default:
			rank = fmt.Sprintf("%d.", i+1)
		}
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("User %d", e.Key.UserID)
		}
		fmt.Fprintf(&b, "%s %s: %d points\n", rank, name, e.Points)
	}
	return b.String()
}

func FormatSchedule(s settings.Snapshot) string {
	return fmt.Sprintf(`Scheduled mode: %s
Active hours: %d:00 - %d:00

Usage:
/schedule toggle - Enable/disable
/schedule 8 22 - Set hours (8 AM to 10 PM)`,
		onOff(s.Scheduled), s.StartHour, s.EndHour)
}

func FormatWelcomeUsage(template string) string {
	current := strings.ReplaceAll(template, "{name}", "[NAME]")
	current = strings.ReplaceAll(current, "{timer}", "[TIMER]")
	return fmt.Sprintf("Current welcome message:\n\n%s\n\nUse: /setwelcome Your custom message here\nUse {name} for user name and {timer} for timer seconds", current)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
