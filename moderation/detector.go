package moderation

import (
	"fmt"
	"strings"
)

type ViolationType string

const (
	ViolationLink       ViolationType = "link"
	ViolationBannedWord ViolationType = "banned_word"
	ViolationSuspicious ViolationType = "suspicious_identity"
)

type Violation struct {
	Type  ViolationType
	Match string
}

// Reason is the human-readable cause used in removal notices and logs.
func (v *Violation) Reason() string {
	switch v.Type {
	case ViolationLink:
		return "posting links"
	case ViolationBannedWord:
		return fmt.Sprintf("using banned word: %s", v.Match)
	case ViolationSuspicious:
		return "suspicious username"
	}
	return string(v.Type)
}

var (
	// Substring markers for links from unverified users.
	linkMarkers = []string{"http", "www.", ".com", ".org", "t.me"}

	// Identity keywords common to spam accounts.
	suspiciousPatterns = []string{
		"crypto", "bitcoin", "forex", "investment", "profit", "earn",
		"casino", "betting", "loan", "pharmacy", "pills",
	}
)

// Check classifies a message against the spam rules. Rules short-circuit in
// priority order: links, then banned words, then the sender's identity; only
// the first match is reported. Returns nil for a clean message.
func Check(text, username, fullName string, bannedWords []string) *Violation {
	textLower := strings.ToLower(text)

	if text != "" {
		for _, marker := range linkMarkers {
			if strings.Contains(textLower, marker) {
				return &Violation{Type: ViolationLink, Match: marker}
			}
		}

		for _, word := range bannedWords {
			if word == "" {
				continue
			}
			if strings.Contains(textLower, strings.ToLower(word)) {
				return &Violation{Type: ViolationBannedWord, Match: word}
			}
		}
	}

	identity := strings.ToLower(username + " " + fullName)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(identity, pattern) {
			return &Violation{Type: ViolationSuspicious, Match: pattern}
		}
	}

	return nil
}
