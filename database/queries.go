package database

import "context"

// ============================================
// Verifications
// ============================================

func (db *DB) RecordVerification(ctx context.Context, chatID, userID int64, userName string, responseSeconds float64, points int) error {
	query := `
		INSERT INTO verifications (chat_id, user_id, user_name, response_seconds, points)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := db.Pool.Exec(ctx, query, chatID, userID, userName, responseSeconds, points)
	return err
}

// ============================================
// Kicks
// ============================================

func (db *DB) RecordKick(ctx context.Context, chatID, userID int64, userName string, timeoutSeconds int) error {
	query := `
		INSERT INTO kicks (chat_id, user_id, user_name, timeout_seconds)
		VALUES ($1, $2, $3, $4)`

	_, err := db.Pool.Exec(ctx, query, chatID, userID, userName, timeoutSeconds)
	return err
}

// ============================================
// Violations
// ============================================

func (db *DB) RecordViolation(ctx context.Context, chatID, userID int64, userName, violationType, matchFound, messageText string) error {
	query := `
		INSERT INTO violations (chat_id, user_id, user_name, violation_type, match_found, message_text)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := db.Pool.Exec(ctx, query, chatID, userID, userName, violationType, matchFound, messageText)
	return err
}
