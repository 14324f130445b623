package repository

import (
	"context"
	"database/sql"
	"time"
)

// SessionRepo persists/validates refresh tokens issued after OAuth
// sign-in (single 'token_hash' column, SHA-256 of the raw token).
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// StoreRefresh inserts a refresh token hash row for a guest.
func (r *SessionRepo) StoreRefresh(ctx context.Context, guestID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO guest_sessions (guest_id, token_hash, expires_at) VALUES (?,?,?)",
		guestID, tokenHash, exp)
	return err
}

// ValidateRefresh returns the guest id if a non-revoked, non-expired
// token exists for the hash.
func (r *SessionRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	var (
		guestID   uint64
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT guest_id, expires_at, revoked_at FROM guest_sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&guestID, &expiresAt, &revokedAt)
	if err != nil {
		return 0, err
	}
	if revokedAt.Valid {
		return 0, sql.ErrNoRows
	}
	if time.Now().UTC().After(expiresAt) {
		return 0, sql.ErrNoRows
	}
	return guestID, nil
}

// RevokeByHash marks a single token as revoked.
func (r *SessionRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE guest_sessions SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForGuest revokes every active session of a guest.
func (r *SessionRepo) RevokeAllForGuest(ctx context.Context, guestID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE guest_sessions SET revoked_at=NOW() WHERE guest_id=? AND revoked_at IS NULL",
		guestID)
	return err
}
