package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagelink"
)

// Compile-time interface verification.
var _ pagelink.ActivationStore = (*ActivationStore)(nil)

// activationSlot is the single key the cache occupies.
const activationSlot = "last"

// ActivationStore implements pagelink.ActivationStore using SQLite. The
// cache is a single string-keyed slot; every Store replaces the prior value.
// The JSON payload carries an integrity digest so a corrupt or tampered row
// reads as an empty slot instead of poisoning duplicate detection.
type ActivationStore struct {
	db *DB
}

// NewActivationStore creates a new ActivationStore.
func NewActivationStore(db *DB) *ActivationStore {
	return &ActivationStore{db: db}
}

// Load returns the stored activation.
// Returns ENOTFOUND if the slot is empty or unreadable.
func (s *ActivationStore) Load(ctx context.Context) (*pagelink.CachedActivation, error) {
	var capturedAt, payload, payloadHash string

	err := s.db.QueryRowContext(ctx, `
		SELECT captured_at, payload, payload_hash
		FROM activations
		WHERE slot = ?
	`, activationSlot).Scan(&capturedAt, &payload, &payloadHash)

	if err == sql.ErrNoRows {
		return nil, pagelink.Errorf(pagelink.ENOTFOUND, "no cached activation")
	}
	if err != nil {
		return nil, err
	}

	if computeHash(payload) != payloadHash {
		return nil, pagelink.Errorf(pagelink.ENOTFOUND, "cached activation failed integrity check")
	}

	var info pagelink.PageInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		return nil, pagelink.Errorf(pagelink.ENOTFOUND, "cached activation is unreadable")
	}

	at, err := time.Parse(time.RFC3339Nano, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse captured_at: %w", err)
	}

	return &pagelink.CachedActivation{Info: &info, CapturedAt: at}, nil
}

// Store writes the activation, replacing any prior value.
func (s *ActivationStore) Store(ctx context.Context, act *pagelink.CachedActivation) error {
	if act == nil || act.Info == nil {
		return pagelink.Errorf(pagelink.EINVALID, "activation info required")
	}
	if err := act.Info.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(act.Info)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO activations (slot, captured_at, payload, payload_hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			captured_at = excluded.captured_at,
			payload = excluded.payload,
			payload_hash = excluded.payload_hash
	`, activationSlot, act.CapturedAt.UTC().Format(time.RFC3339Nano), string(payload), computeHash(string(payload)))

	return err
}

// Clear empties the slot.
func (s *ActivationStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM activations WHERE slot = ?`, activationSlot)
	return err
}

// computeHash computes a hash of the payload using xxhash.
func computeHash(payload string) string {
	h := xxhash.Sum64String(payload)
	return strconv.FormatUint(h, 16)
}
