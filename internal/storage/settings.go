package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Settings keys.
const (
	KeyBestScore = "best_score"
	KeyMuted     = "muted"
)

// Setting returns the raw value stored under key and whether it exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting writes value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// Best returns the persisted best score. Missing, negative or malformed
// values read as 0.
func (s *Store) Best() int {
	raw, ok, err := s.Setting(KeyBestScore)
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SetBest persists the best score.
func (s *Store) SetBest(score int) error {
	return s.SetSetting(KeyBestScore, strconv.Itoa(max(0, score)))
}

// Muted returns the persisted mute flag. Missing or malformed values read
// as false.
func (s *Store) Muted() bool {
	raw, ok, err := s.Setting(KeyMuted)
	if err != nil || !ok {
		return false
	}
	muted, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return muted
}

// SetMuted persists the mute flag.
func (s *Store) SetMuted(muted bool) error {
	return s.SetSetting(KeyMuted, strconv.FormatBool(muted))
}

// ResetBest sets the persisted best score back to 0. Run history is kept.
func (s *Store) ResetBest() error {
	return s.SetBest(0)
}
