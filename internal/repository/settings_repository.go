package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

// SettingsRepo manages the single system_settings row (id = 1) holding
// the global lockdown flag and the disabled-facilities set. The row is
// created lazily on the first warden write; until then reads return the
// defaults. Writes are compare-and-swap on the version column so two
// wardens toggling at the same moment cannot silently overwrite each
// other.
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo returns a new SettingsRepo bound to the given database.
func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get reads the settings singleton. A missing row means no warden has
// ever touched the record: defaults with version 0.
func (r *SettingsRepo) Get(ctx context.Context) (model.SystemSettings, error) {
	var s model.SystemSettings
	var disabled []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT lockdown, disabled_facilities, version, updated_at FROM system_settings WHERE id = 1").
		Scan(&s.GlobalLockdown, &disabled, &s.Version, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.SystemSettings{}, err
	}
	if len(disabled) > 0 {
		if err := json.Unmarshal(disabled, &s.DisabledFacilities); err != nil {
			return model.SystemSettings{}, err
		}
	}
	if s.DisabledFacilities == nil {
		s.DisabledFacilities = []string{}
	}
	return s, nil
}

// Put replaces the settings record. s.Version must be the version the
// caller read; the write succeeds only when the stored version still
// matches (version 0 meaning "row does not exist yet"). On success the
// returned settings carry the incremented version. Returns
// ErrSettingsConflict when the row moved underneath the caller.
func (r *SettingsRepo) Put(ctx context.Context, s model.SystemSettings) (model.SystemSettings, error) {
	if s.DisabledFacilities == nil {
		s.DisabledFacilities = []string{}
	}
	disabled, err := json.Marshal(s.DisabledFacilities)
	if err != nil {
		return model.SystemSettings{}, err
	}

	if s.Version == 0 {
		_, err = r.db.ExecContext(ctx,
			"INSERT INTO system_settings (id, lockdown, disabled_facilities, version) VALUES (1, ?, ?, 1)",
			s.GlobalLockdown, disabled)
		if err != nil {
			if isDuplicateKey(err) {
				return model.SystemSettings{}, ErrSettingsConflict
			}
			return model.SystemSettings{}, err
		}
		s.Version = 1
	} else {
		res, err := r.db.ExecContext(ctx,
			`UPDATE system_settings
			 SET lockdown = ?, disabled_facilities = ?, version = version + 1, updated_at = NOW()
			 WHERE id = 1 AND version = ?`,
			s.GlobalLockdown, disabled, s.Version)
		if err != nil {
			return model.SystemSettings{}, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return model.SystemSettings{}, err
		}
		if n == 0 {
			return model.SystemSettings{}, ErrSettingsConflict
		}
		s.Version++
	}
	return s, nil
}
