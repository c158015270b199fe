package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	intconfig "ridebook/internal/config"
	intdb "ridebook/internal/db"
	"ridebook/internal/domain"
	"ridebook/internal/domain/models"
)

// SettingsRepository handles the singleton-ish settings row: reads take the
// first row, updates target that row's id. Social columns are optional and
// probed before writing so older schemas keep working.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// settings column list; the first four always exist, the rest are probed.
var settingsOptionalColumns = []string{"whatsapp", "facebook", "instagram", "twitter"}

// GetFirst loads the first settings row.
func (r SettingsRepository) GetFirst() (models.Settings, error) {
	db := r.db()

	var s models.Settings
	var phone, email, address sql.NullString
	err := db.QueryRow(`
		SELECT id, phone, email, address
		FROM settings
		ORDER BY id ASC
		LIMIT 1`).Scan(&s.ID, &phone, &email, &address)
	if err != nil {
		return models.Settings{}, err
	}
	s.Phone = strings.TrimSpace(phone.String)
	s.Email = strings.TrimSpace(email.String)
	s.Address = strings.TrimSpace(address.String)

	for _, col := range settingsOptionalColumns {
		if !intdb.HasColumn(db, "settings", col) {
			continue
		}
		var v sql.NullString
		if err := db.QueryRow(`SELECT `+col+` FROM settings WHERE id = ?`, s.ID).Scan(&v); err == nil {
			switch col {
			case "whatsapp":
				s.WhatsApp = strings.TrimSpace(v.String)
			case "facebook":
				s.Facebook = strings.TrimSpace(v.String)
			case "instagram":
				s.Instagram = strings.TrimSpace(v.String)
			case "twitter":
				s.Twitter = strings.TrimSpace(v.String)
			}
		}
	}
	return s, nil
}

// UpdateFirst applies supplied keys to the first row and returns the result.
func (r SettingsRepository) UpdateFirst(rawJSON []byte, now time.Time) (models.Settings, error) {
	db := r.db()

	existing, err := r.GetFirst()
	if err != nil {
		return models.Settings{}, err
	}

	var payload map[string]any
	if err := json.Unmarshal(rawJSON, &payload); err != nil {
		return models.Settings{}, domain.ValidationError{Msg: "invalid payload", Err: err}
	}

	sets := []string{}
	args := []any{}
	add := func(key, column string) {
		v, ok := payload[key]
		if !ok {
			return
		}
		s, _ := v.(string)
		if column != "phone" && column != "email" && column != "address" {
			if !intdb.HasColumn(db, "settings", column) {
				return
			}
		}
		sets = append(sets, column+"=?")
		args = append(args, intdb.NullIfEmpty(strings.TrimSpace(s)))
	}

	add("phone", "phone")
	add("email", "email")
	add("address", "address")
	add("whatsapp", "whatsapp")
	add("facebook", "facebook")
	add("instagram", "instagram")
	add("twitter", "twitter")

	if len(sets) == 0 {
		return existing, nil
	}
	if intdb.HasColumn(db, "settings", "updated_at") {
		sets = append(sets, "updated_at=?")
		args = append(args, now)
	}
	args = append(args, existing.ID)

	if _, err := db.Exec(`UPDATE settings SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		return models.Settings{}, err
	}
	return r.GetFirst()
}
