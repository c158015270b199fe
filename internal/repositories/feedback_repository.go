package repositories

import (
	"database/sql"
	"strings"

	intconfig "ridebook/internal/config"
	intdb "ridebook/internal/db"
	"ridebook/internal/domain/models"
	"ridebook/internal/utils"
)

type FeedbackRepository struct {
	DB *sql.DB
}

func (r FeedbackRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores one feedback row and returns it with its generated id.
func (r FeedbackRepository) Insert(f models.Feedback) (models.Feedback, error) {
	f.CreatedAt = utils.NowUTC()
	res, err := r.db().Exec(`
		INSERT INTO feedback (name, email, message, rating, created_at)
		VALUES (?,?,?,?,?)`,
		strings.TrimSpace(f.Name),
		intdb.NullIfEmpty(strings.TrimSpace(f.Email)),
		f.Message,
		f.Rating,
		f.CreatedAt,
	)
	if err != nil {
		return models.Feedback{}, err
	}
	f.ID, _ = res.LastInsertId()
	return f, nil
}

// ListAll returns feedback entries, newest first.
func (r FeedbackRepository) ListAll() ([]models.Feedback, error) {
	rows, err := r.db().Query(`
		SELECT id, name, COALESCE(email,''), message, rating, created_at
		FROM feedback
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		var rating sql.NullInt64
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Message, &rating, &f.CreatedAt); err != nil {
			return nil, err
		}
		if rating.Valid {
			n := int(rating.Int64)
			f.Rating = &n
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
