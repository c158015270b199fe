package repositories

import (
	"database/sql"
	"strings"

	intconfig "ridebook/internal/config"
	"ridebook/internal/domain"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// UpdateName applies the profile name change for one customer.
func (r CustomerRepository) UpdateName(customerID int64, name string) error {
	name = strings.TrimSpace(name)
	if customerID <= 0 {
		return domain.ValidationError{Field: "customer_id", Msg: "must be positive"}
	}
	if name == "" {
		return domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	res, err := r.db().Exec(`UPDATE customers SET name = ? WHERE id = ?`, name, customerID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// unchanged name also reports zero; verify existence before 404
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM customers WHERE id = ?`, customerID).Scan(&exists); err == nil && exists > 0 {
			return nil
		}
		return domain.NotFoundError{Resource: "customer"}
	}
	return nil
}

// Exists reports whether a customer row is present.
func (r CustomerRepository) Exists(customerID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM customers WHERE id = ?`, customerID).Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}
	return n > 0, nil
}
