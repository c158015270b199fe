package repositories

import (
	"database/sql"

	intconfig "ridebook/internal/config"
	"ridebook/internal/domain"
	"ridebook/internal/domain/models"
)

// CouponRepository reads and consumes coupon rows. Coupons are never created
// or edited through this service.
type CouponRepository struct {
	DB *sql.DB
}

func (r CouponRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByCode loads a coupon by its normalized code (exact equality).
func (r CouponRepository) GetByCode(code string) (models.Coupon, error) {
	if code == "" {
		return models.Coupon{}, sql.ErrNoRows
	}

	var (
		c          models.Coupon
		validFrom  sql.NullTime
		validTo    sql.NullTime
		usageLimit sql.NullInt64
		flat       sql.NullFloat64
		percent    sql.NullFloat64
	)

	err := r.db().QueryRow(`
		SELECT id, code, active, valid_from, valid_to,
		       usage_limit, COALESCE(uses_count,0),
		       discount_flat, discount_percent
		FROM coupons
		WHERE code = ?
		LIMIT 1`, code).Scan(
		&c.ID,
		&c.Code,
		&c.Active,
		&validFrom,
		&validTo,
		&usageLimit,
		&c.UsesCount,
		&flat,
		&percent,
	)
	if err != nil {
		return models.Coupon{}, err
	}

	if validFrom.Valid {
		t := validFrom.Time
		c.ValidFrom = &t
	}
	if validTo.Valid {
		t := validTo.Time
		c.ValidTo = &t
	}
	if usageLimit.Valid {
		n := int(usageLimit.Int64)
		c.UsageLimit = &n
	}
	if flat.Valid {
		v := flat.Float64
		c.DiscountFlat = &v
	}
	if percent.Valid {
		v := percent.Float64
		c.DiscountPercent = &v
	}
	return c, nil
}

// ConsumeTx increments the usage counter inside the caller's transaction.
// The WHERE guard makes the cap check and the increment one atomic statement;
// zero rows affected means the coupon is gone, inactive, or capped out.
func (r CouponRepository) ConsumeTx(tx *sql.Tx, code string) error {
	res, err := tx.Exec(`
		UPDATE coupons
		SET uses_count = COALESCE(uses_count,0) + 1
		WHERE code = ?
		  AND active = 1
		  AND (usage_limit IS NULL OR COALESCE(uses_count,0) < usage_limit)`,
		code,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ConflictError{Resource: "coupon", Msg: "cannot be consumed (inactive or usage limit reached)"}
	}
	return nil
}
