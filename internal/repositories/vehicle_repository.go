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
	"ridebook/internal/utils"

	"github.com/go-sql-driver/mysql"
)

// VehicleRepository wraps DB access for vehicles with key-presence PATCH
// semantics: only keys supplied in the payload change, and supplied numeric
// fields that arrive as empty strings are stored as NULL.
type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleSelect = `
	SELECT
		id,
		name,
		COALESCE(vehicle_type,''),
		capacity,
		per_km_rate,
		base_rate,
		COALESCE(image_url,''),
		available,
		created_at,
		updated_at
	FROM vehicles`

func scanVehicle(row interface{ Scan(...any) error }) (models.Vehicle, error) {
	var (
		v        models.Vehicle
		capacity sql.NullInt64
		perKm    sql.NullFloat64
		base     sql.NullFloat64
		avail    bool
	)
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.VehicleType,
		&capacity,
		&perKm,
		&base,
		&v.ImageURL,
		&avail,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return models.Vehicle{}, err
	}
	if capacity.Valid {
		n := int(capacity.Int64)
		v.Capacity = &n
	}
	if perKm.Valid {
		f := perKm.Float64
		v.PerKmRate = &f
	}
	if base.Valid {
		f := base.Float64
		v.BaseRate = &f
	}
	v.Available = avail
	return v, nil
}

// List returns vehicles, optionally only the available ones.
func (r VehicleRepository) List(onlyAvailable bool) ([]models.Vehicle, error) {
	query := vehicleSelect + ` ORDER BY id DESC`
	if onlyAvailable {
		query = vehicleSelect + ` WHERE available = 1 ORDER BY id DESC`
	}
	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID loads one vehicle row.
func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	if id <= 0 {
		return models.Vehicle{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(vehicleSelect+` WHERE id = ? LIMIT 1`, id)
	return scanVehicle(row)
}

// Insert creates a vehicle and returns the stored row.
func (r VehicleRepository) Insert(v models.Vehicle) (models.Vehicle, error) {
	now := utils.NowUTC()
	res, err := r.db().Exec(`
		INSERT INTO vehicles (name, vehicle_type, capacity, per_km_rate, base_rate, image_url, available, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		strings.TrimSpace(v.Name),
		intdb.NullIfEmpty(strings.TrimSpace(v.VehicleType)),
		v.Capacity,
		v.PerKmRate,
		v.BaseRate,
		intdb.NullIfEmpty(strings.TrimSpace(v.ImageURL)),
		v.Available,
		now,
		now,
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return models.Vehicle{}, domain.ConflictError{Resource: "vehicle", Msg: "name already registered"}
		}
		return models.Vehicle{}, err
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

// Delete removes a vehicle by id.
func (r VehicleRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// vehiclePatchPayload parses the tolerant wire shapes once at the boundary.
type vehiclePatchPayload struct {
	Name        *string         `json:"name"`
	VehicleType *string         `json:"vehicle_type"`
	Capacity    utils.FlexInt   `json:"capacity"`
	PerKmRate   utils.FlexFloat `json:"per_km_rate"`
	BaseRate    utils.FlexFloat `json:"base_rate"`
	ImageURL    *string         `json:"image_url"`
	Available   *bool           `json:"available"`
}

type vehicleFieldPresence struct {
	Name        bool
	VehicleType bool
	Capacity    bool
	PerKmRate   bool
	BaseRate    bool
	ImageURL    bool
	Available   bool
}

// buildVehiclePatch turns raw JSON into SET clauses, respecting key presence.
func buildVehiclePatch(rawJSON []byte) ([]string, []any, error) {
	payloadKeys := map[string]bool{}
	var payloadMap map[string]any
	if err := json.Unmarshal(rawJSON, &payloadMap); err != nil {
		return nil, nil, domain.ValidationError{Msg: "invalid payload", Err: err}
	}
	for k := range payloadMap {
		payloadKeys[strings.ToLower(k)] = true
	}
	hasField := func(names ...string) bool {
		for _, n := range names {
			if payloadKeys[strings.ToLower(n)] {
				return true
			}
		}
		return false
	}

	var input vehiclePatchPayload
	if err := json.Unmarshal(rawJSON, &input); err != nil {
		return nil, nil, domain.ValidationError{Msg: "invalid payload", Err: err}
	}

	presence := vehicleFieldPresence{
		Name:        hasField("name"),
		VehicleType: hasField("vehicle_type", "vehicletype", "type"),
		Capacity:    hasField("capacity"),
		PerKmRate:   hasField("per_km_rate", "perkmrate"),
		BaseRate:    hasField("base_rate", "baserate"),
		ImageURL:    hasField("image_url", "imageurl"),
		Available:   hasField("available"),
	}

	sets := []string{}
	args := []any{}

	if presence.Name {
		name := ""
		if input.Name != nil {
			name = strings.TrimSpace(*input.Name)
		}
		if name == "" {
			return nil, nil, domain.ValidationError{Field: "name", Msg: "must not be empty"}
		}
		sets = append(sets, "name=?")
		args = append(args, name)
	}
	if presence.VehicleType {
		t := ""
		if input.VehicleType != nil {
			t = strings.TrimSpace(*input.VehicleType)
		}
		sets = append(sets, "vehicle_type=?")
		args = append(args, intdb.NullIfEmpty(t))
	}
	if presence.Capacity {
		sets = append(sets, "capacity=?")
		args = append(args, input.Capacity.Value)
	}
	if presence.PerKmRate {
		sets = append(sets, "per_km_rate=?")
		args = append(args, input.PerKmRate.Value)
	}
	if presence.BaseRate {
		sets = append(sets, "base_rate=?")
		args = append(args, input.BaseRate.Value)
	}
	if presence.ImageURL {
		u := ""
		if input.ImageURL != nil {
			u = strings.TrimSpace(*input.ImageURL)
		}
		sets = append(sets, "image_url=?")
		args = append(args, intdb.NullIfEmpty(u))
	}
	if presence.Available {
		avail := true
		if input.Available != nil {
			avail = *input.Available
		}
		sets = append(sets, "available=?")
		args = append(args, avail)
	}

	return sets, args, nil
}

// UpdatePartial applies only fields present in raw JSON (key presence) and
// returns the updated row.
func (r VehicleRepository) UpdatePartial(id int64, rawJSON []byte, now time.Time) (models.Vehicle, error) {
	if id <= 0 {
		return models.Vehicle{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	sets, args, err := buildVehiclePatch(rawJSON)
	if err != nil {
		return models.Vehicle{}, err
	}
	if len(sets) == 0 {
		return r.GetByID(id)
	}

	sets = append(sets, "updated_at=?")
	args = append(args, now, id)

	res, err := r.db().Exec(`UPDATE vehicles SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return models.Vehicle{}, domain.ConflictError{Resource: "vehicle", Msg: "name already registered"}
		}
		return models.Vehicle{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// row may exist with identical values; distinguish via lookup
		if _, lookupErr := r.GetByID(id); lookupErr == sql.ErrNoRows {
			return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
		}
	}
	return r.GetByID(id)
}
