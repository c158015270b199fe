package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "ridebook/internal/config"
	"ridebook/internal/domain"
)

// MetadataRepository backs the generic admin metadata surface: free-form
// JSON values keyed by (collection, item_key). Collections are allow-listed
// so the surface cannot be used to stash arbitrary table names.
type MetadataRepository struct {
	DB *sql.DB
}

func (r MetadataRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var allowedCollections = map[string]bool{
	"site_content":  true,
	"faq":           true,
	"testimonials":  true,
	"announcements": true,
}

type MetadataItem struct {
	ID         int64           `json:"id"`
	Collection string          `json:"collection"`
	Key        string          `json:"key"`
	Value      json.RawMessage `json:"value"`
}

func normalizeCollection(collection string) (string, error) {
	collection = strings.ToLower(strings.TrimSpace(collection))
	if collection == "" {
		return "", domain.ValidationError{Field: "collection", Msg: "is required"}
	}
	if !allowedCollections[collection] {
		return "", domain.ValidationError{Field: "collection", Msg: "unknown collection " + collection}
	}
	return collection, nil
}

// Upsert inserts or replaces one metadata item.
func (r MetadataRepository) Upsert(collection, key string, value json.RawMessage) (MetadataItem, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return MetadataItem{}, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return MetadataItem{}, domain.ValidationError{Field: "key", Msg: "is required"}
	}
	if len(value) == 0 {
		value = json.RawMessage(`null`)
	}

	_, err = r.db().Exec(`
		INSERT INTO metadata (collection, item_key, value, created_at, updated_at)
		VALUES (?,?,?,NOW(),NOW())
		ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = NOW()`,
		collection, key, string(value),
	)
	if err != nil {
		return MetadataItem{}, err
	}
	return r.Get(collection, key)
}

// Get loads one metadata item.
func (r MetadataRepository) Get(collection, key string) (MetadataItem, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return MetadataItem{}, err
	}
	var item MetadataItem
	var raw string
	err = r.db().QueryRow(`
		SELECT id, collection, item_key, value
		FROM metadata
		WHERE collection = ? AND item_key = ?
		LIMIT 1`, collection, strings.TrimSpace(key)).Scan(&item.ID, &item.Collection, &item.Key, &raw)
	if err != nil {
		return MetadataItem{}, err
	}
	item.Value = json.RawMessage(raw)
	return item, nil
}

// List returns every item in a collection.
func (r MetadataRepository) List(collection string) ([]MetadataItem, error) {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return nil, err
	}
	rows, err := r.db().Query(`
		SELECT id, collection, item_key, value
		FROM metadata
		WHERE collection = ?
		ORDER BY item_key ASC`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []MetadataItem{}
	for rows.Next() {
		var item MetadataItem
		var raw string
		if err := rows.Scan(&item.ID, &item.Collection, &item.Key, &raw); err != nil {
			return nil, err
		}
		item.Value = json.RawMessage(raw)
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes one item.
func (r MetadataRepository) Delete(collection, key string) error {
	collection, err := normalizeCollection(collection)
	if err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM metadata WHERE collection = ? AND item_key = ?`, collection, strings.TrimSpace(key))
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "metadata item"}
	}
	return nil
}
