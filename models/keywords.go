package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Keywords is the canonical stored form of a project's keyword list: an
// ordered slice of non-empty trimmed strings. It is persisted as a JSON array
// and re-normalized on scan, so reads always yield a well-formed slice even
// when the stored encoding is not one.
type Keywords []string

func (k Keywords) Value() (driver.Value, error) {
	if k == nil {
		k = Keywords{}
	}
	data, err := json.Marshal([]string(k))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (k *Keywords) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*k = Keywords{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("keywords: unsupported column type %T", src)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		*k = NormalizeKeywords(KeywordList(list...))
		return nil
	}

	// Rows written before keywords became a JSON array may hold a bare
	// comma-delimited string, possibly JSON-quoted.
	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		single = string(raw)
	}
	*k = NormalizeKeywords(KeywordString(single))
	return nil
}

// GormDBDataType keeps the column jsonb on Postgres while letting the SQLite
// test database fall back to plain text.
func (Keywords) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "TEXT"
}
