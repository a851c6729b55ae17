package usermap

import (
	"context"
	"fmt"

	"usermap-reconciler/core/database"

	"gorm.io/gorm"
)

// exportBatchSize bounds the rows sent per INSERT.
const exportBatchSize = 500

// Row is the database form of one name mapping. Names are not the key:
// invalid names keep their case and may collide under case-insensitive
// collations.
type Row struct {
	ID       uint   `gorm:"primaryKey;column:id;autoIncrement"`
	Name     string `gorm:"column:name;type:varchar(255);not null;index"`
	UUID     string `gorm:"column:uuid;type:char(36);not null;index"`
	Version  int    `gorm:"column:version;not null;default:0"`
	LastSeen int64  `gorm:"column:last_seen;not null;default:0"`
}

// TableName returns "usermap".
func (Row) TableName() string {
	return "usermap"
}

// rowColumns lists the columns Export requires.
var rowColumns = []string{"id", "name", "uuid", "version", "last_seen"}

// Rows converts r's name mapping to database rows, in insertion order.
func Rows(r *Result) []Row {
	entries := r.Entries()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{Name: e.Name, UUID: e.UUID.String(), Version: e.UUID.Version()}
		if e.LastSeen != nil {
			row.LastSeen = *e.LastSeen
		}
		rows = append(rows, row)
	}
	return rows
}

// Export replaces the contents of the usermap table with r's name mapping.
// The table is created if needed; the write happens in one transaction.
func Export(ctx context.Context, db *gorm.DB, r *Result) (int, error) {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&Row{}); err != nil {
		return 0, fmt.Errorf("failed to migrate usermap table: %w", err)
	}

	missing, err := database.MissingColumns(db, Row{}.TableName(), rowColumns)
	if err != nil {
		return 0, err
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("usermap table is missing columns: %v", missing)
	}

	rows := Rows(r)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Row{}).Error; err != nil {
			return fmt.Errorf("failed to clear usermap table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, exportBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert usermap rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
