// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to open the database the reconciled
// usermap is exported to. SQLite (a local file, the default) and MySQL are
// supported.
//
// # Schema Inspection
//
// GetTableColumns returns the column definitions of a table for either
// dialect, which the export uses to verify the target table before writing.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "usermap")
package database
