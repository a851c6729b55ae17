package usermap

import (
	"context"
	"strings"
	"testing"

	"usermap-reconciler/core/database"
	"usermap-reconciler/core/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// exported reads the usermap table ordered by name, without row IDs.
func exported(t *testing.T, db *gorm.DB) []Row {
	t.Helper()
	var rows []Row
	require.NoError(t, db.Order("name").Find(&rows).Error)
	for i := range rows {
		rows[i].ID = 0
	}
	return rows
}

func TestExport(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	defer database.Close(db)

	n, err := Export(context.Background(), db, buildResult(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows := exported(t, db)
	assert.Equal(t, []Row{
		{Name: "alice", UUID: idAlice.String(), Version: 4, LastSeen: 100},
		{Name: "bob", UUID: idBob.String(), Version: 4, LastSeen: 200},
	}, rows)

	// a second export replaces the table contents
	next := &Result{Mode: ModeDump, Names: identity.NewNameIndex(), IDs: identity.NewSet()}
	next.Names.Set("carol", idAlice)
	n, err = Export(context.Background(), db, next)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []Row{{Name: "carol", UUID: idAlice.String(), Version: 4}}, exported(t, db))
}

func TestExport_Empty(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	defer database.Close(db)

	empty := &Result{Mode: ModeDump, Names: identity.NewNameIndex(), IDs: identity.NewSet()}
	n, err := Export(context.Background(), db, empty)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var count int64
	require.NoError(t, db.Model(&Row{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRows(t *testing.T) {
	rows := Rows(buildResult(t))
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Name: "bob", UUID: idBob.String(), Version: 4, LastSeen: 200}, rows[0])
}

func TestExport_CaseVariantAndLongNames(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	defer database.Close(db)

	long := strings.Repeat("x", 100)
	r := &Result{Mode: ModeDump, Names: identity.NewNameIndex(), IDs: identity.NewSet()}
	r.Names.Set("Bob", idBob)
	r.Names.Set("bob", idAlice)
	r.Names.Set(long, idAlice)

	n, err := Export(context.Background(), db, r)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows := exported(t, db)
	require.Len(t, rows, 3)
	assert.Equal(t, "Bob", rows[0].Name)
	assert.Equal(t, "bob", rows[1].Name)
	assert.Equal(t, long, rows[2].Name)
}
