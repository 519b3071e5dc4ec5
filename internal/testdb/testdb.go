// Package testdb opens the PostgreSQL database named by TEST_DATABASE_URL for
// repository tests and skips the calling test when it is not set.
package testdb

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/WordSlide/internal/stats"
	"github.com/thesrcielos/WordSlide/internal/user"
	"github.com/thesrcielos/WordSlide/pkg/db"
	"gorm.io/gorm"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	gdb, err := db.OpenDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb, &user.User{}, &stats.GameModeStats{}, &stats.GameSession{}))

	t.Cleanup(func() {
		_ = db.Close(gdb)
	})
	return gdb
}

// CreateUser inserts a user with a unique name and deletes it, with its stats, when the test ends.
func CreateUser(t *testing.T, gdb *gorm.DB, prefix string) *user.User {
	t.Helper()
	u := &user.User{
		Username:     prefix + "-" + uuid.New().String()[:8],
		PasswordHash: "x",
	}
	require.NoError(t, gdb.Create(u).Error)

	t.Cleanup(func() {
		gdb.Exec("DELETE FROM users WHERE id = ?", u.ID)
	})
	return u
}

// GameMode returns a mode name no other test uses.
func GameMode(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}
