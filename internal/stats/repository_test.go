package stats_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/WordSlide/internal/stats"
	"github.com/thesrcielos/WordSlide/internal/testdb"
	"gorm.io/gorm"
)

func sessionTotals(t *testing.T, gdb *gorm.DB, userID uint, mode string) (words, moves, count int) {
	t.Helper()
	row := gdb.Raw(`
		SELECT COALESCE(SUM(words_solved), 0), COALESCE(SUM(moves_made), 0), COUNT(*)
		FROM game_sessions WHERE user_id = ? AND game_mode = ?
	`, userID, mode).Row()
	require.NoError(t, row.Scan(&words, &moves, &count))
	return
}

func aggregate(t *testing.T, gdb *gorm.DB, userID uint, mode string) []stats.GameModeStats {
	t.Helper()
	var rows []stats.GameModeStats
	require.NoError(t, gdb.Where("user_id = ? AND game_mode = ?", userID, mode).Find(&rows).Error)
	return rows
}

func TestRecordRound_CreatesThenIncrements(t *testing.T) {
	gdb := testdb.Open(t)
	repo := stats.NewGormStatsRepository(gdb)
	ctx := context.Background()
	u := testdb.CreateUser(t, gdb, "agg")
	mode := testdb.GameMode("mode")

	first := time.Now().UTC().Add(-time.Minute).Truncate(time.Millisecond)
	second := first.Add(30 * time.Second)
	require.NoError(t, repo.RecordRound(ctx, stats.Round{UserID: u.ID, GameMode: mode, Level: 1, WordsSolved: 3, TotalMoves: 12, PlayedAt: first}))
	require.NoError(t, repo.RecordRound(ctx, stats.Round{UserID: u.ID, GameMode: mode, Level: 2, WordsSolved: 4, TotalMoves: 9, PlayedAt: second}))

	rows := aggregate(t, gdb, u.ID, mode)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].WordsSolved)
	assert.Equal(t, 21, rows[0].TotalMoves)
	assert.Equal(t, 2, rows[0].GamesPlayed)
	assert.WithinDuration(t, second, rows[0].LastPlayed, time.Millisecond)

	words, moves, count := sessionTotals(t, gdb, u.ID, mode)
	assert.Equal(t, 7, words)
	assert.Equal(t, 21, moves)
	assert.Equal(t, 2, count)
}

func TestRecordRound_ConcurrentFirstSubmissions(t *testing.T) {
	gdb := testdb.Open(t)
	repo := stats.NewGormStatsRepository(gdb)
	ctx := context.Background()
	u := testdb.CreateUser(t, gdb, "race")
	mode := testdb.GameMode("race")

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.RecordRound(ctx, stats.Round{
				UserID: u.ID, GameMode: mode, Level: 1, WordsSolved: i + 1, TotalMoves: 10, PlayedAt: time.Now().UTC(),
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows := aggregate(t, gdb, u.ID, mode)
	require.Len(t, rows, 1)
	words, moves, count := sessionTotals(t, gdb, u.ID, mode)
	assert.Equal(t, words, rows[0].WordsSolved)
	assert.Equal(t, 36, rows[0].WordsSolved)
	assert.Equal(t, moves, rows[0].TotalMoves)
	assert.Equal(t, count, rows[0].GamesPlayed)
	assert.Equal(t, workers, rows[0].GamesPlayed)
}

func TestRecordRound_UnknownUserWritesNothing(t *testing.T) {
	gdb := testdb.Open(t)
	repo := stats.NewGormStatsRepository(gdb)
	mode := testdb.GameMode("ghost")

	err := repo.RecordRound(context.Background(), stats.Round{
		UserID: 987654321, GameMode: mode, Level: 1, WordsSolved: 1, TotalMoves: 1, PlayedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, stats.ErrUserNotFound)

	_, _, count := sessionTotals(t, gdb, 987654321, mode)
	assert.Zero(t, count)
	assert.Empty(t, aggregate(t, gdb, 987654321, mode))
}

func TestResetStats_Idempotent(t *testing.T) {
	gdb := testdb.Open(t)
	repo := stats.NewGormStatsRepository(gdb)
	ctx := context.Background()
	u := testdb.CreateUser(t, gdb, "reset")
	mode := testdb.GameMode("reset")

	require.NoError(t, repo.RecordRound(ctx, stats.Round{UserID: u.ID, GameMode: mode, Level: 1, WordsSolved: 5, TotalMoves: 25, PlayedAt: time.Now().UTC()}))

	require.NoError(t, repo.ResetStats(ctx, u.ID, mode))
	once := aggregate(t, gdb, u.ID, mode)
	require.NoError(t, repo.ResetStats(ctx, u.ID, mode))
	twice := aggregate(t, gdb, u.ID, mode)

	require.Len(t, once, 1)
	assert.Equal(t, once, twice)
	assert.Zero(t, twice[0].WordsSolved)
	assert.Zero(t, twice[0].TotalMoves)
	assert.Zero(t, twice[0].GamesPlayed)

	_, _, count := sessionTotals(t, gdb, u.ID, mode)
	assert.Equal(t, 1, count, "reset must not touch the session log")
}

func TestResetStats_NoRowIsNoop(t *testing.T) {
	gdb := testdb.Open(t)
	repo := stats.NewGormStatsRepository(gdb)
	u := testdb.CreateUser(t, gdb, "noop")
	mode := testdb.GameMode("noop")

	require.NoError(t, repo.ResetStats(context.Background(), u.ID, mode))
	assert.Empty(t, aggregate(t, gdb, u.ID, mode))

	assert.ErrorIs(t, repo.ResetStats(context.Background(), 987654321, mode), stats.ErrUserNotFound)
}

func TestRecentSessions_NewestFirst(t *testing.T) {
	gdb := testdb.Open(t)
	repo := stats.NewGormStatsRepository(gdb)
	ctx := context.Background()
	u := testdb.CreateUser(t, gdb, "recent")
	mode := testdb.GameMode("recent")

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.RecordRound(ctx, stats.Round{
			UserID: u.ID, GameMode: mode, Level: i + 1, WordsSolved: i, TotalMoves: i, PlayedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	sessions, err := repo.RecentSessions(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 3, sessions[0].Level)
	assert.Equal(t, 2, sessions[1].Level)
	assert.True(t, sessions[0].Completed)

	modes, err := repo.ListUserStats(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, modes, 1)
	assert.Equal(t, 3, modes[0].GamesPlayed)
}
