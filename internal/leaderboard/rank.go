package leaderboard

import (
	"math"
	"sort"
)

func less(a, b Row) bool {
	if a.HasStats != b.HasStats {
		return a.HasStats
	}
	if a.WordsSolved != b.WordsSolved {
		return a.WordsSolved > b.WordsSolved
	}
	if a.TotalMoves != b.TotalMoves {
		return a.TotalMoves < b.TotalMoves
	}
	return a.UserID < b.UserID
}

// Rank orders rows and numbers them by position. Equal rows still get distinct ranks.
func Rank(rows []Row) []Entry {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	entries := make([]Entry, 0, len(sorted))
	for i, row := range sorted {
		entries = append(entries, Entry{
			Rank:            i + 1,
			Username:        row.Username,
			WordsSolved:     row.WordsSolved,
			TotalMoves:      row.TotalMoves,
			GamesPlayed:     row.GamesPlayed,
			AvgMovesPerWord: avgMovesPerWord(row.TotalMoves, row.WordsSolved),
		})
	}
	return entries
}

func avgMovesPerWord(totalMoves, wordsSolved int) float64 {
	if wordsSolved <= 0 {
		return 0
	}
	return math.Round(float64(totalMoves)/float64(wordsSolved)*100) / 100
}
