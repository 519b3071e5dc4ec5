package leaderboard

// Row is one user joined against their stats for a single mode.
type Row struct {
	UserID      uint
	Username    string
	WordsSolved int
	TotalMoves  int
	GamesPlayed int
	HasStats    bool
}

type Entry struct {
	Rank            int     `json:"rank"`
	Username        string  `json:"username"`
	WordsSolved     int     `json:"wordsSolved"`
	TotalMoves      int     `json:"totalMoves"`
	GamesPlayed     int     `json:"gamesPlayed"`
	AvgMovesPerWord float64 `json:"avgMovesPerWord"`
}
