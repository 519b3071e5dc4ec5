package metrics

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thesrcielos/WordSlide/internal/apperrors"
)

var (
	RoundsSubmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordslide_rounds_submitted_total",
		Help: "Rounds recorded, by game mode.",
	}, []string{"game_mode"})

	StatsResetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordslide_stats_resets_total",
		Help: "Stats resets applied, by game mode.",
	}, []string{"game_mode"})

	LeaderboardRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordslide_leaderboard_requests_total",
		Help: "Leaderboard reads, by game mode.",
	}, []string{"game_mode"})

	StorageErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordslide_storage_errors_total",
		Help: "Persistence failures, by operation.",
	}, []string{"operation"})

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordslide_http_request_duration_seconds",
		Help:    "HTTP handler duration.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route", "status"})

	LiveConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wordslide_live_connections",
		Help: "Open live leaderboard websocket connections.",
	})
)

// MaxGameModeLabels caps the distinct game_mode label values. Modes seen after
// the cap is reached are counted under OtherGameMode.
const (
	MaxGameModeLabels = 32
	OtherGameMode     = "other"
)

var gameModeLabels = struct {
	sync.Mutex
	seen map[string]struct{}
}{seen: make(map[string]struct{})}

// GameModeLabel returns the label value to record for mode.
func GameModeLabel(mode string) string {
	gameModeLabels.Lock()
	defer gameModeLabels.Unlock()

	if _, ok := gameModeLabels.seen[mode]; ok {
		return mode
	}
	if len(gameModeLabels.seen) >= MaxGameModeLabels {
		return OtherGameMode
	}
	gameModeLabels.seen[mode] = struct{}{}
	return mode
}

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RoundsSubmittedTotal,
		StatsResetsTotal,
		LeaderboardRequestsTotal,
		StorageErrorsTotal,
		HTTPRequestDurationSeconds,
		LiveConnections,
	)
}

// Middleware records request duration labelled by the matched route, not the raw path.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else if appErr, ok := apperrors.As(err); ok {
					status = appErr.Code
				} else {
					status = 500
				}
			}
			HTTPRequestDurationSeconds.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
