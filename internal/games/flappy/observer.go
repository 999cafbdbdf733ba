package flappy

import "github.com/charmbracelet/log"

// LogRounds returns an observer that logs every finished round at info level.
// A nil logger yields a nil observer, which disables notification.
func LogRounds(logger *log.Logger) RoundObserver {
	if logger == nil {
		return nil
	}
	return func(e RoundEnd) {
		logger.Info("round over", "round", e.Round, "score", e.Score, "best", e.Best, "frames", e.Frames)
	}
}
