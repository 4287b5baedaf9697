package store

import "log/slog"

// Logging wraps next so every reduced action is logged at debug level.
func Logging(logger *slog.Logger, next Reducer) Reducer {
	if logger == nil {
		return next
	}
	return func(s State, a Action) State {
		out := next(s, a)
		logger.Debug("action",
			"type", a.Type(),
			"page", out.App.Page,
			"offline", out.App.Offline,
		)
		return out
	}
}
