package index

import "log/slog"

type App interface {
	Verbose() *bool
	Logger() *slog.Logger
}
