package app

import (
	"log/slog"
	"os"
)

type App struct {
	VerboseFlag bool
	Log         *slog.Logger
}

func New(verbose bool) *App {
	// * raise level when verbose
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// * construct logger instance, not the process-wide default
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return &App{
		VerboseFlag: verbose,
		Log:         slog.New(handler),
	}
}

func (r *App) Verbose() *bool {
	return &r.VerboseFlag
}

func (r *App) Logger() *slog.Logger {
	return r.Log
}
