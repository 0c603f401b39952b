package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/logging"
	"tableflip.dev/shoplist/pkg/runner/ui"
	"tableflip.dev/shoplist/pkg/store"
	"tableflip.dev/shoplist/pkg/view"
)

// session is the configured service plus the logger behind it.
type session struct {
	svc      *app.Service
	log      zerolog.Logger
	closeLog func() error
}

func (s *session) Close() {
	if s.closeLog != nil {
		_ = s.closeLog()
	}
}

type sessionOptions struct {
	// logFallback receives logs when log.file is not configured.
	logFallback io.Writer
	// ephemeral keeps all records in memory, seeded with demo data.
	ephemeral bool
}

func openSession(o sessionOptions) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.New(logging.Config{
		Level:    cfg.LogLevel(),
		File:     cfg.LogFile(),
		Fallback: o.logFallback,
	})
	if err != nil {
		return nil, err
	}

	var p store.Persistence
	if o.ephemeral {
		mem := store.NewMemory()
		if err := ui.Seed(mem); err != nil {
			_ = closeLog()
			return nil, err
		}
		p = mem
	} else {
		p, err = store.Load(cfg, log)
		if err != nil {
			_ = closeLog()
			return nil, err
		}
	}

	log.Debug().Str("path", cfg.BasePath()).Bool("ephemeral", o.ephemeral).Msg("session opened")
	svc := app.New(p,
		app.WithLogger(log),
		app.WithLocale(view.ParseLocale(cfg.Locale())),
	)
	return &session{svc: svc, log: log, closeLog: closeLog}, nil
}

// openCLISession logs to stderr unless log.file is set.
func openCLISession() (*session, error) {
	return openSession(sessionOptions{logFallback: os.Stderr})
}
