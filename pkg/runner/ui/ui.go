package ui

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/app"
	teaui "tableflip.dev/shoplist/pkg/tui/app"
)

// UI configures `shoplist ui`.
type UI struct {
	Service *app.Service
	Log     zerolog.Logger
}

// Do runs the TUI until the user quits.
func (d *UI) Do(_ context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no service")
	}
	d.Log.Debug().Msg("starting ui")
	return teaui.Run(d.Service, teaui.WithLogger(d.Log))
}
