// Package report prints per-category counts of both lists.
package report

import (
	"context"
	"errors"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/printers"
)

// Report configures `shoplist report`.
type Report struct {
	JSON    bool
	Service *app.Service
}

// Do renders the report to stdout.
func (r *Report) Do(_ context.Context) error {
	if r.Service == nil {
		return errors.New("can not report, no service")
	}
	res := r.Service.Report()
	pp := printers.PrettyPrint{}
	if r.JSON {
		return pp.JSON(res)
	}
	pp.NewLine()
	pp.Report(res)
	return nil
}
