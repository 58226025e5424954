package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recera/haven/app/routes"
	"github.com/recera/haven/cmd/haven/internal/ui"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/site"
	"github.com/recera/haven/pkg/view/htmlview"
)

func newDoctorCommand(a *app) *cobra.Command {
	var reducedMotion bool

	cmd := &cobra.Command{
		Use:   "doctor [page.html]",
		Short: "Check which behaviours a page supports",
		Long: `Mounts every site behaviour on a page (default: a freshly rendered index)
and reports which are active and why the others are inert.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &builder{cfg: a.cfg, log: a.log}
			var src io.Reader
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			} else {
				c, err := b.content()
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := routes.RenderIndex(&buf, c, routes.PageOptions{WasmName: a.cfg.Build.WasmName}); err != nil {
					return err
				}
				src = &buf
			}

			results, err := diagnose(src, reducedMotion)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Report("haven doctor", rows(results)))
			a.log.Debug("doctor finished", zap.Int("components", len(results)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "Simulate a reduced-motion preference")
	return cmd
}

// diagnose mounts the site on a headless copy of the page, reading content
// from the page's own content block the way the client does
func diagnose(r io.Reader, reducedMotion bool) ([]site.Result, error) {
	page, err := htmlview.Parse(r)
	if err != nil {
		return nil, err
	}
	page.SetReducedMotion(reducedMotion)

	c := site.Default()
	if block := page.ByID(routes.ContentScriptID); block != nil {
		if parsed, err := site.Parse([]byte(block.Text())); err == nil {
			c = parsed
		}
	}

	s := site.Mount(page, scheduler.NewScheduler(scheduler.NewManual()), c, site.Options{Now: time.Now()})
	defer s.Stop()
	return s.Results(), nil
}

func rows(results []site.Result) []ui.Row {
	out := make([]ui.Row, 0, len(results))
	for _, r := range results {
		row := ui.Row{Name: r.Component, OK: r.Active(), Detail: "active"}
		if r.Err != nil {
			row.Detail = r.Err.Error()
		}
		out = append(out, row)
	}
	return out
}
