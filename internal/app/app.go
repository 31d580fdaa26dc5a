package app

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/klokku/cal2/internal/config"
	"github.com/klokku/cal2/internal/utils"
	"github.com/klokku/cal2/pkg/calendar"
	"github.com/klokku/cal2/pkg/render"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const eventsFileHelp = `Events are loaded from ~/.cal2/cal2.ini, or ./cal2.ini when the former is missing.

Format:
   [holidays]
   12/25 Christmas
   1-1 New Year

   [birthdays]
   3/14 Albert

   [reminders]
   4/15 Taxes

   [colors]
   sunday_date = red
   holiday = bright_red
   january = cyan

Lines are MM/DD or MM-DD followed by a description. Outside the named
sections, descriptions containing "birthday" or "holiday" pick that category,
everything else is a reminder. Lines starting with # or ; are comments.`

// Application wires configuration, the calendar file and the command line.
type Application struct {
	cfg    config.Application
	clock  utils.Clock
	stdout io.Writer
	cli    *cli.App
}

// NewApplication loads the configuration and builds the command line
// application writing to stdout.
func NewApplication() (*Application, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}
	return New(cfg, utils.SystemClock{}, os.Stdout), nil
}

func New(cfg config.Application, clock utils.Clock, stdout io.Writer) *Application {
	a := &Application{cfg: cfg, clock: clock, stdout: stdout}
	a.cli = &cli.App{
		Name:        "cal2",
		Usage:       "display a colored calendar with events",
		UsageText:   "cal2 [options] [[day] month] year\ncal2 events [--month month]\ncal2 serve [--addr address]",
		Description: eventsFileHelp,
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "three", Aliases: []string{"3"}, Usage: "display prev/current/next month"},
			&cli.BoolFlag{Name: "monday", Aliases: []string{"m"}, Usage: "Monday as first day of week"},
			&cli.BoolFlag{Name: "year", Aliases: []string{"y"}, Usage: "display a calendar for the whole year"},
			&cli.BoolFlag{Name: "twelve", Aliases: []string{"Y"}, Usage: "display the next twelve months"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: cfg.EventsFile, Usage: "calendar file with events and colors"},
			&cli.StringFlag{Name: "color", Value: cfg.Color, Usage: "when to use colors: auto, always or never"},
		},
		Action: a.render,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve calendars as plain text over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: cfg.Serve.Addr, Usage: "listen address"},
				},
				Action: a.serve,
			},
			{
				Name:  "events",
				Usage: "list the events of the calendar file as CSV",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "month", Usage: "only list events of this month (1-12)"},
				},
				Action: a.listEvents,
			},
		},
	}
	return a
}

// Run parses args (including the program name) and executes the command.
func (a *Application) Run(args []string) error {
	return a.cli.Run(args)
}

func (a *Application) weekStart(c *cli.Context) (calendar.WeekStart, error) {
	if c.Bool("monday") {
		return calendar.MondayFirst, nil
	}
	return calendar.ParseWeekStart(a.cfg.WeekStart)
}

func (a *Application) render(c *cli.Context) error {
	weekStart, err := a.weekStart(c)
	if err != nil {
		return err
	}
	colorMode, err := config.ParseColorMode(c.String("color"))
	if err != nil {
		return err
	}

	deps := BuildDependencies(c.String("file"), weekStart, a.clock)
	opts := render.Options{
		Mode:      render.SelectMode(c.Bool("three"), c.Bool("year"), c.Bool("twelve")),
		Reference: ResolveReference(c.Args().Slice(), deps.RenderService.Today()),
		WeekStart: weekStart,
		Plain:     !a.useColor(colorMode),
	}
	if err := deps.RenderService.Render(a.stdout, opts); err != nil {
		return fmt.Errorf("failed to render calendar: %w", err)
	}
	return nil
}

// useColor resolves the color mode. In auto mode colors are used only when
// stdout is a terminal that supports them and NO_COLOR is unset.
func (a *Application) useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorNever:
		return false
	case config.ColorAuto:
		out := termenv.NewOutput(a.stdout)
		return out.ColorProfile() != termenv.Ascii && !out.EnvNoColor()
	}
	return true
}

func (a *Application) listEvents(c *cli.Context) error {
	month := c.Int("month")
	if month < 0 || month > 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	deps := BuildDependencies(c.String("file"), calendar.SundayFirst, a.clock)

	out, err := deps.EventCsvRenderer.Render(deps.Events.InMonth(month))
	if err != nil {
		return fmt.Errorf("failed to render events: %w", err)
	}
	_, err = io.WriteString(a.stdout, out)
	return err
}

func (a *Application) serve(c *cli.Context) error {
	weekStart, err := a.weekStart(c)
	if err != nil {
		return err
	}
	deps := BuildDependencies(c.String("file"), weekStart, a.clock)

	srv := &http.Server{
		Handler:      NewRouter(deps),
		Addr:         c.String("addr"),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infof("Starting server on %s", srv.Addr)
	return srv.ListenAndServe()
}
