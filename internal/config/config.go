package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klokku/cal2/pkg/calendar"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const (
	Dir            = ".cal2"
	FileName       = "cal2.yaml"
	EventsFileName = "cal2.ini"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var ErrInvalidColorMode = errors.New("color mode must be one of auto, always, never")

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAlways, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
}

type Application struct {
	EventsFile string `koanf:"eventsfile"`
	WeekStart  string `koanf:"weekstart"`
	Color      string `koanf:"color"`
	Serve      Serve  `koanf:"serve"`
}

type Serve struct {
	Addr string `koanf:"addr"`
}

func defaults() Application {
	return Application{
		WeekStart: calendar.SundayFirst.String(),
		Color:     string(ColorAlways),
		Serve: Serve{
			Addr: ":8181",
		},
	}
}

// DefaultPath is $HOME/.cal2/cal2.yaml, or ./cal2.yaml when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, Dir, FileName)
}

// Load layers built-in defaults, the optional YAML file at path and CAL2_*
// environment variables, in that order.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Debugf("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "CAL2_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CAL2_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if err := app.Validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (a Application) Validate() error {
	if _, err := calendar.ParseWeekStart(a.WeekStart); err != nil {
		return fmt.Errorf("invalid weekstart: %w", err)
	}
	if _, err := ParseColorMode(a.Color); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}
	return nil
}

// LocateEventsFile picks the calendar file: an explicit path wins, then
// $HOME/.cal2/cal2.ini, then ./cal2.ini. When none exists the home path is
// returned so that the caller reports where it looked.
func LocateEventsFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, Dir, EventsFileName))
	}
	candidates = append(candidates, EventsFileName)

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return candidates[0]
}
