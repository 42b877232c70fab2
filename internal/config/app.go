package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/timer"
)

type App struct {
	Addr          string
	Development   bool
	TimerInterval time.Duration
	TimerLimit    int
	CorsOrigins   []string
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func NewApp() (*App, error) {
	app := &App{
		Addr:          ":8080",
		Development:   Development(),
		TimerInterval: time.Second,
		TimerLimit:    timer.DefaultLimit,
	}

	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		app.Addr = addr
	}

	if intervalStr, ok := os.LookupEnv("TIMER_INTERVAL"); ok {
		interval, err := timer.ParseInterval(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TIMER_INTERVAL: %w", err)
		}
		app.TimerInterval = interval
	}

	if limitStr, ok := os.LookupEnv("TIMER_LIMIT"); ok {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("TIMER_LIMIT must be a non-negative int, got %q", limitStr)
		}
		app.TimerLimit = limit
	}

	if originsStr, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		for _, origin := range strings.Split(originsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				app.CorsOrigins = append(app.CorsOrigins, origin)
			}
		}
	}

	return app, nil
}

func (c App) Fields() logrus.Fields {
	return logrus.Fields{
		"addr":           c.Addr,
		"development":    c.Development,
		"timer_interval": c.TimerInterval.String(),
		"timer_limit":    c.TimerLimit,
		"cors_origins":   c.CorsOrigins,
	}
}
