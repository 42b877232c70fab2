package app

import (
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vancomm/minesweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.ws, a.cfg)

	a.router.Use(chimw.RequestID)
	a.router.Use(chimw.RealIP)
	a.router.Use(chimw.Recoverer)

	a.router.Get("/healthz", handlers.Healthz)
	a.router.Get("/options", game.Options)
	a.router.Get("/play", game.Play)
}
