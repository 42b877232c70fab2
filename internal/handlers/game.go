package handlers

import (
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/locale"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/timer"
)

const writeWait = 10 * time.Second

type GameHandler struct {
	log     logrus.FieldLogger
	ws      *config.WebSocket
	cfg     *config.App
	newRand func() *rand.Rand
}

func NewGameHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	cfg *config.App,
) *GameHandler {
	handler := &GameHandler{
		log:     log,
		ws:      ws,
		cfg:     cfg,
		newRand: mines.NewRand,
	}

	return handler
}

func (g GameHandler) parseRequest(r *http.Request) (mines.Options, locale.Bundle, error) {
	dto, err := ParseOptionsDTO(r.URL.Query())
	if err != nil {
		return mines.Options{}, locale.Bundle{}, err
	}
	opts, err := dto.Options()
	if err != nil {
		return mines.Options{}, locale.Bundle{}, err
	}
	return opts, locale.Negotiate(dto.Lang, r.Header.Get("Accept-Language")), nil
}

func (g GameHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, bundle, err := g.parseRequest(r)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	sendJSONOrLog(w, g.log, NewOptionsResponseDTO(opts, bundle))
}

// wsConn serializes writes from the read loop and the timer goroutine.
type wsConn struct {
	mu sync.Mutex
	c  *websocket.Conn
}

func (c *wsConn) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.c.WriteJSON(v)
}

// Play runs one game over a websocket. Every text frame holds newline
// separated commands; the session state is written back after each frame
// and elapsed seconds are pushed as the timer ticks.
func (g GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	opts, bundle, err := g.parseRequest(r)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	conn := &wsConn{c: c}
	log := g.log.WithField("remote_addr", r.RemoteAddr)

	tm := timer.New(g.cfg.TimerInterval, g.cfg.TimerLimit, func(count int) {
		if err := conn.send(TickDTO{Elapsed: count}); err != nil {
			log.WithError(err).Debug("unable to send tick")
		}
	})
	defer tm.Reset()

	session, err := mines.NewSession(opts, g.newRand(), tm)
	if err != nil {
		log.WithError(err).Error("unable to start session")
		return
	}
	log.WithField("params", session.Params().String()).Info("game connected")

	if err := conn.send(NewStateDTO(session, tm.Count(), bundle)); err != nil {
		log.WithError(err).Warn("unable to send state")
		return
	}

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("abnormal ws break")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)
		for i, cmd := range iterBySep(text, "\n") {
			if err := executeCommand(session, cmd); err != nil {
				log.WithError(err).WithField("command", cmd).Debug("rejected command")
				if err := conn.send(CommandErrorDTO{
					Error:   err.Error(),
					Line:    i,
					Command: cmd,
				}); err != nil {
					log.WithError(err).Warn("unable to send error")
					return
				}
			}
		}
		if err := conn.send(NewStateDTO(session, tm.Count(), bundle)); err != nil {
			log.WithError(err).Warn("unable to send state")
			break
		}
		log.Debug("\t< <session state>")
	}
}
