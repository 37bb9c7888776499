package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"gridnav/internal/network"
	"gridnav/internal/sim"
	"gridnav/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - подписчик потока снапшотов. Поток односторонний:
// клиент ничего не командует, только смотрит.
type Client struct {
	Hub  *network.Broadcaster
	Conn *websocket.Conn
	ID   int
	Feed chan sim.Snapshot
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	id, feed := s.Hub.Register()
	client := &Client{Hub: s.Hub, Conn: conn, ID: id, Feed: feed}
	logger.Log.WithField("subscriber", id).Info("Viewer connected")

	// Сразу отдаем текущее состояние, не дожидаясь тика
	if err := conn.WriteJSON(s.Sim.Snapshot()); err != nil {
		logger.Log.WithError(err).Warn("failed to send initial snapshot")
	}

	go client.writePump()
	go client.readPump()
}

// writePump гонит снапшоты и пинги в сокет.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	for {
		select {
		case snap, ok := <-c.Feed:
			if !ok {
				// Hub закрыл канал
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.Conn.WriteJSON(snap); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump нужен только чтобы заметить закрытие сокета и обновлять
// дедлайн по понгам. Входящие сообщения игнорируются.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.ID)
		logger.Log.WithField("subscriber", c.ID).Info("Viewer disconnected")
	}()

	c.Conn.SetReadLimit(512)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
