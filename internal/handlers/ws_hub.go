package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHub раздает живой поток сигнала подключенным браузерным клиентам.
// Клиент получает готовые батчи сэмплов целиком, а не по одной точке.
type WSHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewWSHub создает пустой хаб
func NewWSHub() *WSHub {
	return &WSHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *WSHub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
}

func (h *WSHub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

func (h *WSHub) snapshot() []*websocket.Conn {
	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	return clients
}

// ClientCount возвращает количество подключенных клиентов
func (h *WSHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast рассылает JSON сообщение всем клиентам, отключая мертвые соединения
func (h *WSHub) Broadcast(payload []byte) {
	clients := h.snapshot()
	for _, c := range clients {
		_ = c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = c.Close()
			h.remove(c)
		}
	}
}

// HandleWS апгрейдит HTTP соединение и держит его до разрыва
func (h *WSHub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Ошибка апгрейда websocket: %v", err)
		return
	}
	h.add(conn)
	defer func() {
		h.remove(conn)
		conn.Close()
	}()

	// Клиенты только читают поток, входящие сообщения игнорируем
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Stop закрывает все клиентские соединения
func (h *WSHub) Stop() {
	for _, c := range h.snapshot() {
		_ = c.Close()
		h.remove(c)
	}
	log.Println("WS Hub остановлен")
}
