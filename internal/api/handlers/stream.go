package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/pkg/logger"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ScanHub pushes completed scans to websocket subscribers
// ⭐ SSOT: 스캔 결과 브로드캐스트는 여기서만
type ScanHub struct {
	logger *logger.Logger

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex // per-connection write lock
	last    []byte
}

// NewScanHub creates an empty hub
func NewScanHub(log *logger.Logger) *ScanHub {
	return &ScanHub{
		logger:  log,
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// ServeWS upgrades the connection and keeps it subscribed until the client leaves
// GET /ws/scan
func (h *ScanHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	writeMu := &sync.Mutex{}

	h.mu.Lock()
	h.clients[conn] = writeMu
	last := h.last
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("clients", total).Debug("Websocket client connected")

	// 최근 스캔 결과 즉시 전송
	if last != nil {
		h.write(conn, writeMu, last)
	}

	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Debug("Websocket read error")
			}
			return
		}
	}
}

// Broadcast sends the result to every subscriber and returns how many received it
func (h *ScanHub) Broadcast(result *contracts.ScanResult) int {
	data, err := json.Marshal(result)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal scan result")
		return 0
	}

	h.mu.Lock()
	h.last = data
	conns := make([]*websocket.Conn, 0, len(h.clients))
	locks := make([]*sync.Mutex, 0, len(h.clients))
	for conn, mu := range h.clients {
		conns = append(conns, conn)
		locks = append(locks, mu)
	}
	h.mu.Unlock()

	sent := 0
	for i, conn := range conns {
		if h.write(conn, locks[i], data) {
			sent++
		}
	}

	h.logger.WithFields(map[string]interface{}{
		"clients": len(conns),
		"sent":    sent,
	}).Debug("Scan result broadcast")

	return sent
}

// Count returns the number of connected subscribers
func (h *ScanHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every subscriber
func (h *ScanHub) Close() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.clients = make(map[*websocket.Conn]*sync.Mutex)
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(writeWait))
		conn.Close()
	}
}

func (h *ScanHub) write(conn *websocket.Conn, mu *sync.Mutex, data []byte) bool {
	mu.Lock()
	defer mu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.WithError(err).Debug("Websocket write failed, dropping client")
		h.remove(conn)
		return false
	}
	return true
}

func (h *ScanHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if ok {
		conn.Close()
	}
}
