package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Monitor is a hub of live dashboard connections keyed by student id. Each
// time a learning event is ingested, the fresh struggle assessment is pushed
// to every connection watching that student.
type Monitor struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

// NewMonitor creates an empty monitor hub.
func NewMonitor() *Monitor {
	return &Monitor{conns: make(map[string]map[*websocket.Conn]bool)}
}

// Handler upgrades the request and registers the connection for the student
// named in the query string.
func (m *Monitor) Handler(c *gin.Context) {
	studentID := c.Query("studentId")
	if studentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentId query parameter is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Monitor upgrade failed: %v", err)
		return
	}

	m.register(studentID, conn)

	// Read loop exists only to detect the peer closing.
	go func() {
		defer func() {
			m.unregister(studentID, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (m *Monitor) register(studentID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conns[studentID] == nil {
		m.conns[studentID] = make(map[*websocket.Conn]bool)
	}
	m.conns[studentID][conn] = true
}

func (m *Monitor) unregister(studentID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns[studentID], conn)
	if len(m.conns[studentID]) == 0 {
		delete(m.conns, studentID)
	}
}

// Broadcast sends payload to every connection watching the student.
// Connections that fail to write are dropped.
func (m *Monitor) Broadcast(studentID string, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.conns[studentID] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("Monitor write failed: %v", err)
			conn.Close()
			delete(m.conns[studentID], conn)
		}
	}
}

// WatcherCount returns the number of open connections for a student.
func (m *Monitor) WatcherCount(studentID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns[studentID])
}
