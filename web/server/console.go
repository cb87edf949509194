package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// ConsoleMessage is one line logged while serving a render
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RenderLogger implements core.Logger for a single request. Lines go to the
// server log tagged with the render ID and are returned to the client in the
// X-Render-Log header (see Summary).
type RenderLogger struct {
	renderID string

	mu       sync.Mutex
	messages []ConsoleMessage
}

// NewRenderLogger creates a logger for a specific render
func NewRenderLogger(renderID string) *RenderLogger {
	return &RenderLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", rl.renderID, message)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.messages = append(rl.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
	})
}

// Messages returns a copy of everything logged so far
func (rl *RenderLogger) Messages() []ConsoleMessage {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return append([]ConsoleMessage(nil), rl.messages...)
}

// Summary joins the logged lines with "; " so they fit in one header value
func (rl *RenderLogger) Summary() string {
	messages := rl.Messages()
	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = strings.ReplaceAll(msg.Message, "\n", " ")
	}
	return strings.Join(lines, "; ")
}
