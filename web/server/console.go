package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Console message levels
const (
	levelInfo     = "info"
	levelProgress = "progress"
)

// ConsoleMessage is one line of renderer output forwarded to the browser.
// Progress lines carry the dispatched percentage in Progress.
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Scene     string    `json:"scene"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	Progress  int       `json:"progress,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WebLogger implements core.Logger for one render, sending each message to a
// console channel as well as stdout
type WebLogger struct {
	renderID    string
	scene       string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for the render of sceneName
func NewWebLogger(renderID, sceneName string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		scene:       sceneName,
		consoleChan: consoleChan,
	}
}

// Printf writes the message to stdout and forwards it without blocking.
// Messages that are only whitespace, such as the newline ending a progress
// line, are not forwarded.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Print(message)

	text := strings.TrimSpace(message)
	if wl.consoleChan == nil || text == "" {
		return
	}

	msg := ConsoleMessage{
		RenderID:  wl.renderID,
		Scene:     wl.scene,
		Message:   text,
		Level:     levelInfo,
		Timestamp: time.Now(),
	}
	if percent, ok := parseProgress(message); ok {
		msg.Level = levelProgress
		msg.Progress = percent
	}

	select {
	case wl.consoleChan <- msg:
	default:
		// Channel full; the render must not wait on the browser
	}
}

// parseProgress recognizes the renderer's "\r NN%" progress lines
func parseProgress(message string) (int, bool) {
	if !strings.HasPrefix(message, "\r") {
		return 0, false
	}
	var percent int
	if _, err := fmt.Sscanf(strings.TrimSpace(message), "%d%%", &percent); err != nil {
		return 0, false
	}
	return percent, true
}
