package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "edupanel-debug.log"

// NewDebugLogger returns a JSON logger writing to path when enabled, or a
// logger that discards everything. The returned close func is never nil.
func NewDebugLogger(enabled bool, path string) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "15:04:05.000"})

	if !enabled {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	if path == "" {
		path = DebugLogPath
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("creating debug log: %w", err)
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.WithField("log_file", path).Debug("debug start")

	closeFn := func() {
		logger.Debug("debug end")
		_ = f.Close()
	}
	return logger, closeFn, nil
}

func logKeyPress(log logrus.FieldLogger, msg tea.KeyMsg) {
	log.WithFields(logrus.Fields{
		"key":  msg.String(),
		"type": fmt.Sprintf("%d", msg.Type),
	}).Debug("key press")
}

func logMouse(log logrus.FieldLogger, msg tea.MouseMsg, inCard bool) {
	log.WithFields(logrus.Fields{
		"x":       msg.X,
		"y":       msg.Y,
		"button":  msg.Button.String(),
		"in_card": inCard,
	}).Debug("mouse press")
}
