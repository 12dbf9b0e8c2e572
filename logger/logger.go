package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Logger buffers journal lines in memory and appends them to LogPath when
// flushed. An empty LogPath keeps everything in memory. Terminal output goes
// through a charm logger.
type Logger struct {
	LogPath         string
	LogLineLock     sync.Mutex
	LogLines        []string
	PrintToTerminal bool

	term *log.Logger
}

func NewLogger(logPath string) *Logger {
	return NewLoggerTo(logPath, os.Stderr)
}

// NewLoggerTo is NewLogger with the terminal output sent to w.
func NewLoggerTo(logPath string, w io.Writer) *Logger {
	l := &Logger{
		LogPath:  logPath,
		LogLines: make([]string, 0),
		term: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Prefix:          "dvn",
		}),
	}
	l.LogLines = append(l.LogLines, fmt.Sprintf("Logger started, %s", time.Now().Format(time.RFC3339)))
	return l
}

// Terminal exposes the structured logger for callers that want key/value
// output directly.
func (l *Logger) Terminal() *log.Logger {
	return l.term
}

func (l *Logger) SetToPrintToTerminal() {
	l.PrintToTerminal = true
}

func (l *Logger) SetToNotPrintToTerminal() {
	l.PrintToTerminal = false
}

func (l *Logger) Log(args ...interface{}) {
	l.LogLineLock.Lock()
	defer l.LogLineLock.Unlock()
	msg := fmt.Sprint(args...)
	l.LogLines = append(l.LogLines, "\t"+msg)

	if l.PrintToTerminal {
		l.term.Info(msg)
	}
}

func (l *Logger) Logf(format string, args ...interface{}) {
	l.LogLineLock.Lock()
	defer l.LogLineLock.Unlock()
	msg := fmt.Sprintf(format, args...)
	l.LogLines = append(l.LogLines, "\t"+msg)

	if l.PrintToTerminal {
		l.term.Info(msg)
	}
}

// LogError journals msg and always reports it on the terminal.
func (l *Logger) LogError(msg string, err error) {
	l.LogLineLock.Lock()
	defer l.LogLineLock.Unlock()
	l.LogLines = append(l.LogLines, fmt.Sprintf("\t%s: %v", msg, err))
	l.term.Error(msg, "err", err)
}

// Lines returns a copy of the lines not yet flushed.
func (l *Logger) Lines() []string {
	l.LogLineLock.Lock()
	defer l.LogLineLock.Unlock()
	out := make([]string, len(l.LogLines))
	copy(out, l.LogLines)
	return out
}

// Flush appends the buffered lines to LogPath and clears the buffer. With no
// LogPath the buffer is kept.
func (l *Logger) Flush() error {
	l.LogLineLock.Lock()
	defer l.LogLineLock.Unlock()
	return l.flushLocked()
}

func (l *Logger) flushLocked() error {
	if l.LogPath == "" || len(l.LogLines) == 0 {
		return nil
	}
	file, err := os.OpenFile(l.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	for _, line := range l.LogLines {
		if _, err := file.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write log file: %w", err)
		}
	}
	l.LogLines = make([]string, 0)
	return nil
}

func (l *Logger) Close() {
	l.Log("Logger closed")
	l.LogLineLock.Lock()
	defer l.LogLineLock.Unlock()
	if err := l.flushLocked(); err != nil {
		l.term.Error("flush on close", "err", err)
	}
}
