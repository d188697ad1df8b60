package libemit

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// writerLogger writes one plain-text line per entry to an io.Writer.
type writerLogger struct {
	writer io.Writer
	fields map[string]any
	now    func() time.Time
}

// NewWriterLogger creates a Logger that writes lines like
// "[2006-01-02 15:04:05] INFO [event=click]: message" to w.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{
		writer: w,
		fields: make(map[string]any),
		now:    time.Now,
	}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &writerLogger{writer: l.writer, fields: fields, now: l.now}
}

// formatFields renders fields sorted by key so lines are stable.
func (l *writerLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, l.fields[k])
	}
	sb.WriteString("]")
	return sb.String()
}

func (l *writerLogger) log(level, msg string) {
	timestamp := l.now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.writer, "[%s] %s%s: %s\n", timestamp, level, l.formatFields(), strings.TrimRight(msg, "\n"))
}

func (l *writerLogger) Debug(args ...any)                 { l.log("DEBUG", fmt.Sprint(args...)) }
func (l *writerLogger) Debugf(format string, args ...any) { l.log("DEBUG", fmt.Sprintf(format, args...)) }
func (l *writerLogger) Debugln(args ...any)               { l.log("DEBUG", fmt.Sprintln(args...)) }
func (l *writerLogger) Info(args ...any)                  { l.log("INFO", fmt.Sprint(args...)) }
func (l *writerLogger) Infof(format string, args ...any)  { l.log("INFO", fmt.Sprintf(format, args...)) }
func (l *writerLogger) Infoln(args ...any)                { l.log("INFO", fmt.Sprintln(args...)) }
func (l *writerLogger) Warn(args ...any)                  { l.log("WARN", fmt.Sprint(args...)) }
func (l *writerLogger) Warnf(format string, args ...any)  { l.log("WARN", fmt.Sprintf(format, args...)) }
func (l *writerLogger) Warnln(args ...any)                { l.log("WARN", fmt.Sprintln(args...)) }
func (l *writerLogger) Error(args ...any)                 { l.log("ERROR", fmt.Sprint(args...)) }
func (l *writerLogger) Errorf(format string, args ...any) { l.log("ERROR", fmt.Sprintf(format, args...)) }
func (l *writerLogger) Errorln(args ...any)               { l.log("ERROR", fmt.Sprintln(args...)) }
