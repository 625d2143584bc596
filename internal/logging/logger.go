// Package logging writes structured JSON lines to the process log. The
// battle engine logs through it exclusively; resolution itself never fails
// on a log problem.
package logging

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

type Fields map[string]interface{}

// debug is enabled via ANIMECLASH_DEBUG for local move-pipeline tracing.
var debug = os.Getenv("ANIMECLASH_DEBUG") != ""

func emit(level, msg string, fields Fields) {
	entry := make(Fields, len(fields)+3)
	for k, v := range fields {
		entry[k] = v
	}
	entry["level"] = level
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["msg"] = msg
	b, err := json.Marshal(entry)
	if err != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Debug logs only when ANIMECLASH_DEBUG is set.
func Debug(msg string, fields Fields) {
	if debug {
		emit("debug", msg, fields)
	}
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, fields)
}

// Warn logs a recoverable problem. The battle engine uses this for skipped
// units of work (missing party member, unknown role) that must not abort a
// round.
func Warn(msg string, fields Fields) {
	emit("warn", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	entry := make(Fields, len(fields)+1)
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	emit("error", msg, entry)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	entry := make(Fields, len(fields)+1)
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	emit("fatal", msg, entry)
	os.Exit(1)
}
