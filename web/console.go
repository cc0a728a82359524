//go:build js
// +build js

package web

import (
	"fmt"

	"github.com/go-logfmt/logfmt"
	"github.com/gopherjs/gopherjs/js"
)

// EnableDebug gates debug-level console output.
var EnableDebug = true

// ConsoleLogger writes logfmt lines to the browser console. It satisfies
// game.Logger.
type ConsoleLogger struct {
	Prefix string
}

// Debug logs to console.log if debug mode is enabled.
func (l ConsoleLogger) Debug(msg interface{}, keyvals ...interface{}) {
	if EnableDebug {
		l.write("log", "DEBU", msg, keyvals)
	}
}

// Info logs to console.info.
func (l ConsoleLogger) Info(msg interface{}, keyvals ...interface{}) {
	l.write("info", "INFO", msg, keyvals)
}

// Warn logs to console.warn.
func (l ConsoleLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.write("warn", "WARN", msg, keyvals)
}

// Error logs to console.error.
func (l ConsoleLogger) Error(msg interface{}, keyvals ...interface{}) {
	l.write("error", "ERRO", msg, keyvals)
}

func (l ConsoleLogger) write(method, level string, msg interface{}, keyvals []interface{}) {
	js.Global.Get("console").Call(method, l.line(level, msg, keyvals))
}

func (l ConsoleLogger) line(level string, msg interface{}, keyvals []interface{}) string {
	line := level + " "
	if l.Prefix != "" {
		line += l.Prefix + ": "
	}
	line += fmt.Sprint(msg)
	if len(keyvals) > 0 {
		kv, err := logfmt.MarshalKeyvals(keyvals...)
		if err != nil {
			kv = []byte(fmt.Sprint(keyvals...))
		}
		line += " " + string(kv)
	}
	return line
}
