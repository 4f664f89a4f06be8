// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LogFormatter adapts LoggerInterface to chi's request logging middleware.
type LogFormatter struct {
	logger LoggerInterface
}

type logEntry struct {
	logger  LoggerInterface
	request *http.Request
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logEntry{logger: f.logger, request: r}
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.logger.Debugf(
		"%s %s://%s%s - %d %dB in %s",
		e.request.Method,
		scheme(e.request),
		e.request.Host,
		e.request.RequestURI,
		status,
		bytes,
		elapsed,
	)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Errorf("panic serving %s %s: %v\n%s", e.request.Method, e.request.RequestURI, v, stack)
}

func scheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func NewLogFormatter(logger LoggerInterface) *LogFormatter {
	return &LogFormatter{logger: logger}
}
