package main

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

const sentryFlushTimeout = 5 * time.Second

// errorReporter forwards fatal errors to Sentry. The zero value, used when
// no DSN is configured, drops them.
type errorReporter struct {
	hub *sentry.Hub
}

func newErrorReporter(dsn string, log zerolog.Logger) errorReporter {
	if dsn == "" {
		return errorReporter{}
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		log.Warn().Err(err).Msg("sentry disabled")
		return errorReporter{}
	}
	return errorReporter{hub: sentry.CurrentHub().Clone()}
}

func (r errorReporter) report(err error, cfg Config) {
	if r.hub == nil || err == nil {
		return
	}
	r.hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("command", cfg.Command)
		scope.SetTag("source", cfg.Source)
	})
	r.hub.CaptureException(err)
	r.hub.Flush(sentryFlushTimeout)
}
