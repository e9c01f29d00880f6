// Package natsgath streams evaluation events to a NATS subject, one
// JSON message per event.
package natsgath

import (
	"log/slog"

	"github.com/nats-io/nats.go"
)

// New creates a NATS gatherer that publishes responses to the given
// reply subject.
func New(nc *nats.Conn, evalUuid string, subject string, log *slog.Logger) *natsGatherer {
	if log == nil {
		log = slog.Default()
	}
	return &natsGatherer{
		nc:       nc,
		subject:  subject,
		evalUuid: evalUuid,
		log:      log,
	}
}
