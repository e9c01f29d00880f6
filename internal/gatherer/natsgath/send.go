package natsgath

import (
	"encoding/json"
)

// send publishes one event. Publish faults are logged and swallowed:
// a broken result stream must never interrupt the evaluation itself.
func (s *natsGatherer) send(msg interface{}) {
	b, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("failed to marshal stream message", "error", err)
		return
	}

	if err := s.nc.Publish(s.subject, b); err != nil {
		s.log.Error("failed to publish stream message", "subject", s.subject, "error", err)
	}
}
