package events

import "github.com/atomicstack/screen-generator/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(modified bool) {
	logging.Trace("app.stop", map[string]interface{}{"modified": modified})
}
