package events

import "github.com/atomicstack/screen-generator/internal/logging"

type UITracer struct{}

type FindTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Find    = FindTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(panel string) {
	logging.Trace("ui.focus", map[string]interface{}{"panel": panel})
}

func (UITracer) EditStart(field, initial string) {
	logging.Trace("ui.edit.start", map[string]interface{}{"field": field, "initial": initial})
}

func (UITracer) EditDone(field string, cancelled bool) {
	logging.Trace("ui.edit.done", map[string]interface{}{"field": field, "cancelled": cancelled})
}

func (UITracer) Help(shown bool) {
	logging.Trace("ui.help", map[string]interface{}{"shown": shown})
}

func (UITracer) QuitGuard(modified bool) {
	logging.Trace("ui.quit.guard", map[string]interface{}{"modified": modified})
}

func (FindTracer) Query(query string, matches int) {
	logging.Trace("find.query", map[string]interface{}{"query": query, "matches": matches})
}

func (FindTracer) Select(categoryID, elementID string) {
	logging.Trace("find.select", map[string]interface{}{"category": categoryID, "element": elementID})
}

func (CommandTracer) Queue(action string) {
	logging.Trace("command.queue", map[string]interface{}{"action": action})
}

func (CommandTracer) Closed(action string) {
	logging.Trace("command.closed", map[string]interface{}{"action": action})
}

func (CommandTracer) Error(action string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"action": action, "error": err.Error()})
}
