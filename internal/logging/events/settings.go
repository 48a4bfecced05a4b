package events

import "github.com/atomicstack/screen-generator/internal/logging"

type SettingsTracer struct{}

var Settings = SettingsTracer{}

func (SettingsTracer) Open(categories int, selected string) {
	logging.Trace("settings.open", map[string]interface{}{"categories": categories, "selected": selected})
}

func (SettingsTracer) Action(name string, payload interface{}) {
	logging.Trace("settings.action", map[string]interface{}{"action": name, "args": payload})
}

func (SettingsTracer) Reject(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("settings.reject", map[string]interface{}{"action": name, "error": err.Error()})
}

func (SettingsTracer) Project(categoryID, elementID, fileName string, modified bool) {
	logging.Trace("settings.project", map[string]interface{}{
		"category": categoryID,
		"element":  elementID,
		"fileName": fileName,
		"modified": modified,
	})
}

func (SettingsTracer) Apply(categories int) {
	logging.Trace("settings.apply", map[string]interface{}{"categories": categories})
}

func (SettingsTracer) Reset(categories int) {
	logging.Trace("settings.reset", map[string]interface{}{"categories": categories})
}

func (SettingsTracer) Effect(name string) {
	logging.Trace("settings.effect", map[string]interface{}{"effect": name})
}

func (SettingsTracer) EffectDropped(name string) {
	logging.Trace("settings.effect.dropped", map[string]interface{}{"effect": name})
}

func (SettingsTracer) Close(discarded int) {
	logging.Trace("settings.close", map[string]interface{}{"discarded": discarded})
}
