package events

import "github.com/atomicstack/screen-generator/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Load(kind, path string, categories int) {
	logging.Trace("store.load", map[string]interface{}{"kind": kind, "path": path, "categories": categories})
}

func (StoreTracer) LoadDefault(kind, path string) {
	logging.Trace("store.load.default", map[string]interface{}{"kind": kind, "path": path})
}

func (StoreTracer) SaveQueued(categories int, coalesced bool) {
	logging.Trace("store.save.queue", map[string]interface{}{"categories": categories, "coalesced": coalesced})
}

func (StoreTracer) Saved(kind string, categories int) {
	logging.Trace("store.save", map[string]interface{}{"kind": kind, "categories": categories})
}

func (StoreTracer) SaveError(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.save.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (StoreTracer) Migrate(version int) {
	logging.Trace("store.migrate", map[string]interface{}{"version": version})
}
