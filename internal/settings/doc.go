// Package settings implements the edit model behind the screen generator
// settings editor.
//
// A Session holds two copies of model.Settings: Committed, the value the host
// last accepted, and Working, the value being edited, plus the selected
// category and element ids.
//
// Flow:
//   - UI controls call ViewModel.Submit with an Action. Submit is safe from any
//     goroutine; actions land on one buffered channel.
//   - A single goroutine owned by the ViewModel receives actions in order and
//     hands each to Reducer.Reduce, which mutates the session in place or
//     rejects the action before touching it (out-of-range enum indexes).
//   - After every accepted action Project derives a State snapshot (selection,
//     rendered file name, dirty flag) that is published on States() and
//     returned by State().
//   - Effects such as ShowHelp travel on Effects(), separately from State, so
//     re-rendering a snapshot never replays them.
//
// ApplySettings promotes Working into Committed and hands a copy to the
// Persister, which must not block. ResetSettings copies Committed back over
// Working. Close cancels the goroutine and drops whatever is still queued.
package settings
