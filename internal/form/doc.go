// Package form holds the name form's state, its transition functions, and
// the store that publishes snapshots to render layers.
//
// Allowed here:
// - the State value and the Field selector
// - pure transitions (OnFieldChange, OnSubmit, Apply)
// - the Store and Session that own the single current State
//
// Not allowed here:
// - terminal rendering, prompts, or key handling
// - file or network I/O
package form
