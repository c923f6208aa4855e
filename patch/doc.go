// SPDX-License-Identifier: MIT

// Package patch is the in-memory host adapter the generator builds into.
//
// A Patch owns a table of modules (kind, label, controller values, mapping,
// placement) and a core.Graph of directed connections between them. Module
// kinds come from a fixed catalog; each kind declares a BehaviorSet (audio in
// and out, note in and out, control out) and an ordered list of controllers
// whose ValueType is a bounded range, a boolean or an enumeration.
//
// Two modules exist before generation starts: the Output sink (OutputID) and
// the note input (NoteInID). They are not counted by ModuleCount.
//
// Inspection helpers report feedback loops (dfs), a feed-forward order (dfs)
// and hop depths from the note input (bfs).
package patch
