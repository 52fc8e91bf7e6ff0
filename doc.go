// Package backdrop implements the background composition engine of a
// cover-image editor: a unified data model for solid, gradient, pattern and
// uploaded-image fills, migration to and from an older per-layer schema,
// procedural rendering to CSS strings and raster surfaces, and a
// history-aware state store with throttled undo snapshots and key-value
// persistence.
//
// The package is single-owner by design: all mutation goes through a *Store,
// rendering functions only ever read a configuration, and every store action
// runs to completion synchronously.
package backdrop
