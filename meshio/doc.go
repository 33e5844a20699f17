// Package meshio saves decomposed maps as JSON documents and loads them
// back, and publishes a JSON Schema for the document format so map files
// can be validated by editors and other tools.
//
// A document stores the grid size, every room area and every connection
// once. Loading re-derives the connections from the areas and rejects a
// document whose stored connections disagree, so a loaded map satisfies the
// same invariants as a freshly decomposed one.
package meshio
