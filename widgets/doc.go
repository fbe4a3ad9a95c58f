// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (card faces, canvas painting, row/column arrangement, hit rects)
//
// Not allowed here:
// - key handling, deck state transitions, viewport classification
package widgets
