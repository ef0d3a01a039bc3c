// Package rate implements the rate-shopping half of the engine: ingestion of
// raw carrier quotes, carrier grouping with deduplication, and deterministic
// best-rate selection.
//
// The pipeline is pure computation over small in-memory lists:
//
//	raw batch -> Normalize -> Grouping -> Select -> Selection
//
// Normalize drops malformed quotes silently (one bad quote from one source
// must never block valid quotes from another carrier), collapses duplicates
// of the same service offer, and preserves first-encounter ordering so that
// the whole pipeline is deterministic. Select ranks services within each
// carrier, guarantees the globally cheapest quote is represented, and marks
// the flags the carrier-choice UI renders. No map iteration order leaks into
// any output.
package rate
