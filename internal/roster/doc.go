// Package roster imports the external roster description and re-keys it by
// creature identifier.
//
// The upstream document is an arbitrary nested structure keyed by an
// internal roster identifier; each entry carries the creature id it belongs
// to. Entries are decoded in document order so that the display-order sort
// can break ties by encounter order, which downstream code relies on when it
// picks "the" canonical name for a creature.
package roster
