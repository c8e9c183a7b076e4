// Package resolver assigns a display name to every sprite form of a
// creature and marks exactly one form per group canonical.
//
// Resolution is a pure function of its inputs. A general rule chain (gendered
// over base-labeled over plain) picks the group canonical, a per-creature
// override table short-circuits the chain for rosters members whose in-game
// default form breaks the general rule, mega buckets elect their own
// sub-canonicals, and a nine-branch suffix chain names everything else. The
// volatile domain knowledge lives in static tables in tables.go; the
// algorithm in resolve.go never changes when a new special case is learned.
package resolver
