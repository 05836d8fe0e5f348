/*
Package seq provides a balanced, order-maintaining sequence of occurrences,
the substrate underneath the Euler-tour forest.

The package is intentionally not a generic map/set container. It is
specialized for positional sequence surgery: a sequence can be split at any
occurrence and two sequences can be concatenated, both in O(log n), and the
occurrence handles themselves survive every such operation — only their
owning sequence changes. The forest package relies on exactly this handle
stability to keep per-vertex bookkeeping valid across link/cut edits.

Occurrences double as the nodes of a height-balanced binary tree carrying
parent pointers. Parent pointers are what make the owner-identity query
possible: from any occurrence, walking up to the structural root and then
down to the leftmost node yields the canonical minimum occurrence of the
owning sequence in O(log n), without a per-occurrence back-pointer that
every merge and split would have to repair.

Sequences are mutable and single-threaded; concurrent access is the
caller's problem.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package seq

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
