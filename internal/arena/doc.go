// Package arena owns node storage for an annotated suffix tree.
//
// Nodes are identified by stable, dense indices (NodeID) into a single
// growable slice. No node is ever moved or relocated once created, so a
// NodeID stays valid for the lifetime of the Arena — callers may cache it
// across construction, annotation propagation, and search without
// re-resolving pointers. Children of a node form a doubly linked sibling
// list in insertion order; there is no sorting, so character-keyed lookup
// over children is linear and left to the caller.
package arena
