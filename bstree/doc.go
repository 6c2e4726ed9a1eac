// Package bstree provides a small ordered set backed by an unbalanced binary
// search tree.
//
// Every Tree owns its nodes outright. Structural edits go through explicit
// ownership transfer:
//
//   - Disassemble empties a tree and hands back its root value and both
//     subtrees as independent owned trees.
//   - Assemble consumes a value and two trees (leaving them empty) and
//     returns a new tree rooted at that value.
//
// Remove is built on that pair, so no node is ever reachable from two trees.
//
// The zero Tree is an empty, ready-to-use set. A Tree is not safe for
// concurrent mutation.
//
// Complexity: Insert, Has, Remove are O(h) where h is the tree height
// (O(n) worst case for sorted input, which is fine for the handful of stops a
// cart carries). Len and InOrder are O(n).
package bstree
