// Package graph holds the fragment data model: global vertex ids, the
// dense vertex-set bitmap, the fragment itself, its builders, and the
// generic kernel contract a traversal algorithm must satisfy.
package graph

// Gid is a global vertex id, stable across fragment rebuilds.
type Gid uint32

// Within returns the ownership index of g under a modulo partition of n workers.
func (g Gid) Within(n int) int {
	return int(uint32(g) % uint32(n))
}
