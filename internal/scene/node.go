// Package scene models the Sun-Earth-Moon system as a small transform
// hierarchy: orbit pivots, tilt groups, body nodes, lights and a
// camera. The orrery package computes pose angles; this package is the
// only place they are applied to transforms. Views read world-space
// positions from here and never mutate them.
package scene

import "github.com/litescript/ls-orrery/internal/geom"

// Node is a transform node. Pos is the translation relative to the
// parent; Rot is an Euler rotation in radians applied X, then Y, then
// Z before the translation.
type Node struct {
	Name string
	Pos  geom.Vec3
	Rot  geom.Vec3

	parent   *Node
	children []*Node
}

// NewNode creates a detached node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Add attaches child under n. A node has at most one parent; attaching
// an already-parented node moves it.
func (n *Node) Add(child *Node) *Node {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns the node's direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// toParent maps a point in n's local space into the parent's space.
func (n *Node) toParent(p geom.Vec3) geom.Vec3 {
	p = p.RotateX(n.Rot.X).RotateY(n.Rot.Y).RotateZ(n.Rot.Z)
	return p.Add(n.Pos)
}

// WorldPosition returns the node's origin in world space, composing
// every ancestor transform. It is recomputed on each call so callers
// always observe the current frame's pose, never a stale one.
func (n *Node) WorldPosition() geom.Vec3 {
	p := geom.Vec3{}
	for cur := n; cur != nil; cur = cur.parent {
		p = cur.toParent(p)
	}
	return p
}
