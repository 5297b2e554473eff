// Package requirement models quest prerequisite trees: parsing them out
// of wiki markup, cleaning placeholder entries away and rendering the
// result as a Graphviz document.
package requirement

import "fmt"

// Kind discriminates what a requirement node actually demands.
type Kind int

const (
	// KindEmpty marks a structural placeholder, a list line that
	// carried no recognizable requirement but still has children
	// nested under it.
	KindEmpty Kind = iota
	// KindUnknown carries free text that couldn't be classified.
	KindUnknown
	// KindQuest requires completing another quest.
	KindQuest
	// KindSkill requires a minimum level in a skill.
	KindSkill
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindUnknown:
		return "unknown"
	case KindQuest:
		return "quest"
	case KindSkill:
		return "skill"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is the payload of a single requirement. Which fields mean
// anything depends on Kind, so build them through the constructors.
type Node struct {
	Kind  Kind
	Text  string
	Name  string
	Level int
}

func Empty() Node {
	return Node{Kind: KindEmpty}
}

func Unknown(text string) Node {
	return Node{Kind: KindUnknown, Text: text}
}

func Quest(name string) Node {
	return Node{Kind: KindQuest, Name: name}
}

func Skill(name string, level int) Node {
	return Node{Kind: KindSkill, Name: name, Level: level}
}

// Label renders the node the way it should read in a graph.
func (n Node) Label() string {
	switch n.Kind {
	case KindUnknown:
		return n.Text
	case KindQuest:
		return n.Name
	case KindSkill:
		return fmt.Sprintf("%d %s", n.Level, n.Name)
	}
	return ""
}

// NodeID is a handle into a Tree. Handles stay valid for the life of
// the tree, even for nodes cleanup has detached.
type NodeID int

// NoNode is the null handle: the parent of the root, a failed lookup.
const NoNode NodeID = -1

type node struct {
	payload  Node
	parent   NodeID
	children []NodeID
}

// Tree is an arena of requirement nodes. The zero value is not usable,
// construct with NewTree.
type Tree struct {
	nodes []node
}

// NewTree returns a tree holding only its root.
func NewTree(root Node) *Tree {
	return &Tree{nodes: []node{{payload: root, parent: NoNode}}}
}

// Root returns the handle of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns how many nodes the tree has ever held, detached ones
// included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the payload behind a handle.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id].payload
}

// Parent returns the parent handle, or NoNode for the root and for
// detached nodes.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children returns a node's children in attachment order. The slice is
// owned by the tree, callers must not mutate it.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// Attach adds payload as the last child of parent and returns its
// handle.
func (t *Tree) Attach(parent NodeID, payload Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{payload: payload, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// FindQuest returns the first quest node with the given name in
// breadth-first order, or NoNode. The root is never considered a match:
// when a quest's own node is looked up while its tree is being built,
// the root is the quest being asked about, not a prerequisite of it.
func (t *Tree) FindQuest(name string) NodeID {
	queue := make([]NodeID, 0, len(t.nodes))
	queue = append(queue, t.Children(t.Root())...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		payload := t.Node(id)
		if payload.Kind == KindQuest && payload.Name == name {
			return id
		}
		queue = append(queue, t.Children(id)...)
	}
	return NoNode
}

// reparent moves id under parent, appended after parent's existing
// children.
func (t *Tree) reparent(id, parent NodeID) {
	t.removeChild(t.nodes[id].parent, id)
	t.nodes[id].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, id)
}

// detach unlinks id from its parent. The node stays in the arena but is
// no longer reachable from the root.
func (t *Tree) detach(id NodeID) {
	t.removeChild(t.nodes[id].parent, id)
	t.nodes[id].parent = NoNode
}

func (t *Tree) removeChild(parent, id NodeID) {
	if parent == NoNode {
		return
	}
	children := t.nodes[parent].children
	for i, child := range children {
		if child == id {
			t.nodes[parent].children = append(children[:i], children[i+1:]...)
			return
		}
	}
}
