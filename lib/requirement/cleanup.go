package requirement

// RemoveEmpty splices every placeholder out of the tree. A placeholder's
// children move up onto its parent, keeping their order, and the
// placeholder itself is detached. Nested placeholders collapse all the
// way: each one is visited after it has already been re-parented, so its
// children land on the nearest surviving ancestor. The root stays even
// when it is a placeholder.
func RemoveEmpty(t *Tree) {
	queue := append([]NodeID{}, t.Children(t.Root())...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		queue = append(queue, t.Children(id)...)

		if t.Node(id).Kind != KindEmpty {
			continue
		}
		parent := t.Parent(id)
		for _, child := range append([]NodeID{}, t.Children(id)...) {
			t.reparent(child, parent)
		}
		t.detach(id)
	}
}
