package draftsmith

// WalkNotesTree visits every node of roots depth-first, pre-order. The parent
// argument is nil for root nodes.
func WalkNotesTree(roots []TreeNote, fn func(parent, node *TreeNote)) {
	walkNotes(nil, roots, fn)
}

func walkNotes(parent *TreeNote, nodes []TreeNote, fn func(parent, node *TreeNote)) {
	for i := range nodes {
		node := &nodes[i]
		fn(parent, node)
		walkNotes(node, node.Children, fn)
	}
}

// FlattenNotesTree returns every note of the tree in depth-first pre-order,
// with the nested children left in place.
func FlattenNotesTree(roots []TreeNote) []TreeNote {
	var flat []TreeNote
	WalkNotesTree(roots, func(_, node *TreeNote) {
		flat = append(flat, *node)
	})
	return flat
}

// WalkTasksTree visits every node of roots depth-first, pre-order. The parent
// argument is nil for root nodes.
func WalkTasksTree(roots []TreeTask, fn func(parent, node *TreeTask)) {
	walkTasks(nil, roots, fn)
}

func walkTasks(parent *TreeTask, nodes []TreeTask, fn func(parent, node *TreeTask)) {
	for i := range nodes {
		node := &nodes[i]
		fn(parent, node)
		walkTasks(node, node.Children, fn)
	}
}

// WalkTagsTree visits every tag of roots depth-first, pre-order. The parent
// argument is nil for root tags. Notes attached to tags are not visited.
func WalkTagsTree(roots []TreeTagWithNotes, fn func(parent, node *TreeTagWithNotes)) {
	walkTags(nil, roots, fn)
}

func walkTags(parent *TreeTagWithNotes, nodes []TreeTagWithNotes, fn func(parent, node *TreeTagWithNotes)) {
	for i := range nodes {
		node := &nodes[i]
		fn(parent, node)
		walkTags(node, node.Children, fn)
	}
}
