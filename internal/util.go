package internal

// ReconstructPath follows parent links back from current until it reaches start.
// The path runs current-first and excludes start. ok is false when the chain
// breaks before reaching start.
func ReconstructPath[NodeType comparable](
	parentOf func(NodeType) (NodeType, bool),
	current NodeType,
	start NodeType,
) (path []NodeType, ok bool) {
	path = make([]NodeType, 0)
	for current != start {
		path = append(path, current)
		previousNode, exists := parentOf(current)
		if !exists {
			return nil, false
		}
		current = previousNode
	}
	return path, true
}

// Reversed returns a reversed copy of items.
func Reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
