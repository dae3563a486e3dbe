package astar

// Node is the search-time record for one cell.
type Node struct {
	Pos    Cell
	Parent Cell
	G      int
	H      int

	sequence     uint64
	IndexInQueue int
}

// Score is G + H.
func (node *Node) Score() int { return node.G + node.H }

// PriorityQueue orders open nodes by score; equal scores keep insertion order.
type PriorityQueue []*Node

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	left, right := queue[i].Score(), queue[j].Score()
	if left != right {
		return left < right
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	node := x.(*Node)
	node.IndexInQueue = len(*queue)
	*queue = append(*queue, node)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	node := oldQueue[n-1]
	oldQueue[n-1] = nil
	node.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return node
}
