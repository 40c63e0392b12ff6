package macro

// priorityQueue is a max-heap over node.qub, following lvlath/dijkstra's
// container/heap-based priority queue pattern (lazy decrease-key: a node
// made stale by a better visited-map entry is simply never popped into an
// expansion, not removed from the heap).
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].qub > pq[j].qub // max-heap: highest bound first
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]
	return n
}
