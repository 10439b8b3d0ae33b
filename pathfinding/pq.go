package pathfinding

import (
	"container/heap"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/zyedidia/generic/mapset"
)

// priorityQueue is a min-heap of node handles ordered by the search Ordering.
type priorityQueue struct {
	arena    *arena
	ordering Ordering
	items    []handle
}

func (queue priorityQueue) Len() int { return len(queue.items) }

func (queue priorityQueue) Less(i, j int) bool {
	a, b := queue.arena.get(queue.items[i]), queue.arena.get(queue.items[j])
	ka, kb := queue.ordering.key(a), queue.ordering.key(b)
	if ka != kb {
		return ka < kb
	}
	return a.seq < b.seq
}

func (queue priorityQueue) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
}

func (queue *priorityQueue) Push(x any) {
	queue.items = append(queue.items, x.(handle))
}

func (queue *priorityQueue) Pop() any {
	old := queue.items
	n := len(old)
	item := old[n-1]
	queue.items = old[:n-1]
	return item
}

// openList is the search frontier: a heap for ordering and a position index for membership.
type openList struct {
	queue priorityQueue
	index mapset.Set[maze.Position]
}

func newOpenList(a *arena, ordering Ordering) *openList {
	return &openList{
		queue: priorityQueue{arena: a, ordering: ordering},
		index: mapset.New[maze.Position](),
	}
}

func (o *openList) Len() int { return o.queue.Len() }

func (o *openList) contains(p maze.Position) bool { return o.index.Has(p) }

func (o *openList) push(h handle) {
	heap.Push(&o.queue, h)
	o.index.Put(o.queue.arena.get(h).pos)
}

func (o *openList) pop() handle {
	h := heap.Pop(&o.queue).(handle)
	o.index.Remove(o.queue.arena.get(h).pos)
	return h
}
