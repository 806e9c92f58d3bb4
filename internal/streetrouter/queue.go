package streetrouter

import (
	"container/heap"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// priorityQueue orders states by routing variable plus heuristic, the A*
// frontier. The ordering key is State.PriorityKey evaluated under the
// router's configured dominance variable, rather than a single fixed cost
// field, so the same queue type serves duration-, weight-, and
// distance-ordered searches.
type priorityQueue struct {
	states   []*searchstate.State
	variable geo.Variable
}

func (pq *priorityQueue) Len() int { return len(pq.states) }

func (pq *priorityQueue) Less(i, j int) bool {
	return pq.states[i].PriorityKey(pq.variable) < pq.states[j].PriorityKey(pq.variable)
}

func (pq *priorityQueue) Swap(i, j int) {
	pq.states[i], pq.states[j] = pq.states[j], pq.states[i]
}

func (pq *priorityQueue) Push(x interface{}) {
	pq.states = append(pq.states, x.(*searchstate.State))
}

func (pq *priorityQueue) Pop() interface{} {
	old := pq.states
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	pq.states = old[:n-1]
	return s
}

func newPriorityQueue(variable geo.Variable) *priorityQueue {
	pq := &priorityQueue{variable: variable}
	heap.Init(pq)
	return pq
}

func (pq *priorityQueue) push(s *searchstate.State) { heap.Push(pq, s) }

func (pq *priorityQueue) pop() *searchstate.State { return heap.Pop(pq).(*searchstate.State) }
