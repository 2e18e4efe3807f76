package scheduler

import (
	"container/heap"
	"sort"
)

// fifoQueue is a first-in, first-out ready queue.
type fifoQueue struct {
	items []*ProcessControlBlock
}

func (q *fifoQueue) Len() int { return len(q.items) }

func (q *fifoQueue) push(pcb *ProcessControlBlock) {
	q.items = append(q.items, pcb)
}

func (q *fifoQueue) pop() *ProcessControlBlock {
	pcb := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return pcb
}

func (q *fifoQueue) snapshot() []*ProcessControlBlock {
	return append([]*ProcessControlBlock(nil), q.items...)
}

type queuedPCB struct {
	pcb *ProcessControlBlock
	key int64
}

// keyedQueue is a min-heap of PCBs ordered by key. Equal keys go to the
// earlier arrival, then to the earlier admission.
type keyedQueue []queuedPCB

func (pq keyedQueue) Len() int { return len(pq) }

func (pq keyedQueue) Less(i, j int) bool {
	return pq[i].before(pq[j])
}

func (pq keyedQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *keyedQueue) Push(x any) {
	*pq = append(*pq, x.(queuedPCB))
}

func (pq *keyedQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedPCB{} // avoid memory leak
	*pq = old[:n-1]
	return item
}

func (pq *keyedQueue) push(pcb *ProcessControlBlock, key int64) {
	heap.Push(pq, queuedPCB{pcb: pcb, key: key})
}

func (pq *keyedQueue) pop() *ProcessControlBlock {
	return heap.Pop(pq).(queuedPCB).pcb
}

// snapshot returns the queued PCBs in the order they would be dispatched.
func (pq keyedQueue) snapshot() []*ProcessControlBlock {
	items := append(keyedQueue(nil), pq...)
	sort.Slice(items, items.Less)

	pcbs := make([]*ProcessControlBlock, len(items))
	for i := range items {
		pcbs[i] = items[i].pcb
	}
	return pcbs
}

func (a queuedPCB) before(b queuedPCB) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	if a.pcb.arrivalTime != b.pcb.arrivalTime {
		return a.pcb.arrivalTime < b.pcb.arrivalTime
	}
	return a.pcb.seq < b.pcb.seq
}
