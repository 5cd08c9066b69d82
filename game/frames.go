package game

// FrameQueue is a Scheduler driven by the host: the host calls Fire once per
// display frame. Callbacks requested while a frame is firing run on the next
// one.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func(float64)
	order   []FrameID
	firing  map[FrameID]func(float64)
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func(float64))}
}

func (q *FrameQueue) RequestFrame(cb func(ts float64)) FrameID {
	q.next++
	q.pending[q.next] = cb
	q.order = append(q.order, q.next)
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
	if q.firing != nil {
		delete(q.firing, id)
	}
}

// Pending is the number of callbacks waiting for the next frame
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Fire runs the callbacks requested before this call and returns how many ran
func (q *FrameQueue) Fire(ts float64) int {
	batch, order := q.pending, q.order
	q.pending = make(map[FrameID]func(float64))
	q.order = nil
	q.firing = batch

	ran := 0
	for _, id := range order {
		cb, ok := batch[id]
		if !ok {
			continue
		}
		delete(batch, id)
		cb(ts)
		ran++
	}
	q.firing = nil
	return ran
}
