package event

// Queue is an unbounded FIFO of events
// Not safe for concurrent use: backends reading on a goroutine hand events
// over to the loop goroutine before calling Add
// Growth is unbounded, producers must not outpace the draining loop
type Queue struct {
	events []Event
	head   int
}

// NewQueue returns an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends e at the tail
func (q *Queue) Add(e Event) {
	q.events = append(q.events, e)
}

// Next pops the oldest event
func (q *Queue) Next() (Event, bool) {
	if q.head >= len(q.events) {
		return Event{}, false
	}
	e := q.events[q.head]
	q.events[q.head] = Event{}
	q.head++

	// Reclaim the backing array once drained
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return e, true
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events) - q.head
}

// Drain pops every pending event in order, including any fn adds while draining
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for {
		e, ok := q.Next()
		if !ok {
			return n
		}
		fn(e)
		n++
	}
}
