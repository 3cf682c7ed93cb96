package system

// DefaultHistorySize is the default number of data points retained per
// series (60 samples, one minute at a 1s refresh interval).
const DefaultHistorySize = 60

// ringBuffer is a fixed-size circular buffer for float64 values.
// Capacity is structural: push never grows the arena, it overwrites the
// oldest slot once full.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, evicting the oldest value when at capacity.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// last returns the most recently pushed value, or 0 when empty.
func (r *ringBuffer) last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := (r.head - 1 + r.size) % r.size
	return r.data[idx]
}

// values returns all stored values in chronological order (oldest first).
// The returned slice is a copy and safe to retain.
func (r *ringBuffer) values() []float64 {
	if r.count == 0 {
		return nil
	}

	result := make([]float64, r.count)

	// head points to the next write position, so the oldest value sits
	// count slots behind it.
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}
