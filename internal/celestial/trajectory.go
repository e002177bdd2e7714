package celestial

// Trajectory is a bounded ring buffer of past position samples. When full,
// pushing evicts the oldest sample. Capacity is fixed at construction.
type Trajectory struct {
	buf   []Vec3
	head  int // index of the oldest sample
	count int
}

func NewTrajectory(capacity int) *Trajectory {
	if capacity < 1 {
		capacity = 1
	}
	return &Trajectory{buf: make([]Vec3, capacity)}
}

func (t *Trajectory) Cap() int { return len(t.buf) }
func (t *Trajectory) Len() int { return t.count }

func (t *Trajectory) Push(p Vec3) {
	if t.count < len(t.buf) {
		t.buf[(t.head+t.count)%len(t.buf)] = p
		t.count++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

// Samples returns the buffered positions oldest first. The returned slice
// is a copy; reading never mutates the buffer.
func (t *Trajectory) Samples() []Vec3 {
	out := make([]Vec3, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}
