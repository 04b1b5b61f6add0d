package queue_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/min1324/ringq/queue"
)

// sliceQueue is the reference model: a plain slice, head at index 0.
type sliceQueue struct {
	data []string
}

func (s *sliceQueue) insertHead(v string) { s.data = slices.Insert(s.data, 0, v) }
func (s *sliceQueue) insertTail(v string) { s.data = append(s.data, v) }

func (s *sliceQueue) removeHead() (string, bool) {
	if len(s.data) == 0 {
		return "", false
	}
	v := s.data[0]
	s.data = s.data[1:]
	return v, true
}

func (s *sliceQueue) removeTail() (string, bool) {
	if len(s.data) == 0 {
		return "", false
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, true
}

func (s *sliceQueue) deleteMid() bool {
	if len(s.data) == 0 {
		return false
	}
	s.data = slices.Delete(s.data, len(s.data)/2, len(s.data)/2+1)
	return true
}

// deleteDup drops every run of equal adjacent values.
func (s *sliceQueue) deleteDup() {
	out := s.data[:0:0]
	for i := 0; i < len(s.data); {
		j := i + 1
		for j < len(s.data) && s.data[j] == s.data[i] {
			j++
		}
		if j-i == 1 {
			out = append(out, s.data[i])
		}
		i = j
	}
	s.data = out
}

func (s *sliceQueue) swap() {
	for i := 0; i+1 < len(s.data); i += 2 {
		s.data[i], s.data[i+1] = s.data[i+1], s.data[i]
	}
}

func (s *sliceQueue) reverse() { slices.Reverse(s.data) }
func (s *sliceQueue) sort() { slices.Sort(s.data) }

type refOp struct {
	name string
	do   func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue)
}

var refOps = [...]refOp{
	{"ih", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		v := randString(r)
		q.InsertHead(v)
		m.insertHead(v)
	}},
	{"it", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		v := randString(r)
		q.InsertTail(v)
		m.insertTail(v)
	}},
	{"rh", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		e := q.RemoveHead(nil)
		v, ok := m.removeHead()
		matchRemoved(t, e, v, ok)
	}},
	{"rt", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		e := q.RemoveTail(nil)
		v, ok := m.removeTail()
		matchRemoved(t, e, v, ok)
	}},
	{"dm", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		if q.DeleteMid() != m.deleteMid() {
			t.Fatalf("DeleteMid result differs")
		}
	}},
	{"dedup", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		// only defined on sorted input
		q.Sort()
		m.sort()
		q.DeleteDup()
		m.deleteDup()
	}},
	{"swap", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		q.Swap()
		m.swap()
	}},
	{"reverse", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		q.Reverse()
		m.reverse()
	}},
	{"sort", func(t *testing.T, r *rand.Rand, q *queue.Queue, m *sliceQueue) {
		q.Sort()
		m.sort()
	}},
}

// small alphabet so that sort and dedup see plenty of equal values
func randString(r *rand.Rand) string {
	b := make([]byte, 1+r.Intn(3))
	for i := range b {
		b[i] = byte('a' + r.Intn(3))
	}
	return string(b)
}

func matchRemoved(t *testing.T, e *queue.Element, v string, ok bool) {
	t.Helper()
	if (e != nil) != ok {
		t.Fatalf("remove want ok:%v, real:%v", ok, e != nil)
	}
	if e != nil {
		if e.Value != v {
			t.Fatalf("remove want:%q, real:%q", v, e.Value)
		}
		e.Release()
	}
}

func TestReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	q := queue.New()
	defer q.Free()
	var m sliceQueue

	n := 5000
	for i := 0; i < n; i++ {
		// bias towards inserts so the queue grows
		op := refOps[r.Intn(len(refOps))]
		if r.Intn(3) == 0 {
			op = refOps[r.Intn(2)]
		}
		op.do(t, r, q, &m)

		if err := q.Check(); err != nil {
			t.Fatalf("step %d %s: %v", i, op.name, err)
		}
		if got := q.Values(); !slices.Equal(got, m.data) {
			t.Fatalf("step %d %s: want:%q, real:%q", i, op.name, m.data, got)
		}
		if q.Size() != len(m.data) {
			t.Fatalf("step %d %s: size want:%d, real:%d", i, op.name, len(m.data), q.Size())
		}
	}
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		q := queue.New()
		n := r.Intn(300)
		for i := 0; i < n; i++ {
			q.InsertTail(randString(r))
		}
		q.Sort()
		vals := q.Values()
		if !slices.IsSorted(vals) {
			t.Fatalf("round %d: not sorted: %q", round, vals)
		}

		q.Reverse()
		rev := q.Values()
		for i := 1; i < len(rev); i++ {
			if rev[i-1] < rev[i] {
				t.Fatalf("round %d: not non-increasing at %d", round, i)
			}
		}
		q.Free()
	}
}
