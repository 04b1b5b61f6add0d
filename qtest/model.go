package qtest

import (
	"slices"
)

// model is the reference the queue is checked against.
// A nil model stands for an absent queue.
type model []string

func (m model) insertHead(v string) model { return slices.Insert(m, 0, v) }
func (m model) insertTail(v string) model { return append(m, v) }

func (m model) removeHead() (model, string, bool) {
	if len(m) == 0 {
		return m, "", false
	}
	return m[1:], m[0], true
}

func (m model) removeTail() (model, string, bool) {
	if len(m) == 0 {
		return m, "", false
	}
	return m[:len(m)-1], m[len(m)-1], true
}

func (m model) deleteMid() (model, bool) {
	if len(m) == 0 {
		return m, false
	}
	mid := len(m) / 2
	return slices.Delete(m, mid, mid+1), true
}

// deleteDup drops every value that sits in a run of two or more equal ones.
func (m model) deleteDup() model {
	out := make(model, 0, len(m))
	for i := 0; i < len(m); {
		j := i + 1
		for j < len(m) && m[j] == m[i] {
			j++
		}
		if j-i == 1 {
			out = append(out, m[i])
		}
		i = j
	}
	return out
}

func (m model) swap() model {
	for i := 0; i+1 < len(m); i += 2 {
		m[i], m[i+1] = m[i+1], m[i]
	}
	return m
}

func (m model) reverse() model {
	slices.Reverse(m)
	return m
}

func (m model) sort() model {
	slices.Sort(m)
	return m
}
