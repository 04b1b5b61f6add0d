package qtest

import (
	"bytes"
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/min1324/ringq/queue"
)

// randKeyword makes ih and it insert random strings.
const randKeyword = "RAND"

type command struct {
	fn      func(c *Console, args []string) error
	usage   string
	help    string
	mutates bool // verify and show the queue afterwards
}

func commands() map[string]command {
	return map[string]command{
		"new":     {fn: (*Console).doNew, help: "Create new queue", mutates: true},
		"free":    {fn: (*Console).doFree, help: "Delete queue", mutates: true},
		"ih":      {fn: (*Console).doInsertHead, usage: "str [n]", help: "Insert string str at head of queue n times. Generate random string(s) if str equals RAND", mutates: true},
		"it":      {fn: (*Console).doInsertTail, usage: "str [n]", help: "Insert string str at tail of queue n times. Generate random string(s) if str equals RAND", mutates: true},
		"rh":      {fn: (*Console).doRemoveHead, usage: "[str]", help: "Remove from head of queue. Optionally compare to expected value str", mutates: true},
		"rt":      {fn: (*Console).doRemoveTail, usage: "[str]", help: "Remove from tail of queue. Optionally compare to expected value str", mutates: true},
		"size":    {fn: (*Console).doSize, usage: "[n]", help: "Compute queue size n times"},
		"dm":      {fn: (*Console).doDeleteMid, help: "Delete middle node in queue", mutates: true},
		"dedup":   {fn: (*Console).doDeleteDup, help: "Delete all nodes that have duplicate string", mutates: true},
		"swap":    {fn: (*Console).doSwap, help: "Swap every two adjacent nodes in queue", mutates: true},
		"reverse": {fn: (*Console).doReverse, help: "Reverse queue", mutates: true},
		"sort":    {fn: (*Console).doSort, help: "Sort queue in ascending order", mutates: true},
		"show":    {fn: (*Console).doShow, help: "Show queue contents"},
		"option":  {fn: (*Console).doOption, usage: "[name val]", help: "Display or set options (verbose, length, json, seed)"},
		"help":    {fn: (*Console).doHelp, help: "Show documentation"},
		"quit":    {fn: (*Console).doQuit, help: "Exit program"},
	}
}

func wantArgs(args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return fmt.Errorf("%d arguments, want %d to %d: %w", len(args), lo, hi, ErrArgument)
	}
	return nil
}

// count parses an optional repeat count, default 1.
func count(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("count %q: %w", args[i], ErrArgument)
	}
	return n, nil
}

func (c *Console) doNew(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q != nil {
		c.warn("freeing old queue")
		c.q.Free()
	}
	c.q = queue.New()
	c.ref = model{}
	return nil
}

func (c *Console) doFree(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling free on null queue")
	}
	c.q.Free()
	c.q = nil
	c.ref = nil
	return nil
}

func (c *Console) doInsertHead(args []string) error { return c.insert(args, true) }
func (c *Console) doInsertTail(args []string) error { return c.insert(args, false) }

func (c *Console) insert(args []string, head bool) error {
	if err := wantArgs(args, 1, 2); err != nil {
		return err
	}
	n, err := count(args, 1)
	if err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling insert on null queue")
	}

	for i := 0; i < n; i++ {
		s := args[0]
		if s == randKeyword {
			s = c.randString()
		}
		var ok bool
		if head {
			ok = c.q.InsertHead(s)
			if ok {
				c.ref = c.ref.insertHead(s)
			}
		} else {
			ok = c.q.InsertTail(s)
			if ok {
				c.ref = c.ref.insertTail(s)
			}
		}
		if ok != (c.q != nil) {
			return fmt.Errorf("%w: insert returned %t", ErrMismatch, ok)
		}
		if !ok {
			break
		}
	}
	return nil
}

func (c *Console) doRemoveHead(args []string) error { return c.remove(args, true) }
func (c *Console) doRemoveTail(args []string) error { return c.remove(args, false) }

func (c *Console) remove(args []string, head bool) error {
	if err := wantArgs(args, 0, 1); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling remove on null queue")
	}

	sp := make([]byte, c.opts.Length)
	var (
		e    *queue.Element
		want string
		ok   bool
	)
	if head {
		e = c.q.RemoveHead(sp)
		c.ref, want, ok = c.ref.removeHead()
	} else {
		e = c.q.RemoveTail(sp)
		c.ref, want, ok = c.ref.removeTail()
	}
	if e == nil {
		if ok {
			return fmt.Errorf("%w: removed nothing, want %q", ErrMismatch, want)
		}
		if c.q != nil {
			c.warn("removing from empty queue")
		}
		return nil
	}
	defer e.Release()
	if !ok {
		return fmt.Errorf("%w: removed %q from empty queue", ErrMismatch, e.Value)
	}
	if e.Value != want {
		return fmt.Errorf("%w: removed %q, want %q", ErrMismatch, e.Value, want)
	}

	// the buffer holds at most Length-1 bytes and a terminator
	trunc := want
	if len(trunc) > len(sp)-1 {
		trunc = trunc[:len(sp)-1]
	}
	end := bytes.IndexByte(sp, 0)
	if end < 0 {
		return fmt.Errorf("%w: removed string not terminated", ErrMismatch)
	}
	if got := string(sp[:end]); got != trunc {
		return fmt.Errorf("%w: copied %q, want %q", ErrMismatch, got, trunc)
	}

	if len(args) == 1 && args[0] != e.Value {
		return fmt.Errorf("%w: removed %q, expected %q", ErrMismatch, e.Value, args[0])
	}
	if c.opts.Verbose >= 2 {
		c.log.Printf("removed %s from queue", e.Value)
	}
	return nil
}

func (c *Console) doSize(args []string) error {
	if err := wantArgs(args, 0, 1); err != nil {
		return err
	}
	n, err := count(args, 0)
	if err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling size on null queue")
	}
	want := len(c.ref)
	for i := 0; i < n; i++ {
		if got := c.q.Size(); got != want {
			return fmt.Errorf("%w: size %d, want %d", ErrMismatch, got, want)
		}
	}
	_, err = fmt.Fprintf(c.out, "Queue size = %d\n", want)
	return err
}

func (c *Console) doDeleteMid(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling delete middle node on null queue")
	}
	ok := c.q.DeleteMid()
	var want bool
	c.ref, want = c.ref.deleteMid()
	if ok != want {
		return fmt.Errorf("%w: delete middle returned %t", ErrMismatch, ok)
	}
	return nil
}

func (c *Console) doDeleteDup(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling delete duplicate on null queue")
		if c.q.DeleteDup() {
			return fmt.Errorf("%w: delete duplicate succeeded on null queue", ErrMismatch)
		}
		return nil
	}
	if !slices.IsSorted(c.ref) {
		c.warn("delete duplicate on unsorted queue")
	}
	if !c.q.DeleteDup() {
		return fmt.Errorf("%w: delete duplicate failed", ErrMismatch)
	}
	c.ref = c.ref.deleteDup()
	return nil
}

func (c *Console) doSwap(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling swap on null queue")
	}
	c.q.Swap()
	c.ref = c.ref.swap()
	return nil
}

func (c *Console) doReverse(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling reverse on null queue")
	}
	c.q.Reverse()
	c.ref = c.ref.reverse()
	return nil
}

func (c *Console) doSort(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	if c.q == nil {
		c.warn("calling sort on null queue")
	}
	c.q.Sort()
	c.ref = c.ref.sort()

	prev := ""
	for i, v := range c.q.Values() {
		if i > 0 && v < prev {
			return fmt.Errorf("%w: not sorted at %d", ErrMismatch, i)
		}
		prev = v
	}
	return nil
}

func (c *Console) doShow(args []string) error {
	if err := wantArgs(args, 0, 0); err != nil {
		return err
	}
	return c.show()
}

func (c *Console) doOption(args []string) error {
	switch len(args) {
	case 0:
		_, err := fmt.Fprintln(c.out, c.opts)
		return err
	case 2:
		if err := c.opts.set(args[0], args[1]); err != nil {
			return err
		}
		if args[0] == "seed" {
			c.rand.Seed(c.opts.Seed)
		}
		return nil
	}
	return fmt.Errorf("%d arguments, want 0 or 2: %w", len(args), ErrArgument)
}

func (c *Console) doHelp(args []string) error {
	names := make([]string, 0, len(c.cmds))
	for name := range c.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.cmds[name]
		fmt.Fprintf(c.out, "  %-8s%-12s| %s\n", name, cmd.usage, cmd.help)
	}
	return nil
}

func (c *Console) doQuit(args []string) error {
	c.quit = true
	return nil
}
