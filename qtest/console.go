// Package qtest drives a queue.Queue from a line-oriented command script and
// checks every step against an independent slice-backed reference.
//
// A script is one command per line, for example:
//
//	new
//	it dolphin 3
//	ih RAND 10
//	sort
//	dedup
//	rh
//	show
//	free
//
// Blank lines and lines starting with '#' are skipped. See help for the
// full command list.
package qtest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"slices"
	"strings"

	"github.com/min1324/ringq/queue"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgument       = errors.New("bad argument")
	ErrMismatch       = errors.New("queue differs from reference")
	ErrFailed         = errors.New("qtest: commands failed")
)

// Console runs commands against one queue at a time.
// It is not safe for concurrent use.
type Console struct {
	opts Options
	out  io.Writer
	log  *log.Logger
	rand *rand.Rand

	q   *queue.Queue // nil when no queue exists
	ref model

	cmds   map[string]command
	ran    int
	failed int
	quit   bool
}

// NewConsole returns a console writing command output to out and
// diagnostics to logw.
func NewConsole(out, logw io.Writer, opts Options) *Console {
	opts = opts.withDefaults()
	c := &Console{
		opts: opts,
		out:  out,
		log:  log.New(logw, "qtest: ", 0),
		rand: rand.New(rand.NewSource(opts.Seed)),
	}
	c.cmds = commands()
	return c
}

// Run executes every command read from r. A failing command is logged and
// counted, and the run goes on. Run stops at end of input or at quit, frees
// the queue, and returns an error wrapping ErrFailed if any command failed.
func (c *Console) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; !c.quit && sc.Scan(); line++ {
		if err := c.Exec(sc.Text()); err != nil {
			c.log.Printf("line %d: %v", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("qtest: read script: %w", err)
	}

	// free before the summary so teardown itself is checked
	if c.q != nil {
		c.q.Free()
		c.q = nil
		c.ref = nil
	}
	if err := c.summary(); err != nil {
		return err
	}
	if c.failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFailed, c.failed, c.ran)
	}
	return nil
}

// Exec executes one command line.
func (c *Console) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args := strings.Fields(line)
	name := args[0]
	c.ran++

	cmd, ok := c.cmds[name]
	if !ok {
		c.failed++
		return fmt.Errorf("%s: %w", name, ErrUnknownCommand)
	}
	if c.opts.Verbose >= 2 {
		c.log.Printf("cmd> %s", line)
	}
	if err := cmd.fn(c, args[1:]); err != nil {
		c.failed++
		return fmt.Errorf("%s: %w", name, err)
	}
	if cmd.mutates {
		if err := c.verify(); err != nil {
			c.failed++
			return fmt.Errorf("%s: %w", name, err)
		}
		if c.opts.Verbose >= 1 {
			return c.show()
		}
	}
	return nil
}

// Errors returns how many commands have failed so far.
func (c *Console) Errors() int {
	return c.failed
}

// Values returns the current queue contents, nil if there is no queue.
func (c *Console) Values() []string {
	return c.q.Values()
}

// verify checks the ring links, then the contents against the reference.
func (c *Console) verify() error {
	if c.q == nil {
		return nil
	}
	if err := c.q.Check(); err != nil {
		return fmt.Errorf("corrupted ring: %w", err)
	}
	if got := c.q.Values(); !slices.Equal(got, []string(c.ref)) {
		return fmt.Errorf("%w: want %q, got %q", ErrMismatch, []string(c.ref), got)
	}
	if n := c.q.Size(); n != len(c.ref) {
		return fmt.Errorf("%w: size want %d, got %d", ErrMismatch, len(c.ref), n)
	}
	return nil
}

func (c *Console) warn(format string, args ...any) {
	if c.opts.Verbose >= 1 {
		c.log.Printf("warning: "+format, args...)
	}
}

func (c *Console) show() error {
	if c.opts.JSON {
		return c.printJSON(c.snapshot())
	}
	if c.q == nil {
		_, err := fmt.Fprintln(c.out, "q = NULL")
		return err
	}
	_, err := fmt.Fprintf(c.out, "q = [%s]\n", strings.Join(c.q.Values(), " "))
	return err
}

// randString returns a lowercase string of 5 to 10 letters.
func (c *Console) randString() string {
	b := make([]byte, 5+c.rand.Intn(6))
	for i := range b {
		b[i] = byte('a' + c.rand.Intn(26))
	}
	return string(b)
}
