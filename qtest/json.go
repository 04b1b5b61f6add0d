package qtest

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

type snapshot struct {
	Live   bool     `json:"live"`
	Size   int      `json:"size"`
	Values []string `json:"values"`
}

type summary struct {
	Commands int      `json:"commands"`
	Errors   int      `json:"errors"`
	Queue    snapshot `json:"queue"`
}

func (c *Console) snapshot() snapshot {
	if c.q == nil {
		return snapshot{}
	}
	return snapshot{
		Live:   true,
		Size:   c.q.Size(),
		Values: c.q.Values(),
	}
}

func (c *Console) printJSON(v any) error {
	b, err := sonnet.Marshal(v)
	if err != nil {
		return fmt.Errorf("qtest: encode: %w", err)
	}
	b = append(b, '\n')
	if _, err := c.out.Write(b); err != nil {
		return fmt.Errorf("qtest: write: %w", err)
	}
	return nil
}

// summary reports the run totals, as JSON if enabled.
func (c *Console) summary() error {
	if c.opts.JSON {
		return c.printJSON(summary{
			Commands: c.ran,
			Errors:   c.failed,
			Queue:    c.snapshot(),
		})
	}
	if c.opts.Verbose >= 1 {
		fmt.Fprintf(c.out, "%d commands, %d errors\n", c.ran, c.failed)
	}
	return nil
}
