// Command qtest runs a queue command script and checks every step against a
// reference model.
//
//	qtest -f traces/basic.cmd
//	echo "new
//	it a 3
//	dedup" | qtest -v 2
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/min1324/ringq/qtest"
)

var (
	file    = flag.String("f", "", "script file to run, stdin if empty")
	verbose = flag.Int("v", 1, "verbosity: 0 errors only, 1 queue after each change, 2 everything")
	length  = flag.Int("l", 1024, "remove buffer length, terminator included")
	asJSON  = flag.Bool("json", false, "print queue snapshots and the summary as JSON")
	seed    = flag.Int64("seed", 1, "seed for RAND strings")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("qtest: ")

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	c := qtest.NewConsole(os.Stdout, os.Stderr, qtest.Options{
		Verbose: *verbose,
		Length:  *length,
		JSON:    *asJSON,
		Seed:    *seed,
	})
	if err := c.Run(in); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
