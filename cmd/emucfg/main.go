// Package main provides the emucfg CLI.
//
// emucfg turns Valve KeyValue documents into emulator configuration:
//   - controller: per-preset action bindings from a controller config
//   - stats: stat and achievement definitions from a user-stats schema
//   - dump: a JSON backup of any normalized document
//   - appinfo: product metadata from product info and store app details
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"

	"emucfg/internal/common"
)

const usage = `usage: emucfg <command> [flags] <file>...

commands:
  controller   write <preset>.txt binding files from controller configs
  stats        write a YAML report of stats and achievements
  dump         write the normalized tree of a document as JSON
  appinfo      write a YAML report of product metadata

run "emucfg <command> -h" for the flags of a command
`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	log.SetFlags(0)
	log.SetOutput(stderr)
	log.SetPrefix("emucfg: ")

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q", args[0])

		if guess, ok := common.Closest(args[0], slices.Sorted(maps.Keys(commands))); ok {
			fmt.Fprintf(stderr, ", did you mean %q?", guess)
		}

		fmt.Fprintf(stderr, "\n\n%s", usage)

		return 2
	}

	opts, err := parseOptions(args[0], args[1:], cmd.format, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		log.Print(err)
		return 2
	}

	if err := processFiles(opts, cmd.handle); err != nil {
		log.Print(err)
		return 1
	}

	return 0
}
