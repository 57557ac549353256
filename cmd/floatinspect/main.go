// Command floatinspect decodes one or more command-line arguments as
// IEEE-754 floating-point values (or raw hex bit patterns) and prints
// their binary16/32/64, hardfloat, and FloPoCo encodings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zerfoo/softfloat/internal/inspect"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: floatinspect <value> [value...]")
		fmt.Fprintln(os.Stderr, "  <value> is a decimal float (1.5), a decimal integer (100, read as both a bit pattern and a value), or a 0x-prefixed hex bit pattern (0x3c00).")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	exitCode := 0
	for _, arg := range args {
		out, err := inspect.Report(arg)
		if err != nil {
			log.Printf("%v", err)
			exitCode = 1
			continue
		}
		fmt.Print(out)
	}
	os.Exit(exitCode)
}
