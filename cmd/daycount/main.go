// Command daycount prints the number of days between two YYYY-MM-DD dates.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arvindkinja/date-day-count/internal/daycount"
)

func main() {
	methodFlag := flag.String("method", string(daycount.MethodLegacy), "counting method: legacy or calendar")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: daycount [-method legacy|calendar] START END")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	method, err := daycount.ParseMethod(*methodFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	start, end := daycount.Parse(flag.Arg(0)), daycount.Parse(flag.Arg(1))
	fmt.Println(method.Count(start, end))
}
