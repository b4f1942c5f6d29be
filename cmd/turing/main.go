package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/webs"
)

var (
	checkWords []string
	demo       = cmds.Switch("demo")
	serve      = cmds.Switch("serve")
	tap        = cmds.Switch("-tap")
)

func init() {
	cmds.Define("check", cmds.Func(func(words ...string) {
		checkWords = append(checkWords, words...)
	}).Desc("decide whether each word is a palindrome"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exitCode := 0
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		decide Decide,
		runDemo RunDemo,
		serveHTTP webs.Serve,
		tapFn debugs.Tap,
		maxSteps tmconfigs.MaxSteps,
	) {

		for _, word := range checkWords {
			m, outcome, err := decide(ctx, word)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%q: %v\n", word, err)
				exitCode = 1
				continue
			}
			fmt.Printf("%q: %s (%d steps, %s)\n", word, m.Result(), m.Steps(), outcome)
			fmt.Printf("  %s\n", strings.Join(m.Display(), ""))
			fmt.Printf("  %s^\n", strings.Repeat(" ", m.Head()))
			if *tap {
				tapFn(ctx, word, debugs.MachineGlobals(m, int(maxSteps)))
			}
		}

		if *demo {
			if n := runDemo(os.Stdout); n > 0 {
				logger.Error("demo mismatches", "count", n)
				exitCode = 1
			}
		}

		if *serve {
			if err := serveHTTP(ctx); err != nil {
				logger.Error("serve", "error", err)
				exitCode = 1
			}
		}

		if len(checkWords) == 0 && !*demo && !*serve {
			cmds.GlobalExecutor.PrintUsage()
		}
	})

	os.Exit(exitCode)
}
