package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/favmeta"
	"github.com/fwojciec/favmeta/i18n"
	"github.com/fwojciec/favmeta/lookup"
)

// Run executes the shell command. Each input line starts a lookup without
// waiting for the previous one; only the outcome of the most recent line is
// printed. Lines starting with ":" are commands:
//
//	:example N   look up the Nth example
//	:examples    list the examples
//	:lang LOCALE switch the message locale
//	:quit        wait for the pending lookup and exit
func (c *ShellCmd) Run(deps *Dependencies) error {
	sh := &shell{
		deps:    deps,
		session: lookup.NewSession(deps.Service),
		loc:     deps.Localizer,
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !sh.handle(line) {
			break
		}
	}
	sh.wg.Wait()

	return scanner.Err()
}

type shell struct {
	deps    *Dependencies
	session *lookup.Session
	wg      sync.WaitGroup

	mu  sync.Mutex // guards output and loc
	loc favmeta.Localizer
}

// handle processes one line and reports whether to keep reading.
func (sh *shell) handle(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	if !strings.HasPrefix(cmd, ":") {
		sh.start(line)
		return true
	}

	switch cmd {
	case ":quit", ":q":
		if sh.session.Loading() {
			sh.mu.Lock()
			fmt.Fprintln(sh.deps.Stderr, sh.loc.Message(i18n.MsgFetching))
			sh.mu.Unlock()
		}
		return false
	case ":examples":
		sh.mu.Lock()
		fmt.Fprintln(sh.deps.Stdout, sh.loc.Message(i18n.MsgTryExamples))
		for i, ex := range sh.deps.Examples {
			fmt.Fprintf(sh.deps.Stdout, "  %d. %s  %s\n", i+1, ex.Name, ex.URL)
		}
		sh.mu.Unlock()
	case ":example":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n < 1 || n > len(sh.deps.Examples) {
			sh.printf(sh.deps.Stderr, "usage: :example 1-%d\n", len(sh.deps.Examples))
			return true
		}
		sh.start(sh.deps.Examples[n-1].URL)
	case ":lang":
		catalog := i18n.New(strings.TrimSpace(arg))
		sh.mu.Lock()
		sh.loc = catalog
		sh.mu.Unlock()
		sh.printf(sh.deps.Stdout, "locale: %s\n", catalog.Locale())
	default:
		sh.printf(sh.deps.Stderr, "unknown command %s\n", cmd)
	}
	return true
}

// start runs a lookup in the background and prints its outcome if no newer
// lookup was started in the meantime.
func (sh *shell) start(input string) {
	seq := sh.session.Begin()

	sh.wg.Add(1)
	go func() {
		defer sh.wg.Done()

		o, ok := sh.session.Run(sh.deps.Ctx, seq, input)
		if !ok {
			return
		}

		sh.mu.Lock()
		defer sh.mu.Unlock()
		if sh.session.Current() != o {
			return
		}
		deps := *sh.deps
		deps.Localizer = sh.loc
		_ = writeOutcome(&deps, o)
	}()
}

func (sh *shell) printf(w io.Writer, format string, args ...any) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fmt.Fprintf(w, format, args...)
}
