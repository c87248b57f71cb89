package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// commandFn runs one REPL command with the words that followed it.
type commandFn func(ctx context.Context, args []string) error

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	// lookup resolves a command name for the current login state and view.
	lookup(name string) (commandFn, bool)
	help() string
}

// runREPL starts a read-eval-print loop over reader.
//
// Each line is split into words; the first picks the command. The loop
// exits on EOF or when the user types "exit" or "quit". Errors returned by
// command handlers are ignored here; handlers report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("checklist %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(a.help())

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			fn, ok := a.lookup(cmd)
			if !ok {
				printlnFn("Unknown command:", cmd)
				break
			}
			_ = fn(ctx, parts[1:])
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}
