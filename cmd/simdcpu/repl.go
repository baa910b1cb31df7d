package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/simdcpu/script"
)

// evalLine evaluates one line as an expression, falling back to running
// it as a statement. The result is empty for statements and None.
func evalLine(sc *script.Script, line string) (result string, err error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	value, err := sc.Eval(line)
	var serr syntax.Error
	if errors.As(err, &serr) {
		err = sc.Exec("<stdin>", line)
		return
	}
	if err != nil {
		return
	}

	if value != starlark.None {
		result = value.String()
	}
	return
}

func repl(sc *script.Script, out io.Writer) (err error) {
	sc.Output = out

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "simdcpu> ",
		HistoryFile: filepath.Join(os.TempDir(), "simdcpu_history.txt"),
	})
	if err != nil {
		return
	}
	defer rl.Close()

	for {
		var line string
		line, err = rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				err = nil
				return
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		result, lerr := evalLine(sc, line)
		if lerr != nil {
			fmt.Fprintln(out, lerr)
			continue
		}
		if len(result) != 0 {
			fmt.Fprintln(out, result)
		}
	}
}
