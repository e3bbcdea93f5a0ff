// Package scan implements the line-filtering mode of the stringmatch CLI:
// compile one or more expressions and stream input lines through them,
// grep style.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/osmkit/stringmatch/pkg/log"
	"github.com/osmkit/stringmatch/pkg/matcher"
	"github.com/osmkit/stringmatch/pkg/pattern"
)

// ErrNoMatch is returned when a scan completes without selecting any line,
// so the driver can exit with status 1 the way grep does.
var ErrNoMatch = errors.New("no lines matched")

// maxLineSize bounds the scanner token size so a single long line does not
// abort the scan with bufio.ErrTooLong.
const maxLineSize = 1024 * 1024

// Opts contain configuration options that can be passed to the Execute() method
type Opts struct {
	// ExprFile names a file of expressions, one per line, to use instead of
	// the EXPR argument. Blank lines and lines starting with '#' are skipped,
	// and a line is selected when any expression matches it.
	ExprFile string

	// Invert selects the lines that do not match.
	Invert bool

	// Count suppresses line output and prints only the number of selected lines.
	Count bool

	// In and Out override standard input and output when non-nil.
	In  io.Reader
	Out io.Writer
}

// Execute runs a scan over the given arguments: the expression first (unless
// opts.ExprFile is set) and then the input files, standard input when there
// are none.
func Execute(opts *Opts, args []string) error {
	matchers, files, err := compile(opts, args)
	if err != nil {
		return err
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return run(opts, matchers, files, in, out)
}

// compile resolves the expression source for the scan and returns the
// compiled matchers along with the remaining file arguments.
func compile(opts *Opts, args []string) ([]matcher.Matcher, []string, error) {
	if opts.ExprFile != "" {
		matchers, err := compileFile(opts.ExprFile)
		return matchers, args, err
	}

	if len(args) == 0 {
		return nil, nil, errors.New("an expression argument is required unless --expr-file is given")
	}

	m, err := pattern.Parse(args[0])
	if err != nil {
		return nil, nil, err
	}
	return []matcher.Matcher{m}, args[1:], nil
}

// compileFile reads an expression per line from path, skipping blank lines
// and '#' comments, and compiles them all.
func compileFile(path string) ([]matcher.Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading expressions from %s", path)
	}

	var exprs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if len(exprs) == 0 {
		return nil, errors.Errorf("no expressions found in %s", path)
	}

	matchers, err := pattern.ParseAll(exprs)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling expressions from %s", path)
	}
	return matchers, nil
}

// run streams every input line through the matchers and writes the selected
// lines (or their count) to out. It returns ErrNoMatch when nothing was
// selected.
func run(opts *Opts, matchers []matcher.Matcher, files []string, stdin io.Reader, out io.Writer) error {
	defer log.Profile(time.Now(), "scan")

	selected := 0
	scanLines := func(r io.Reader) error {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for sc.Scan() {
			line := sc.Text()
			if matchAny(matchers, line) != opts.Invert {
				selected++
				if !opts.Count {
					fmt.Fprintln(out, line)
				}
			}
		}
		return sc.Err()
	}

	if len(files) == 0 {
		if err := scanLines(stdin); err != nil {
			return errors.Wrap(err, "scanning standard input")
		}
	} else {
		for _, path := range files {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "opening %s", path)
			}
			err = scanLines(f)
			f.Close()
			if err != nil {
				return errors.Wrapf(err, "scanning %s", path)
			}
		}
	}

	if opts.Count {
		fmt.Fprintln(out, selected)
	}
	if selected == 0 {
		return ErrNoMatch
	}
	return nil
}

// matchAny reports whether any of the matchers matches the line.
func matchAny(matchers []matcher.Matcher, line string) bool {
	for _, m := range matchers {
		if m.MatchString(line) {
			return true
		}
	}
	return false
}
