// Package engine provides a Lisp evaluation engine for geometry scripting.
// It wraps zygomys in a sandboxed environment, exposes the geom2d/geom3d
// API as script builtins, and returns the value of the final expression.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the outcome of a successful evaluation: the value of the final
// expression in the script.
//
// Value holds the native Go form when the expression produced a geometry
// value (geom2d.Point, geom3d.Frame, ...), a float64, a bool or a string;
// it is nil for an empty script. Repr is the printable s-expression form.
type Result struct {
	Value any
	Repr  string
}

// Engine wraps the zygomys interpreter for geometry evaluation.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	timeout    time.Duration
}

// NewEngine creates a new Engine instance with the default timeout.
func NewEngine() *Engine {
	return &Engine{timeout: EvalTimeout}
}

// NewEngineWithTimeout creates an Engine with a custom evaluation timeout.
// Non-positive timeouts fall back to the default.
func NewEngineWithTimeout(timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = EvalTimeout
	}
	return &Engine{timeout: timeout}
}

// Evaluate takes Lisp source code and produces the final expression value.
//
// Return semantics:
//   - On success: returns a result + nil errors + nil error
//   - On parse/eval failure: returns nil result + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation, e.timeout)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Result, []EvalError, error) {
	// Empty source is a valid program with no value.
	if strings.TrimSpace(source) == "" {
		return &Result{Repr: "()"}, nil, nil
	}

	// Create a fresh sandboxed zygomys environment.
	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env)

	processed := preprocessSource(source)

	// Load and compile the source string into bytecode.
	if err := env.LoadString(processed); err != nil {
		return nil, parseZygomysError(err), nil
	}

	// Execute the compiled bytecode.
	final, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	return resultFrom(final), nil, nil
}

// resultFrom converts the final zygomys value into a Result, unwrapping
// geometry values into their native Go types.
func resultFrom(s zygo.Sexp) *Result {
	if s == nil {
		return &Result{Repr: "()"}
	}
	repr := s.SexpString(nil)
	switch v := s.(type) {
	case *zygo.SexpFloat:
		return &Result{Value: v.Val, Repr: repr}
	case *zygo.SexpInt:
		return &Result{Value: float64(v.Val), Repr: repr}
	case *zygo.SexpBool:
		return &Result{Value: v.Val, Repr: repr}
	case *zygo.SexpStr:
		return &Result{Value: v.S, Repr: repr}
	case geomSexp:
		return &Result{Value: v.geomValue(), Repr: repr}
	default:
		return &Result{Repr: repr}
	}
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
