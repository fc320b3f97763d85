package trap

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/emberlang/ember-runtime/errors"
)

// Handler receives the violation after the diagnostic has been written.
// It must not return; the default handler exits the process with status 1.
type Handler func(err *errors.Error)

var handler Handler = func(err *errors.Error) {
	os.Exit(1)
}

// SetHandler replaces the termination behavior and returns the previous
// handler. Embedders that cannot tolerate os.Exit install a handler that
// panics instead; tests use this to assert fatal paths. The diagnostic is
// written to stderr before the handler runs either way.
func SetHandler(h Handler) Handler {
	prev := handler
	handler = h
	return prev
}

// Fail reports a contract violation and terminates. The diagnostic goes
// to stderr unconditionally and to the configured logger, then control
// passes to the installed handler, which does not return.
func Fail(err *errors.Error) {
	fmt.Fprintf(os.Stderr, "ember: %v\n", err)
	Logger().Error("contract violation",
		zap.String("phase", string(err.Phase)),
		zap.String("kind", string(err.Kind)),
		zap.String("op", err.Op),
		zap.Int("index", err.Index),
		zap.Int("length", err.Length),
	)
	handler(err)
	// Reached only with a non-terminating handler installed; there is no
	// recovery contract, so stop the goroutine rather than continue into
	// undefined behavior.
	panic(err)
}
