// ==============================================================================================
// FILE: eval/trace.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: Optional structured tracing of evaluator activity, off by default. Grounded on the
//          LSP server's zap wiring: a nop logger until a caller opts in, so Eval never pays for
//          logging it isn't asked to do.
// ==============================================================================================

package eval

import "go.uber.org/zap"

var logger *zap.Logger = zap.NewNop()

// SetLogger installs l as the package-wide trace logger. Pass zap.NewNop() (the default) to
// silence tracing again; cmd/minilisp wires this to a --trace flag.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
