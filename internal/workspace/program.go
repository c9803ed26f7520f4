package workspace

import (
	"github.com/google/uuid"

	"github.com/GriffinCanCode/QuadDesk/internal/interp"
)

// run owns the interpreter for one program execution. A window holds a
// run exactly while its status is StatusExecuting or
// StatusAwaitingInput. The pending slot buffers at most one composed
// input line; it is delivered on the window's next scheduled tick.
type run struct {
	id         string
	ip         *interp.Interpreter
	pending    string
	hasPending bool
}

func newRun(source string) (*run, error) {
	ip, err := interp.New(source)
	if err != nil {
		return nil, err
	}
	return &run{id: uuid.New().String()[:8], ip: ip}, nil
}

func (r *run) queueInput(line string) {
	r.pending = line
	r.hasPending = true
}

// step spends one scheduled tick: delivering queued input counts as the
// tick, otherwise the interpreter advances one statement.
func (r *run) step(sink interp.Sink) (interp.Status, error) {
	if r.hasPending {
		r.ip.ProvideInput(r.pending)
		r.pending = ""
		r.hasPending = false
		return interp.Continuing, nil
	}
	return r.ip.Tick(sink)
}
