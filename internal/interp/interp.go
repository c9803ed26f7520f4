package interp

import "fmt"

// Status is the outcome of one Tick.
type Status int

const (
	// Continuing means the program made progress and has more to do.
	Continuing Status = iota
	// Finished means the program ran to completion.
	Finished
	// AwaitInput means the program is suspended on input().
	AwaitInput
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Finished:
		return "finished"
	case AwaitInput:
		return "await-input"
	}
	return "unknown"
}

// Sink receives program output, one call per printed line.
type Sink interface {
	Print(line string)
}

// frame is one level of the explicit execution stack. A frame with a
// loop pointer re-evaluates the loop condition when its body runs out.
type frame struct {
	body []stmt
	pc   int
	loop *whileStmt
}

// Interpreter runs one parsed program. Execution state lives entirely in
// the struct, never on the Go call stack, so a suspended program is just
// data until the next Tick.
type Interpreter struct {
	vars    map[string]value
	stack   []frame
	waiting bool
	waitVar string
}

// New parses source and returns an interpreter positioned at the first
// statement.
func New(source string) (*Interpreter, error) {
	prog, err := parse(source)
	if err != nil {
		return nil, err
	}
	ip := &Interpreter{vars: make(map[string]value)}
	ip.stack = append(ip.stack, frame{body: prog})
	return ip, nil
}

// Tick advances execution by one statement step. Errors are terminal:
// after a non-nil error the program is finished.
func (ip *Interpreter) Tick(sink Sink) (Status, error) {
	if ip.waiting {
		return AwaitInput, nil
	}
	if len(ip.stack) == 0 {
		return Finished, nil
	}
	f := &ip.stack[len(ip.stack)-1]
	if f.pc >= len(f.body) {
		if f.loop != nil {
			again, err := ip.evalBool(f.loop.cond)
			if err != nil {
				return ip.fail(err)
			}
			if again {
				f.pc = 0
				return Continuing, nil
			}
		}
		ip.stack = ip.stack[:len(ip.stack)-1]
		if len(ip.stack) == 0 {
			return Finished, nil
		}
		return Continuing, nil
	}

	switch s := f.body[f.pc].(type) {
	case *assignStmt:
		if in, ok := s.value.(*inputExpr); ok {
			sink.Print(in.prompt)
			ip.waiting = true
			ip.waitVar = s.name
			return AwaitInput, nil
		}
		v, err := ip.eval(s.value)
		if err != nil {
			return ip.fail(err)
		}
		ip.vars[s.name] = v
		f.pc++
	case *printStmt:
		v, err := ip.eval(s.value)
		if err != nil {
			return ip.fail(err)
		}
		sink.Print(v.text())
		f.pc++
	case *whileStmt:
		f.pc++
		enter, err := ip.evalBool(s.cond)
		if err != nil {
			return ip.fail(err)
		}
		if enter {
			ip.stack = append(ip.stack, frame{body: s.body, loop: s})
		}
	case *ifStmt:
		f.pc++
		taken, err := ip.evalBool(s.cond)
		if err != nil {
			return ip.fail(err)
		}
		if taken {
			ip.stack = append(ip.stack, frame{body: s.then})
		} else if s.els != nil {
			ip.stack = append(ip.stack, frame{body: s.els})
		}
	}
	return Continuing, nil
}

// ProvideInput resumes a program suspended on input() by binding the
// composed line to the waiting variable. It is a no-op when the program
// is not waiting.
func (ip *Interpreter) ProvideInput(line string) {
	if !ip.waiting {
		return
	}
	ip.vars[ip.waitVar] = stringVal(line)
	ip.waiting = false
	ip.waitVar = ""
	// Step past the suspended assignment.
	ip.stack[len(ip.stack)-1].pc++
}

// Waiting reports whether the program is suspended on input().
func (ip *Interpreter) Waiting() bool {
	return ip.waiting
}

func (ip *Interpreter) fail(err error) (Status, error) {
	ip.stack = nil
	return Finished, err
}

func (ip *Interpreter) eval(e expr) (value, error) {
	switch e := e.(type) {
	case *intLit:
		return intVal(e.value), nil
	case *floatLit:
		return floatVal(e.value), nil
	case *stringLit:
		return stringVal(e.value), nil
	case *boolLit:
		return boolVal(e.value), nil
	case *varRef:
		v, ok := ip.vars[e.name]
		if !ok {
			return value{}, fmt.Errorf("undefined variable %q", e.name)
		}
		return v, nil
	case *unaryExpr:
		return ip.evalUnary(e)
	case *binaryExpr:
		return ip.evalBinary(e)
	default:
		return value{}, fmt.Errorf("unexpected expression")
	}
}

func (ip *Interpreter) evalBool(e expr) (bool, error) {
	v, err := ip.eval(e)
	if err != nil {
		return false, err
	}
	if v.kind != kindBool {
		return false, fmt.Errorf("condition is %s, not a boolean", v.text())
	}
	return v.b, nil
}

func (ip *Interpreter) evalUnary(e *unaryExpr) (value, error) {
	v, err := ip.eval(e.x)
	if err != nil {
		return value{}, err
	}
	switch e.op {
	case "-":
		n, err := v.number()
		if err != nil {
			return value{}, fmt.Errorf("cannot negate %q", v.text())
		}
		if n.kind == kindInt {
			return intVal(-n.i), nil
		}
		return floatVal(-n.f), nil
	case "not":
		if v.kind != kindBool {
			return value{}, fmt.Errorf("not applied to %q", v.text())
		}
		return boolVal(!v.b), nil
	}
	return value{}, fmt.Errorf("unknown operator %q", e.op)
}

func (ip *Interpreter) evalBinary(e *binaryExpr) (value, error) {
	lv, err := ip.eval(e.l)
	if err != nil {
		return value{}, err
	}
	rv, err := ip.eval(e.r)
	if err != nil {
		return value{}, err
	}
	switch e.op {
	case "+", "-", "*", "/":
		return arith(e.op, lv, rv)
	case "==":
		return boolVal(equal(lv, rv)), nil
	case "!=":
		return boolVal(!equal(lv, rv)), nil
	case "<", "<=", ">", ">=":
		ln, lerr := lv.number()
		rn, rerr := rv.number()
		if lerr != nil || rerr != nil {
			return value{}, fmt.Errorf("cannot compare %q and %q", lv.text(), rv.text())
		}
		lf, rf := ln.float(), rn.float()
		switch e.op {
		case "<":
			return boolVal(lf < rf), nil
		case "<=":
			return boolVal(lf <= rf), nil
		case ">":
			return boolVal(lf > rf), nil
		default:
			return boolVal(lf >= rf), nil
		}
	}
	return value{}, fmt.Errorf("unknown operator %q", e.op)
}

// arith keeps integer arithmetic integral; any float operand promotes
// the operation to floating point.
func arith(op string, lv, rv value) (value, error) {
	ln, lerr := lv.number()
	rn, rerr := rv.number()
	if lerr != nil || rerr != nil {
		return value{}, fmt.Errorf("cannot apply %q to %q and %q", op, lv.text(), rv.text())
	}
	if ln.kind == kindInt && rn.kind == kindInt {
		switch op {
		case "+":
			return intVal(ln.i + rn.i), nil
		case "-":
			return intVal(ln.i - rn.i), nil
		case "*":
			return intVal(ln.i * rn.i), nil
		default:
			if rn.i == 0 {
				return value{}, fmt.Errorf("division by zero")
			}
			return intVal(ln.i / rn.i), nil
		}
	}
	lf, rf := ln.float(), rn.float()
	switch op {
	case "+":
		return floatVal(lf + rf), nil
	case "-":
		return floatVal(lf - rf), nil
	case "*":
		return floatVal(lf * rf), nil
	default:
		if rf == 0 {
			return value{}, fmt.Errorf("division by zero")
		}
		return floatVal(lf / rf), nil
	}
}

// equal compares numerically when both sides coerce to numbers, and by
// string form otherwise, so that input() results compare naturally
// against both numbers and words.
func equal(lv, rv value) bool {
	ln, lerr := lv.number()
	rn, rerr := rv.number()
	if lerr == nil && rerr == nil {
		return ln.float() == rn.float()
	}
	if lv.kind == kindBool && rv.kind == kindBool {
		return lv.b == rv.b
	}
	return lv.text() == rv.text()
}
