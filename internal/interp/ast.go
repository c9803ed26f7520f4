package interp

type stmt interface{ stmtNode() }

type assignStmt struct {
	name  string
	value expr // may be *inputExpr, in which case execution suspends
}

type printStmt struct {
	value expr
}

type whileStmt struct {
	cond expr
	body []stmt
}

type ifStmt struct {
	cond expr
	then []stmt
	els  []stmt
}

func (*assignStmt) stmtNode() {}
func (*printStmt) stmtNode()  {}
func (*whileStmt) stmtNode()  {}
func (*ifStmt) stmtNode()     {}

type expr interface{ exprNode() }

type intLit struct{ value int64 }
type floatLit struct{ value float64 }
type stringLit struct{ value string }
type boolLit struct{ value bool }
type varRef struct{ name string }

type unaryExpr struct {
	op string // "-" or "not"
	x  expr
}

type binaryExpr struct {
	op   string
	l, r expr
}

type inputExpr struct{ prompt string }

func (*intLit) exprNode()     {}
func (*floatLit) exprNode()   {}
func (*stringLit) exprNode()  {}
func (*boolLit) exprNode()    {}
func (*varRef) exprNode()     {}
func (*unaryExpr) exprNode()  {}
func (*binaryExpr) exprNode() {}
func (*inputExpr) exprNode()  {}
