package executable

// PPEExpr is an expression as it appears in the code stream
type PPEExpr interface {
	// appendTo encodes the expression without a terminating zero word
	appendTo(words []int16) []int16
}

// ValueExpr reads a variable or constant
type ValueExpr struct {
	ID int
}

// DimExpr indexes an array variable with up to three subscripts
type DimExpr struct {
	ID   int
	Dims []PPEExpr
}

type UnaryExpr struct {
	Op   FuncOpCode
	Expr PPEExpr
}

type BinaryExpr struct {
	Op          FuncOpCode
	Left, Right PPEExpr
}

// FunctionCallExpr calls a user function
type FunctionCallExpr struct {
	ID   int
	Args []PPEExpr
}

// PredefinedCallExpr calls a built-in function
type PredefinedCallExpr struct {
	Func FuncOpCode
	Args []PPEExpr
}

// MemberExpr reads the member ID of a UserData value
type MemberExpr struct {
	Expr PPEExpr
	ID   int
}

// MemberCallExpr invokes the member ID of a UserData value
type MemberCallExpr struct {
	Expr PPEExpr
	Args []PPEExpr
	ID   int
}

func (e *ValueExpr) appendTo(w []int16) []int16 {
	return append(w, int16(e.ID), 0)
}

func (e *DimExpr) appendTo(w []int16) []int16 {
	w = append(w, int16(e.ID), int16(len(e.Dims)))
	for _, d := range e.Dims {
		w = append(d.appendTo(w), 0)
	}
	return w
}

func (e *UnaryExpr) appendTo(w []int16) []int16 {
	return append(e.Expr.appendTo(w), e.Op.Word())
}

func (e *BinaryExpr) appendTo(w []int16) []int16 {
	w = e.Left.appendTo(w)
	w = e.Right.appendTo(w)
	return append(w, e.Op.Word())
}

func (e *FunctionCallExpr) appendTo(w []int16) []int16 {
	w = append(w, int16(e.ID), 0)
	for _, a := range e.Args {
		w = append(a.appendTo(w), 0)
	}
	return w
}

func (e *PredefinedCallExpr) appendTo(w []int16) []int16 {
	for _, a := range e.Args {
		w = a.appendTo(w)
	}
	return append(w, e.Func.Word())
}

func (e *MemberExpr) appendTo(w []int16) []int16 {
	w = e.Expr.appendTo(w)
	return append(w, FN_MEMBERREFERENCE.Word(), int16(e.ID))
}

func (e *MemberCallExpr) appendTo(w []int16) []int16 {
	w = e.Expr.appendTo(w)
	for _, a := range e.Args {
		w = a.appendTo(w)
	}
	return append(w, FN_MEMBERCALL.Word(), int16(len(e.Args)), int16(e.ID))
}

// EncodeExpression encodes a complete expression including its end marker
func EncodeExpression(e PPEExpr) []int16 {
	return append(e.appendTo(nil), 0)
}

// VariableID returns the id an expression writes to when used as an assignment target
func VariableID(e PPEExpr) (int, bool) {
	switch e := e.(type) {
	case *ValueExpr:
		return e.ID, true
	case *DimExpr:
		return e.ID, true
	}
	return 0, false
}

// WalkExpr calls fn for e and every nested expression, parents first
func WalkExpr(e PPEExpr, fn func(PPEExpr)) {
	if e == nil {
		return
	}
	fn(e)
	switch e := e.(type) {
	case *DimExpr:
		walkAll(e.Dims, fn)
	case *UnaryExpr:
		WalkExpr(e.Expr, fn)
	case *BinaryExpr:
		WalkExpr(e.Left, fn)
		WalkExpr(e.Right, fn)
	case *FunctionCallExpr:
		walkAll(e.Args, fn)
	case *PredefinedCallExpr:
		walkAll(e.Args, fn)
	case *MemberExpr:
		WalkExpr(e.Expr, fn)
	case *MemberCallExpr:
		WalkExpr(e.Expr, fn)
		walkAll(e.Args, fn)
	}
}

func walkAll(list []PPEExpr, fn func(PPEExpr)) {
	for _, e := range list {
		WalkExpr(e, fn)
	}
}
