package executable

import "fmt"

// VarHeaderSize is the encoded size of a VarHeader
const VarHeaderSize = 11

// FlagStatic marks a function local that keeps its value between calls
const FlagStatic = 0x1

// VarHeader is the fixed part of a variable table entry
type VarHeader struct {
	ID     int
	Dim    uint8
	Vector int
	Matrix int
	Cube   int
	Type   VariableType
	Flags  uint8
}

func (h VarHeader) String() string {
	if h.Dim > 0 {
		return fmt.Sprintf("[id:%d, type:%s, flags:%d, dim:%d(%d,%d,%d)]", h.ID, h.Type, h.Flags, h.Dim, h.Vector, h.Matrix, h.Cube)
	}
	return fmt.Sprintf("[id:%d, type:%s, flags:%d]", h.ID, h.Type, h.Flags)
}

// Bytes encodes the header in its on-disk layout
func (h VarHeader) Bytes() []byte {
	buf := make([]byte, 0, VarHeaderSize)
	buf = appendU16(buf, uint16(h.ID))
	buf = append(buf, h.Dim)
	buf = appendU16(buf, uint16(h.Vector))
	buf = appendU16(buf, uint16(h.Matrix))
	buf = appendU16(buf, uint16(h.Cube))
	return append(buf, byte(h.Type), h.Flags)
}

func parseVarHeader(b []byte) VarHeader {
	dim := b[2]
	if dim > 3 {
		log.Warningf("invalid dimension %d in variable table, using 3", dim)
		dim = 3
	}
	return VarHeader{
		ID:     int(u16(b[0:])),
		Dim:    dim,
		Vector: int(u16(b[3:])),
		Matrix: int(u16(b[5:])),
		Cube:   int(u16(b[7:])),
		Type:   VariableType(b[9]),
		Flags:  b[10],
	}
}

// NewValue creates the initial value for a variable with this header
func (h VarHeader) NewValue() Value {
	if h.Dim == 0 {
		return ZeroValue(h.Type)
	}
	return NewArray(h.Type, int(h.Dim), h.Vector, h.Matrix, h.Cube)
}

// EntryRole is what a table entry is used for. It is derived, not stored.
type EntryRole int

const (
	RoleConstant EntryRole = iota
	RoleUserVariable
	RoleVariable
	RoleLocalVariable
	RoleFunctionResult
	RoleParameter
	RoleFunction
	RoleProcedure
)

var roleNames = [...]string{"Constant", "UserVariable", "Variable", "LocalVariable", "FunctionResult", "Parameter", "Function", "Procedure"}

func (r EntryRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// FunctionInfo describes the frame of a user function or procedure.
// FirstVarID is the id of the entry itself; its parameters and locals follow it.
type FunctionInfo struct {
	Parameters  uint8
	Locals      uint8
	StartOffset uint16
	FirstVarID  int16
	// ReturnVar is the id of the result slot (functions only)
	ReturnVar int16
	// PassFlags has bit i set when parameter i is passed by reference (procedures only)
	PassFlags uint16
}

func (f *FunctionInfo) String() string {
	return fmt.Sprintf("parameters:%d locals:%d offset:%04Xh first:%04Xh return:%04Xh pass:%04Xh",
		f.Parameters, f.Locals, f.StartOffset, uint16(f.FirstVarID), uint16(f.ReturnVar), f.PassFlags)
}

// FirstLocalID is the id of the first parameter; parameters and locals are contiguous from there
func (f *FunctionInfo) FirstLocalID() int {
	return int(f.FirstVarID) + 1
}

// FrameSize is the number of slots saved on a call
func (f *FunctionInfo) FrameSize() int {
	return int(f.Parameters) + int(f.Locals)
}

// IsByRef reports whether parameter i is a VAR parameter
func (f *FunctionInfo) IsByRef(i int) bool {
	return i < 16 && f.PassFlags&(1<<uint(i)) != 0
}

// TableEntry is one variable, constant, function or procedure
type TableEntry struct {
	Header VarHeader
	Name   string
	Role   EntryRole
	Value  Value
	// Function is set for Function and Procedure entries
	Function *FunctionInfo
	// FunctionID is the id of the function or procedure owning a parameter or local, 0 for globals
	FunctionID int
}

func (e *TableEntry) ID() int { return e.Header.ID }

// markUsed promotes a constant that is written to into a variable
func (e *TableEntry) markUsed() {
	if e.Role == RoleConstant {
		e.Role = RoleVariable
	}
}

// VariableTable holds entries addressed by 1-based id
type VariableTable struct {
	entries     []TableEntry
	hasUserVars bool
}

func (t *VariableTable) Len() int { return len(t.entries) }

// Entries returns the entries in id order. The slice must not be modified.
func (t *VariableTable) Entries() []TableEntry { return t.entries }

func (t *VariableTable) HasUserVars() bool { return t.hasUserVars }

// Push appends an entry and assigns it the next id
func (t *VariableTable) Push(e TableEntry) int {
	e.Header.ID = len(t.entries) + 1
	t.entries = append(t.entries, e)
	return e.Header.ID
}

// Entry returns the entry with the given id
func (t *VariableTable) Entry(id int) (*TableEntry, bool) {
	if id <= 0 || id > len(t.entries) {
		return nil, false
	}
	return &t.entries[id-1], true
}

// Function returns the frame description of a function or procedure entry
func (t *VariableTable) Function(id int) (*FunctionInfo, bool) {
	e, ok := t.Entry(id)
	if !ok || e.Function == nil {
		return nil, false
	}
	return e.Function, true
}

// Name returns the entry name or a synthetic one for unnamed constants
func (t *VariableTable) Name(id int) string {
	e, ok := t.Entry(id)
	if !ok {
		return fmt.Sprintf("#%d", id)
	}
	if e.Name == "" {
		return fmt.Sprintf("#%d", id)
	}
	return e.Name
}

// UserVariable is one of the predefined U_* variables GETUSER and PUTUSER exchange
type UserVariable struct {
	Name    string
	Version int
	Type    VariableType
	// Vector is the upper bound for vector variables, 0 for scalars
	Vector int
}

// UserVariables is the fixed prefix of the variable table of scripts using GETUSER/PUTUSER
var UserVariables = []UserVariable{
	{"U_EXPERT", 100, TypeBoolean, 0},
	{"U_FSE", 100, TypeBoolean, 0},
	{"U_FSEP", 100, TypeBoolean, 0},
	{"U_CLS", 100, TypeBoolean, 0},
	{"U_EXPDATE", 100, TypeDate, 0},
	{"U_SEC", 100, TypeInteger, 0},
	{"U_PAGELEN", 100, TypeInteger, 0},
	{"U_EXPSEC", 100, TypeInteger, 0},
	{"U_CITY", 100, TypeString, 0},
	{"U_BDPHONE", 100, TypeString, 0},
	{"U_HVPHONE", 100, TypeString, 0},
	{"U_TRANS", 100, TypeString, 0},
	{"U_CMNT1", 100, TypeString, 0},
	{"U_CMNT2", 100, TypeString, 0},
	{"U_PWD", 100, TypeString, 0},
	{"U_SCROLL", 100, TypeBoolean, 0},
	{"U_LONGHDR", 100, TypeBoolean, 0},
	{"U_DEF79", 100, TypeBoolean, 0},
	{"U_ALIAS", 100, TypeString, 0},
	{"U_VER", 100, TypeString, 0},
	{"U_ADDR", 100, TypeString, 5},
	{"U_NOTES", 100, TypeString, 4},
	{"U_PWDEXP", 100, TypeDate, 0},
	{"U_ACCOUNT", 300, TypeInteger, 16},
	{"U_SHORTDESC", 340, TypeBoolean, 0},
	{"U_GENDER", 340, TypeString, 0},
	{"U_BIRTHDATE", 340, TypeString, 0},
	{"U_EMAIL", 340, TypeString, 0},
	{"U_WEB", 340, TypeString, 0},
}

// Header returns the table header the compiler writes for the variable
func (u UserVariable) Header() VarHeader {
	h := VarHeader{Type: u.Type}
	if u.Vector > 0 {
		h.Dim = 1
		h.Vector = u.Vector
	}
	return h
}

// LookupUserVariable finds a U_* variable available in the given language version
func LookupUserVariable(name string, version int) (UserVariable, bool) {
	for _, u := range UserVariables {
		if equalFold(u.Name, name) && u.Version <= version {
			return u, true
		}
	}
	return UserVariable{}, false
}

// UserVariablesFor returns the U_* block a script of the given version declares
func UserVariablesFor(version int) []UserVariable {
	var res []UserVariable
	for _, u := range UserVariables {
		if u.Version <= version {
			res = append(res, u)
		}
	}
	return res
}

// scanUserVariables returns the version of the U_* block the table starts with, 0 if none.
func (t *VariableTable) scanUserVariables() int {
	for i, u := range UserVariables {
		if i < len(t.entries) {
			h := t.entries[i].Header
			want := u.Header()
			if h.Type == want.Type && h.Dim == want.Dim && h.Vector == want.Vector {
				continue
			}
			// U_BIRTHDATE is accepted with either type
			if u.Name == "U_BIRTHDATE" && h.Type == TypeDate {
				continue
			}
		}
		switch {
		case u.Version > 340:
			return 340
		case u.Version > 300:
			return 300
		case u.Version > 100:
			return 100
		}
		return 0
	}
	return 400
}

// assignRoles marks function, parameter, local and result entries from the frame descriptions
func (t *VariableTable) assignRoles() {
	for i := range t.entries {
		e := &t.entries[i]
		if e.Function == nil {
			continue
		}
		if e.Header.Type == TypeFunction {
			e.Role = RoleFunction
		} else {
			e.Role = RoleProcedure
		}
		fn := e.Function
		first := fn.FirstLocalID()
		for j := 0; j < fn.FrameSize(); j++ {
			v, ok := t.Entry(first + j)
			if !ok {
				log.Warningf("frame of %d reaches past the variable table", e.Header.ID)
				break
			}
			v.FunctionID = e.Header.ID
			switch {
			case e.Header.Type == TypeFunction && first+j == int(fn.ReturnVar):
				v.Role = RoleFunctionResult
			case j < int(fn.Parameters):
				v.Role = RoleParameter
			case v.Header.Flags == 0:
				v.Role = RoleLocalVariable
			}
		}
	}
}

// generateNames names a loaded table, whose names are not stored in the file
func (t *VariableTable) generateNames() {
	userVersion := t.scanUserVariables()
	t.hasUserVars = userVersion > 0
	userCount := 0
	if t.hasUserVars {
		userCount = len(UserVariablesFor(userVersion))
	}

	var funcs, procs, pars, locs, vars int
	for i := range t.entries {
		e := &t.entries[i]
		switch {
		case i < userCount:
			e.Name = UserVariables[i].Name
			e.Role = RoleUserVariable
		case e.Role == RoleFunction:
			funcs++
			e.Name = fmt.Sprintf("FUNC%03d", funcs)
		case e.Role == RoleProcedure:
			procs++
			e.Name = fmt.Sprintf("PROC%03d", procs)
		case e.Role == RoleParameter:
			pars++
			e.Name = fmt.Sprintf("PAR%03d", pars)
		case e.Role == RoleLocalVariable:
			locs++
			e.Name = fmt.Sprintf("LOC%03d", locs)
		case e.Role == RoleVariable:
			vars++
			e.Name = fmt.Sprintf("VAR%03d", vars)
		}
	}
	for i := range t.entries {
		e := &t.entries[i]
		if e.Role != RoleFunction {
			continue
		}
		if r, ok := t.Entry(int(e.Function.ReturnVar)); ok {
			r.Name = e.Name
		}
	}
}

// analyzeUsage promotes every constant that a statement writes to into a variable
func (t *VariableTable) analyzeUsage(script *Script) {
	mark := func(e PPEExpr) {
		if id, ok := VariableID(e); ok {
			if entry, ok := t.Entry(id); ok {
				entry.markUsed()
			}
		}
	}
	for _, stmt := range script.Statements {
		switch stmt.Op {
		case OP_LET:
			mark(stmt.Args[0])
		case OP_PCALL:
			fn, ok := t.Function(stmt.Target)
			if !ok {
				continue
			}
			for i, arg := range stmt.Args {
				if fn.IsByRef(i) {
					mark(arg)
				}
			}
		default:
			def := stmt.Op.Definition()
			if def == nil {
				continue
			}
			for i, arg := range stmt.Args {
				if def.IsVariableArgument(i) {
					mark(arg)
				}
			}
		}
	}
}
