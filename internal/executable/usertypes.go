package executable

import (
	"fmt"
	"strings"
)

type MemberKind int

const (
	MemberField MemberKind = iota
	MemberFunction
	MemberProcedure
)

func (k MemberKind) String() string {
	switch k {
	case MemberFunction:
		return "Function"
	case MemberProcedure:
		return "Procedure"
	}
	return "Field"
}

// Member is a field or method of a host object type. Type is the field or result type.
type Member struct {
	Name   string
	Kind   MemberKind
	Type   VariableType
	Params []VariableType
}

// UserType describes a host object type visible to PPL source, e.g. CONFINFO.
// Members are addressed by their index; that index is what the script buffer stores.
type UserType struct {
	Name    string
	Type    VariableType
	Members []Member
}

// MemberID returns the index of the named member, ignoring case
func (u *UserType) MemberID(name string) (int, bool) {
	for i := range u.Members {
		if strings.EqualFold(u.Members[i].Name, name) {
			return i, true
		}
	}
	return -1, false
}

// Member returns the member with the given index
func (u *UserType) Member(id int) (*Member, bool) {
	if id < 0 || id >= len(u.Members) {
		return nil, false
	}
	return &u.Members[id], true
}

// TypeRegistry maps user type names to their tags. Tags are handed out from
// FirstUserDataType in registration order, so parser, compiler and VM must
// share one registry (or registries built the same way).
type TypeRegistry struct {
	types  []*UserType
	byName map[string]*UserType
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{byName: make(map[string]*UserType)}
}

// Register adds a type and returns it. Registering a name twice is an error.
func (r *TypeRegistry) Register(name string, members ...Member) (*UserType, error) {
	key := strings.ToUpper(name)
	if _, ok := r.byName[key]; ok {
		return nil, fmt.Errorf("user type %s already registered", name)
	}
	if _, ok := TypeFromKeyword(name, LastPPLC); ok {
		return nil, fmt.Errorf("user type %s shadows a builtin type", name)
	}
	tag := int(FirstUserDataType) + len(r.types)
	if tag >= int(TypeNone) {
		return nil, fmt.Errorf("too many user types")
	}
	ut := &UserType{Name: key, Type: VariableType(tag), Members: members}
	r.types = append(r.types, ut)
	r.byName[key] = ut
	return ut, nil
}

// Lookup finds a type by name. A nil registry knows no types.
func (r *TypeRegistry) Lookup(name string) (*UserType, bool) {
	if r == nil {
		return nil, false
	}
	ut, ok := r.byName[strings.ToUpper(name)]
	return ut, ok
}

func (r *TypeRegistry) ByType(t VariableType) (*UserType, bool) {
	if r == nil || !t.IsUserData() {
		return nil, false
	}
	i := int(t) - int(FirstUserDataType)
	if i < 0 || i >= len(r.types) {
		return nil, false
	}
	return r.types[i], true
}

func (r *TypeRegistry) Types() []*UserType {
	if r == nil {
		return nil
	}
	return r.types
}
