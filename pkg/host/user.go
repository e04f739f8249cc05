package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/vm"
)

// UserTypeName is the PPL type name of the current user object
const UserTypeName = "USER"

// userFields maps USER fields to the record fields they read and write
var userFields = map[string]string{
	"CITY":   "U_CITY",
	"SEC":    "U_SEC",
	"EXPERT": "U_EXPERT",
	"ALIAS":  "U_ALIAS",
	"EMAIL":  "U_EMAIL",
}

// RegisterTypes adds the host object types of the console host to r
func RegisterTypes(r *executable.TypeRegistry) error {
	_, err := r.Register(UserTypeName,
		executable.Member{Name: "Name", Kind: executable.MemberField, Type: executable.TypeString},
		executable.Member{Name: "City", Kind: executable.MemberField, Type: executable.TypeString},
		executable.Member{Name: "Sec", Kind: executable.MemberField, Type: executable.TypeInteger},
		executable.Member{Name: "Expert", Kind: executable.MemberField, Type: executable.TypeBoolean},
		executable.Member{Name: "Alias", Kind: executable.MemberField, Type: executable.TypeString},
		executable.Member{Name: "Email", Kind: executable.MemberField, Type: executable.TypeString},
		executable.Member{Name: "Field", Kind: executable.MemberFunction, Type: executable.TypeString,
			Params: []executable.VariableType{executable.TypeString}},
		executable.Member{Name: "Select", Kind: executable.MemberProcedure,
			Params: []executable.VariableType{executable.TypeString}},
	)
	return err
}

// User is the USER object. Its fields live in the store.
type User struct {
	store *UserStore
}

// NewUser returns the object for the current record of store
func NewUser(store *UserStore) *User {
	return &User{store: store}
}

func (u *User) GetField(name string) (executable.Value, error) {
	name = strings.ToUpper(name)
	if name == "NAME" {
		return executable.NewString(u.store.User()), nil
	}
	field, ok := userFields[name]
	if !ok {
		return executable.Value{}, vm.ErrUnknownMember
	}
	v, err := u.store.Field(field)
	if errors.Is(err, ErrUserNotFound) {
		return executable.ZeroValue(fieldType(field)), nil
	}
	return v, err
}

func (u *User) SetField(name string, v executable.Value) error {
	name = strings.ToUpper(name)
	if name == "NAME" {
		return fmt.Errorf("USER.NAME is read only")
	}
	field, ok := userFields[name]
	if !ok {
		return vm.ErrUnknownMember
	}
	return u.store.SetField(field, v.ConvertTo(fieldType(field)))
}

// CallFunction implements FIELD(name), which reads any record field as text
func (u *User) CallFunction(name string, args []executable.Value) (executable.Value, error) {
	if !strings.EqualFold(name, "Field") {
		return executable.Value{}, vm.ErrUnknownMember
	}
	if len(args) != 1 {
		return executable.Value{}, executable.ErrArgumentCount
	}
	v, err := u.store.Field(args[0].AsString())
	if errors.Is(err, ErrUserNotFound) {
		return executable.NewString(""), nil
	}
	if err != nil {
		return executable.Value{}, err
	}
	if v.IsArray() {
		el, _ := v.Array().Get(0)
		v = el
	}
	return executable.NewString(v.AsString()), nil
}

// CallMethod implements SELECT(name), which switches to another record
func (u *User) CallMethod(name string, args []executable.Value) error {
	if !strings.EqualFold(name, "Select") {
		return vm.ErrUnknownMember
	}
	if len(args) != 1 {
		return executable.ErrArgumentCount
	}
	u.store.SetUser(args[0].AsString())
	return nil
}

func fieldType(field string) executable.VariableType {
	for _, uv := range executable.UserVariables {
		if uv.Name == field {
			return uv.Type
		}
	}
	return executable.TypeString
}
