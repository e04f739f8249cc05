package host

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/funvibe/ppl/internal/executable"
)

func openStore(t *testing.T, user string) *UserStore {
	t.Helper()
	s, err := OpenUserStore(":memory:", user)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUserStoreRoundTrip(t *testing.T) {
	s := openStore(t, "sysop")

	addr := executable.NewArray(executable.TypeString, 1, 2, 0, 0)
	addr.Array().Set(executable.NewString("Main St"), 0)
	addr.Array().Set(executable.NewString("Springfield"), 2)
	err := s.PutUser(map[string]executable.Value{
		"U_CITY":   executable.NewString("Berlin"),
		"U_SEC":    executable.NewInt(110),
		"U_EXPERT": executable.NewBool(true),
		"U_ADDR":   addr,
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	fields, err := s.GetUser()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := fields["U_CITY"].AsString(); got != "Berlin" {
		t.Errorf("U_CITY = %q", got)
	}
	if got := fields["U_SEC"]; got.Type != executable.TypeInteger || got.AsInt() != 110 {
		t.Errorf("U_SEC = %v", got)
	}
	if !fields["U_EXPERT"].AsBool() {
		t.Errorf("U_EXPERT = %v", fields["U_EXPERT"])
	}
	arr := fields["U_ADDR"].Array()
	if arr == nil || len(arr.Elems) != 3 {
		t.Fatalf("U_ADDR = %v", fields["U_ADDR"])
	}
	if arr.Elems[0].AsString() != "Main St" || arr.Elems[1].AsString() != "" || arr.Elems[2].AsString() != "Springfield" {
		t.Errorf("U_ADDR elements = %v", arr.Elems)
	}
}

func TestUserStoreReplacesFields(t *testing.T) {
	s := openStore(t, "sysop")
	for _, city := range []string{"Berlin", "Paris"} {
		if err := s.SetField("u_city", executable.NewString(city)); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	v, err := s.Field("U_CITY")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if v.AsString() != "Paris" {
		t.Errorf("U_CITY = %q", v.AsString())
	}
}

func TestUserStoreSeparatesUsers(t *testing.T) {
	s := openStore(t, "alice")
	if err := s.SetField("U_CITY", executable.NewString("Oslo")); err != nil {
		t.Fatal(err)
	}
	s.SetUser("bob")
	if _, err := s.Field("U_CITY"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("bob U_CITY: got %v, want ErrUserNotFound", err)
	}
	fields, err := s.GetUser()
	if err != nil || len(fields) != 0 {
		t.Errorf("bob record = %v, %v", fields, err)
	}

	users, err := s.Users()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0] != "ALICE" {
		t.Errorf("users = %v", users)
	}
}

func TestUserStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	s, err := OpenUserStore(path, "sysop")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetField("U_SEC", executable.NewInt(20)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenUserStore(path, "SYSOP")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	v, err := s.Field("U_SEC")
	if err != nil {
		t.Fatal(err)
	}
	if v.AsInt() != 20 {
		t.Errorf("U_SEC = %v", v)
	}
}
