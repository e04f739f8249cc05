package executable

import "testing"

func TestTypeRegistry(t *testing.T) {
	r := NewTypeRegistry()
	conf, err := r.Register("ConfInfo",
		Member{Name: "Name", Kind: MemberField, Type: TypeString},
		Member{Name: "HasAccess", Kind: MemberFunction, Type: TypeBoolean},
	)
	if err != nil {
		t.Fatal(err)
	}
	area, err := r.Register("MsgArea")
	if err != nil {
		t.Fatal(err)
	}
	if conf.Type != FirstUserDataType || area.Type != FirstUserDataType+1 {
		t.Errorf("tags = %d, %d", conf.Type, area.Type)
	}
	if got, ok := r.Lookup("confinfo"); !ok || got != conf {
		t.Error("lookup ignores case")
	}
	if got, ok := r.ByType(area.Type); !ok || got != area {
		t.Error("ByType")
	}
	if id, ok := conf.MemberID("HASACCESS"); !ok || id != 1 {
		t.Errorf("MemberID = %d, %v", id, ok)
	}
	if _, err := r.Register("CONFINFO"); err == nil {
		t.Error("duplicate registration accepted")
	}
	if _, err := r.Register("Integer"); err == nil {
		t.Error("builtin type name accepted")
	}

	var none *TypeRegistry
	if _, ok := none.Lookup("CONFINFO"); ok {
		t.Error("nil registry found a type")
	}
}
