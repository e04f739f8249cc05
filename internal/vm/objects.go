package vm

// objects is the arena of UserData instances of one run. Values refer to
// instances by handle; handle 0 is never handed out so a zero value has no object.
type objects struct {
	items []UserData
}

func newObjects() *objects {
	return &objects{items: []UserData{nil}}
}

func (o *objects) add(obj UserData) int {
	o.items = append(o.items, obj)
	return len(o.items) - 1
}

func (o *objects) get(handle int) (UserData, bool) {
	if handle <= 0 || handle >= len(o.items) || o.items[handle] == nil {
		return nil, false
	}
	return o.items[handle], true
}

func (o *objects) len() int { return len(o.items) - 1 }
