package attribute

import "fmt"

type (
	Flag  string
	Shape int

	// CommandAttribute describes where the keys of a command live in its
	// argument vector. Positions are counted with the command name at 0.
	CommandAttribute struct {
		Name     string
		Arity    int
		Flags    Flag
		FirstKey int
		LastKey  int
		Step     int
	}
)

const (
	Write    Flag = "write"
	Readonly Flag = "readonly"
)

const (
	Invalid Shape = iota
	Keyless
	SingleKey
	FixedMultiKey
	VariableMultiKey
)

var shapeNames = map[Shape]string{
	Invalid:          "invalid",
	Keyless:          "keyless",
	SingleKey:        "single-key",
	FixedMultiKey:    "fixed-multi-key",
	VariableMultiKey: "variable-multi-key",
}

func (shape Shape) String() string {
	return shapeNames[shape]
}

// Shape checks are ordered: a single key at position 1 wins over every other
// rule, keyless wins over the multi-key rules.
func (attr CommandAttribute) Shape() Shape {
	if attr.FirstKey == 1 && attr.LastKey == 1 {
		return SingleKey
	}

	if attr.FirstKey == 0 {
		return Keyless
	}

	if attr.LastKey != attr.FirstKey && attr.LastKey > 0 {
		return FixedMultiKey
	}

	if attr.FirstKey == 1 && attr.LastKey == -1 && attr.Step >= 1 {
		return VariableMultiKey
	}

	return Invalid
}

func (attr CommandAttribute) IsReadonly() bool {
	return attr.Flags == Readonly
}

func (attr CommandAttribute) String() string {
	return fmt.Sprintf("%s(arity=%d flags=%s first=%d last=%d step=%d)",
		attr.Name, attr.Arity, attr.Flags, attr.FirstKey, attr.LastKey, attr.Step)
}
