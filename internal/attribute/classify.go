package attribute

// UnsupportedCommands lists what the decomposer cannot route: fixed multi-key
// shapes and every keyless command except the COMMAND introspection verb.
func (registry *Registry) UnsupportedCommands() []string {
	cmds := make([]string, 0)

	for _, name := range registry.names {
		if registry.IsUnsupported(name) {
			cmds = append(cmds, name)
		}
	}

	return cmds
}

func (registry *Registry) SingleKeyCommands() []string {
	return registry.withShape(SingleKey)
}

func (registry *Registry) VariableMultiKeyCommands() []string {
	return registry.withShape(VariableMultiKey)
}

func (registry *Registry) KeylessCommands() []string {
	return registry.withShape(Keyless)
}

func (registry *Registry) FixedMultiKeyCommands() []string {
	return registry.withShape(FixedMultiKey)
}

func (registry *Registry) Shape(name string) Shape {
	return registry.shapes[normalizeName(name)]
}

func (registry *Registry) IsUnsupported(name string) bool {
	name = normalizeName(name)
	shape, exists := registry.shapes[name]

	if !exists {
		return false
	}

	if shape == FixedMultiKey {
		return true
	}

	return shape == Keyless && name != introspection
}

// IsWriteCommand answers false only for registered readonly commands.
// Unknown commands count as writes.
func (registry *Registry) IsWriteCommand(name string) bool {
	attr, exists := registry.Lookup(name)

	if !exists {
		return true
	}

	return !attr.IsReadonly()
}

func (registry *Registry) withShape(shape Shape) []string {
	cmds := make([]string, 0)

	for _, name := range registry.names {
		if registry.shapes[name] == shape {
			cmds = append(cmds, name)
		}
	}

	return cmds
}

const introspection = "command"
