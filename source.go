package groundshadow

// ShaderSource is the input handed to the shader assembly pipeline: an ordered
// list of preprocessor feature defines, the shader source bodies to
// concatenate, and an optional storage qualifier for the pick color varying.
// Compilation and linking are the caller's concern.
type ShaderSource struct {
	// Defines are feature tokens, optionally with a value ("NAME" or
	// "NAME value"). Order is deterministic for a given appearance.
	Defines []string
	// Sources are shader bodies emitted after the defines, in order.
	Sources []string
	// PickColorQualifier, when non-empty, declares the pick color varying
	// with the given qualifier ahead of the sources.
	PickColorQualifier string
}

// AppendSource assembles the shader text and appends it to b, returning the
// result.
func (ss ShaderSource) AppendSource(b []byte) []byte {
	for _, def := range ss.Defines {
		b = append(b, "#define "...)
		b = append(b, def...)
		b = append(b, '\n')
	}
	if ss.PickColorQualifier != "" {
		b = append(b, ss.PickColorQualifier...)
		b = append(b, " vec4 v_pickColor;\n"...)
	}
	for _, src := range ss.Sources {
		b = append(b, src...)
		if len(src) > 0 && src[len(src)-1] != '\n' {
			b = append(b, '\n')
		}
	}
	return b
}
