package hypermedia

// Schema is the subset of JSON Schema used to describe control payloads.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Format      string             `json:"format,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	MaxLength   int                `json:"maxLength,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty"`
	Maximum     *float64           `json:"maximum,omitempty"`
}

// String describes a string property of at most maxLen characters (0 = unbounded).
func String(maxLen int) *Schema {
	return &Schema{Type: "string", MaxLength: maxLen}
}

// Number describes a numeric property bounded by [min, max].
func Number(min, max float64) *Schema {
	return &Schema{Type: "number", Minimum: &min, Maximum: &max}
}

// Integer describes an integer property bounded by [min, max].
func Integer(min, max float64) *Schema {
	return &Schema{Type: "integer", Minimum: &min, Maximum: &max}
}

// Enum describes a string property restricted to values.
func Enum(values ...string) *Schema {
	return &Schema{Type: "string", Enum: values}
}
