package registry

// Schema is the OpenAPI-flavored shape rendered for one descriptor. It is
// deliberately a plain tree of these nodes rather than a third-party
// OpenAPI struct: the REST layer that eventually serializes this owns the
// choice of library, this package only owns the shape.
type Schema struct {
	Type        OpenAPIType
	TypeName    string
	Description string
	Deprecated  bool

	// Properties is populated for ModelArray: one entry per non-removed
	// field, keyed by FieldDescriptor.Key.
	Properties map[string]*Schema
	Required   []string

	// Items is populated for ModelList/ModelArray-as-array/ModelNTArray
	// and ModelNTPtrArray/ModelPtr: the element schema.
	Items *Schema

	// Enum is populated for ModelFlagArray: the non-hidden flag names.
	Enum []string
}

// Describe renders t's registered descriptor as a Schema, recursing into
// linked field types, container element types, and pointer targets.
// Descriptors are immutable once registered, so Describe never mutates
// the table and is safe to call concurrently with Parse/Dump.
func Describe(t Type) (*Schema, error) {
	d, err := Find(t)
	if err != nil {
		return nil, err
	}
	return describeDescriptor(d), nil
}

func describeDescriptor(d *Descriptor) *Schema {
	s := &Schema{
		Type:        d.OpenAPIType,
		TypeName:    d.TypeName,
		Description: d.Description,
		Deprecated:  d.Deprecated.IsSet(),
	}

	switch d.Model {
	case ModelArray:
		s.Properties = map[string]*Schema{}
		for _, f := range d.Fields {
			if f.Model == ModelArraySkipField || f.Model == ModelArrayRemovedField {
				continue
			}
			prop := &Schema{Description: f.Description, Deprecated: f.Deprecated.IsSet()}
			if f.LinkType != TypeInvalid {
				if linked, err := Find(f.LinkType); err == nil {
					prop = describeDescriptor(linked)
					prop.Description = f.Description
				}
			}
			s.Properties[f.Key] = prop
			if f.Required {
				s.Required = append(s.Required, f.Key)
			}
		}
	case ModelFlagArray:
		for _, e := range d.FlagBits {
			if e.Hidden {
				continue
			}
			s.Enum = append(s.Enum, e.FlagName)
		}
	case ModelList, ModelNTArray, ModelNTPtrArray:
		if elem, err := Find(d.ListElemType); err == nil {
			s.Items = describeDescriptor(elem)
		} else if elem, err := Find(d.ArrayElemType); err == nil {
			s.Items = describeDescriptor(elem)
		}
	case ModelPtr:
		if elem, err := Find(d.PtrTargetType); err == nil {
			s.Items = describeDescriptor(elem)
		}
	}

	return s
}
