package jsonschema

import (
	"fmt"

	model "github.com/mondrian-framework/model-go"
)

// Export projects a descriptor into a JSON Schema for its wire shape.
// Optionality never shows on the field schema itself, it shows as the
// field missing from the enclosing object's required list, and unions
// project to oneOf of their variant wire shapes. Recursive descriptors
// are rejected: the projection carries no $ref vocabulary, so a cycle
// cannot be expressed.
func Export(t model.Type) (*Schema, error) {
	return export(t, map[model.Type]bool{})
}

func export(t model.Type, visiting map[model.Type]bool) (*Schema, error) {
	c := model.Concretise(t)
	if visiting[c] {
		return nil, fmt.Errorf("jsonschema: cannot export recursive descriptor %s", describe(c))
	}
	visiting[c] = true
	defer delete(visiting, c)

	s, err := exportNode(c, visiting)
	if err != nil {
		return nil, err
	}
	if base := c.Base(); s != nil {
		if s.Title == "" {
			s.Title = base.Name
		}
		if s.Description == "" {
			s.Description = base.Description
		}
	}
	return s, nil
}

func exportNode(c model.Type, visiting map[model.Type]bool) (*Schema, error) {
	switch n := c.(type) {
	case *model.BooleanType:
		return &Schema{Type: "boolean"}, nil
	case *model.NumberType:
		o := n.Options()
		typ := "number"
		if o.IsInteger {
			typ = "integer"
		}
		return &Schema{
			Type:             typ,
			Minimum:          o.Minimum,
			Maximum:          o.Maximum,
			ExclusiveMinimum: o.ExclusiveMinimum,
			ExclusiveMaximum: o.ExclusiveMaximum,
			MultipleOf:       o.MultipleOf,
		}, nil
	case *model.StringType:
		o := n.Options()
		return &Schema{
			Type:      "string",
			MinLength: o.MinLength,
			MaxLength: o.MaxLength,
			Pattern:   o.Pattern,
		}, nil
	case *model.LiteralType:
		v := n.Value()
		if v == nil {
			return &Schema{Type: "null"}, nil
		}
		return &Schema{Const: &v}, nil
	case *model.EnumType:
		return &Schema{Type: "string", Enum: n.Variants()}, nil
	case *model.ObjectType:
		props := make(map[string]*Schema, len(n.Fields()))
		var required []string
		for _, f := range n.Fields() {
			fs, err := export(f.Type, visiting)
			if err != nil {
				return nil, err
			}
			props[f.Name] = fs
			if !admitsAbsence(f.Type) {
				required = append(required, f.Name)
			}
		}
		return &Schema{Type: "object", Properties: props, Required: required}, nil
	case *model.ArrayType:
		items, err := export(n.Wrapped(), visiting)
		if err != nil {
			return nil, err
		}
		o := n.Options()
		return &Schema{Type: "array", Items: items, MinItems: o.MinItems, MaxItems: o.MaxItems}, nil
	case *model.UnionType:
		oneOf := make([]*Schema, 0, len(n.Variants()))
		for _, v := range n.Variants() {
			vs, err := export(v.Type(), visiting)
			if err != nil {
				return nil, err
			}
			if vs.Title == "" {
				vs.Title = v.Name()
			}
			oneOf = append(oneOf, vs)
		}
		return &Schema{OneOf: oneOf}, nil
	case *model.OptionalType:
		return export(n.Wrapped(), visiting)
	case *model.NullableType:
		child, err := export(n.Wrapped(), visiting)
		if err != nil {
			return nil, err
		}
		return &Schema{OneOf: []*Schema{child, {Type: "null"}}}, nil
	case *model.ReferenceType:
		return export(n.Wrapped(), visiting)
	case *model.CustomType:
		if e, ok := n.TypeOptions().(Exporter); ok {
			return e.JSONSchema(), nil
		}
		return &Schema{Format: n.Name()}, nil
	}
	return nil, fmt.Errorf("jsonschema: cannot export %s descriptor", c.Kind())
}

func admitsAbsence(t model.Type) bool {
	switch n := model.Concretise(t).(type) {
	case *model.OptionalType:
		return true
	case *model.ReferenceType:
		return admitsAbsence(n.Wrapped())
	}
	return false
}

func describe(c model.Type) string {
	if name := c.Base().Name; name != "" {
		return fmt.Sprintf("%s (%s)", name, c.Kind())
	}
	return c.Kind().String()
}
