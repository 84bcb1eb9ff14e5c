package schedule

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a range from a scalar such as "0-10" or 5.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range must be a scalar", value.Line)
	}
	parsed, err := ParseRange(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = parsed
	return nil
}

// UnmarshalYAML decodes a slot from a scalar "start/end".
func (s *Slot) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: slot must be a scalar", value.Line)
	}
	parsed, err := ParseSlot(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// planDocument is the mapping form of a plan.
type planDocument struct {
	Line         *int    `yaml:"line"`
	Destinations []Range `yaml:"destinations"`
	Slots        []Slot  `yaml:"slots"`
}

// UnmarshalYAML decodes a plan either from the shorthand scalar accepted
// by ParsePlan or from a mapping with line, destinations and slots keys.
func (p *Plan) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParsePlan(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*p = parsed
		return nil

	case yaml.MappingNode:
		var doc planDocument
		if err := value.Decode(&doc); err != nil {
			return err
		}
		if len(doc.Destinations) == 0 {
			return fmt.Errorf("line %d: plan needs at least one destination", value.Line)
		}
		*p = Plan{Line: doc.Line, Destinations: doc.Destinations, Slots: doc.Slots}
		return nil

	default:
		return fmt.Errorf("line %d: plan must be a string or a mapping", value.Line)
	}
}
