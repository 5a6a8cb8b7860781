package palette

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the palette as an object keyed by role name, in
// canonical role order.
func (p Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for role, c := range p.All() {
		if role > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%q", role.String(), c.Hex())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a role-keyed object, rejecting malformed shapes
// and colours.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode palette: %w", err)
	}
	decoded, err := FromMap(m)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// MarshalYAML encodes the palette as a mapping in canonical role order.
func (p Palette) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for role, c := range p.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: role.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Hex(), Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a role-keyed mapping with the same checks as JSON.
func (p *Palette) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]string
	if err := value.Decode(&m); err != nil {
		return fmt.Errorf("decode palette: %w", err)
	}
	decoded, err := FromMap(m)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// Decode reads a palette document in JSON or YAML. When repair is set,
// loosely formatted colours are coerced instead of rejected.
func Decode(data []byte, repair bool) (Palette, error) {
	m, err := decodeMap(data)
	if err != nil {
		return Palette{}, err
	}
	if repair {
		return Repair(m)
	}
	return FromMap(m)
}

func decodeMap(data []byte) (map[string]string, error) {
	var m map[string]string
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &m); err == nil {
			return withoutForegrounds(m), nil
		}
	}
	// YAML is a superset of JSON, so this also reports JSON syntax errors.
	if err := yaml.Unmarshal(data, &m); err != nil {
		// Exported documents nest the palette under "palette", or under
		// "roles" together with the on-colours.
		var doc struct {
			Palette map[string]string `yaml:"palette"`
			Roles   map[string]string `yaml:"roles"`
		}
		if docErr := yaml.Unmarshal(data, &doc); docErr == nil {
			switch {
			case doc.Palette != nil:
				return doc.Palette, nil
			case doc.Roles != nil:
				return withoutForegrounds(doc.Roles), nil
			}
		}
		return nil, fmt.Errorf("decode palette: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("decode palette: document is empty")
	}
	return withoutForegrounds(m), nil
}

// withoutForegrounds drops derived on-colour keys so flat ColorRoles
// documents decode as plain palettes.
func withoutForegrounds(m map[string]string) map[string]string {
	for _, f := range ForegroundRoles() {
		delete(m, f.String())
	}
	return m
}
