package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a JSON document into a container, keeping object key order.
// Integer literals decode to int, other numbers to float64.
func FromJSON(data []byte) (*Container, error) {
	return Normalize(json.RawMessage(data))
}

// FromYAML decodes a YAML document into a container, keeping mapping key order.
func FromYAML(data []byte) (*Container, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &DecodeError{Format: "yaml", Err: err}
	}

	return Normalize(&node)
}

func (w *walker) json(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := w.jsonValue(dec)
	if err != nil {
		return nil, &DecodeError{Format: "json", Err: err}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Format: "json", Err: errors.New("unexpected data after top-level value")}
	}

	return v, nil
}

func (w *walker) jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}

		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return w.jsonObject(dec)
		case '[':
			return w.jsonArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case json.Number:
		return jsonNumber(strings.Clone(string(t)))
	default:
		// string, bool or nil
		return t, nil
	}
}

func (w *walker) jsonObject(dec *json.Decoder) (*Container, error) {
	out := New()

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return out, nil
		}

		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		v, err := w.jsonValue(dec)
		if err != nil {
			return nil, err
		}

		out.Set(Name(name), v)
	}
}

func (w *walker) jsonArray(dec *json.Decoder) (*Container, error) {
	out := New()

	for {
		if !dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}

			if d, ok := tok.(json.Delim); ok && d == ']' {
				return out, nil
			}

			return nil, fmt.Errorf("expected end of array, got %v", tok)
		}

		v, err := w.jsonValue(dec)
		if err != nil {
			return nil, err
		}

		out.Append(v)
	}
}

func jsonNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}

	return f, nil
}

func (w *walker) yaml(node *yaml.Node) (any, error) {
	v, err := w.yamlNode(node, map[*yaml.Node]struct{}{})
	if err != nil {
		return nil, &DecodeError{Format: "yaml", Err: err}
	}

	return v, nil
}

func (w *walker) yamlNode(node *yaml.Node, seen map[*yaml.Node]struct{}) (any, error) {
	if _, ok := seen[node]; ok {
		return nil, fmt.Errorf("recursive alias at line %d", node.Line)
	}

	seen[node] = struct{}{}
	defer delete(seen, node)

	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return w.yamlNode(node.Content[0], seen)
	case yaml.AliasNode:
		return w.yamlNode(node.Alias, seen)
	case yaml.SequenceNode:
		out := New()

		for _, item := range node.Content {
			v, err := w.yamlNode(item, seen)
			if err != nil {
				return nil, err
			}

			out.Append(v)
		}

		return out, nil
	case yaml.MappingNode:
		out := New()
		if err := w.yamlMapping(out, node, seen, false); err != nil {
			return nil, err
		}

		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("unsupported node kind %d at line %d", node.Kind, node.Line)
	}
}

// yamlMapping copies the pairs of node into out. Merge keys ("<<") contribute
// only keys the mapping does not define itself.
func (w *walker) yamlMapping(out *Container, node *yaml.Node, seen map[*yaml.Node]struct{}, merged bool) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Tag == "!!merge" {
			if err := w.yamlMerge(out, valueNode, seen); err != nil {
				return err
			}

			continue
		}

		var k any
		if err := keyNode.Decode(&k); err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}

		key := keyOf(k)
		if merged && out.Has(key) {
			continue
		}

		v, err := w.yamlNode(valueNode, seen)
		if err != nil {
			return err
		}

		out.Set(key, v)
	}

	return nil
}

func (w *walker) yamlMerge(out *Container, node *yaml.Node, seen map[*yaml.Node]struct{}) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		return w.yamlMapping(out, node, seen, true)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if err := w.yamlMerge(out, item, seen); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("line %d: merge value must be a mapping", node.Line)
	}
}
