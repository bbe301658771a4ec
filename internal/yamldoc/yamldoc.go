// Package yamldoc decodes YAML streams into JSON-like Go values, rejecting
// duplicate mapping keys with both positions.
package yamldoc

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// ErrTooDeep reports nesting beyond the configured maximum.
var ErrTooDeep = errors.New("yamldoc: max depth exceeded")

// Reader decodes a multi-document YAML stream using yaml.Node so duplicate keys
// can be detected with positions.
type Reader struct {
	dec      *yaml.Decoder
	maxDepth int
}

// NewReader constructs a Reader. maxDepth <= 0 disables the depth check.
func NewReader(r io.Reader, maxDepth int) *Reader {
	return &Reader{dec: yaml.NewDecoder(r), maxDepth: maxDepth}
}

// Next returns the next YAML document converted into a JSON-compatible Go
// value. It returns (nil, io.EOF) when the stream is exhausted.
func (r *Reader) Next() (any, error) {
	var root yaml.Node
	if err := r.dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	return r.convert(root.Content[0], 0)
}

func (r *Reader) convert(n *yaml.Node, depth int) (any, error) {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return nil, ErrTooDeep
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return r.convert(n.Content[0], depth)
	case yaml.AliasNode:
		return r.convert(n.Alias, depth)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			key := k.Value
			if pos, dup := first[key]; dup {
				return nil, &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := r.convert(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := r.convert(c, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n), nil
	default:
		return nil, nil
	}
}

func scalar(n *yaml.Node) any {
	switch n.Tag {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
		return n.Value
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
		return n.Value
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
		return n.Value
	default:
		return n.Value
	}
}
