package jsonskema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonskema/i18n"
	"github.com/reoring/jsonskema/internal/engine"
	"github.com/reoring/jsonskema/internal/yamldoc"
)

// LoadOpt controls how documents are loaded. When several are passed the last
// one wins.
type LoadOpt struct {
	// RejectDuplicateKeys fails on an object with a repeated member name.
	RejectDuplicateKeys bool
	// MaxDepth bounds the nesting of objects and arrays (0 = unlimited).
	MaxDepth int
}

// DocumentError reports a document rejected by LoadOpt.
type DocumentError struct {
	Code     string // "duplicate_key" or "max_depth"
	Location string // JSON Pointer of the offending member
	Message  string
}

func (e *DocumentError) Error() string {
	if e.Location == "" {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Location)
}

func lastOpt(opts []LoadOpt) LoadOpt {
	var opt LoadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

// ParseJSON decodes a single JSON document into the value model validators
// consume: numbers stay json.Number so precision is kept.
func ParseJSON(data []byte, opts ...LoadOpt) (any, error) {
	return ReadJSON(bytes.NewReader(data), opts...)
}

// ReadJSON is ParseJSON over a reader. Content after the first value is an
// error.
func ReadJSON(r io.Reader, opts ...LoadOpt) (any, error) {
	opt := lastOpt(opts)
	eo := engine.EnforceOptions{RejectDuplicates: opt.RejectDuplicateKeys, MaxDepth: opt.MaxDepth}
	if !eo.Enabled() {
		dec := gojson.NewDecoder(r)
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, engine.ErrTrailingData
		}
		return v, nil
	}
	v, err := engine.DecodeAny(engine.WrapWithEnforcement(engine.NewReader(r), eo))
	var ie *engine.IssueError
	if errors.As(err, &ie) {
		return nil, &DocumentError{Code: ie.Code, Location: ie.Path, Message: i18n.T(ie.Code, nil)}
	}
	return v, err
}

// ParseYAML decodes every document of a YAML stream. Duplicate keys are always
// rejected; MaxDepth applies per document.
func ParseYAML(data []byte, opts ...LoadOpt) ([]any, error) {
	opt := lastOpt(opts)
	yr := yamldoc.NewReader(bytes.NewReader(data), opt.MaxDepth)
	var docs []any
	for {
		v, err := yr.Next()
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		var dup *yamldoc.DuplicateKeyError
		switch {
		case errors.As(err, &dup):
			return nil, &DocumentError{Code: "duplicate_key", Message: fmt.Sprintf("%s %q (line %d, first at line %d)", i18n.T("duplicate_key", nil), dup.Key, dup.Line, dup.FirstLine)}
		case errors.Is(err, yamldoc.ErrTooDeep):
			return nil, &DocumentError{Code: "max_depth", Message: i18n.T("max_depth", nil)}
		case err != nil:
			return nil, err
		}
		docs = append(docs, v)
	}
}
