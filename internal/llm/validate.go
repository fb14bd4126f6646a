package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type schemaRegistry struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaRegistry{compiled: map[string]*jsonschema.Schema{}}

// get compiles s once per name.
func (r *schemaRegistry) get(s *Schema) (*jsonschema.Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.compiled[s.Name]; ok {
		return c, nil
	}

	raw, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	url := "mem://" + s.Name + ".json"
	comp := jsonschema.NewCompiler()
	if err := comp.AddResource(url, doc); err != nil {
		return nil, err
	}
	c, err := comp.Compile(url)
	if err != nil {
		return nil, err
	}
	r.compiled[s.Name] = c
	return c, nil
}

// validateResponse checks raw against schema. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("not JSON: %w", err)
	}
	c, err := schemas.get(schema)
	if err != nil {
		return invalid("schema %q: %w", schema.Name, err)
	}
	if err := c.Validate(doc); err != nil {
		return invalid("does not match %q: %w", schema.Name, err)
	}
	return nil
}

// finish turns a provider's text output into Response content. Structured
// requests get their code fences stripped and are validated; one that failed
// validation because the model ran out of tokens reports
// ErrMaxTokensExceeded instead.
func finish(req Request, text, stop string) (json.RawMessage, error) {
	if req.Schema == nil {
		return json.RawMessage(text), nil
	}
	content := json.RawMessage(UnwrapFences(text))
	if err := validateResponse(req.Schema, content); err != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		return nil, err
	}
	return content, nil
}
