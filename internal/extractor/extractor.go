// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extractor coerces raw model output text into schema-shaped
// values. It tries a strict parse first, then a salvage parse on the
// outermost delimiter span, and finally escalates to a one-shot repair
// call. A second failure is terminal.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Target is a destination value for extraction. Validate reports whether
// the parsed value conforms to the stage's schema.
type Target interface {
	Validate() error
}

// Repairer turns malformed candidate text into (hopefully) valid JSON.
// The extractor calls it at most once per extraction.
type Repairer interface {
	Repair(ctx context.Context, malformed string) (string, error)
}

// MalformedError reports that model output could not be coerced to the
// target schema after direct parse, salvage parse, and one repair
// attempt. Raw carries the original text for diagnostics.
type MalformedError struct {
	Raw string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Extractor converts raw text into schema-shaped values. The zero value
// extracts without repair escalation; NewWithRepair attaches an agent.
type Extractor struct {
	repairer Repairer
}

// New returns an extractor without a repair agent: extraction fails
// after the salvage parse.
func New() *Extractor {
	return &Extractor{}
}

// NewWithRepair returns an extractor that escalates to r once per
// extraction before failing.
func NewWithRepair(r Repairer) *Extractor {
	return &Extractor{repairer: r}
}

// Extract parses raw into target, stopping at the first strategy that
// yields a value passing target.Validate. On failure it returns a
// *MalformedError carrying the original raw text. The repair agent, when
// present, is invoked at most once; its output gets the same strict
// parse and no further recovery.
func (e *Extractor) Extract(ctx context.Context, raw string, target Target) error {
	cleaned := StripFences(raw)

	directErr := parseInto(cleaned, target)
	if directErr == nil {
		return nil
	}

	if span, ok := salvageSpan(cleaned); ok {
		if err := parseInto(span, target); err == nil {
			return nil
		}
	}

	if e.repairer == nil {
		return &MalformedError{Raw: raw, Err: directErr}
	}

	repaired, err := e.repairer.Repair(ctx, cleaned)
	if err != nil {
		return &MalformedError{Raw: raw, Err: fmt.Errorf("repair call failed: %w", err)}
	}
	if err := parseInto(StripFences(repaired), target); err != nil {
		return &MalformedError{Raw: raw, Err: fmt.Errorf("after repair: %w", err)}
	}
	return nil
}

// StripFences removes markdown code-fence markers. Applying it twice
// yields the same result as applying it once.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseInto strictly unmarshals text and validates it, writing to target
// only on success. Each attempt decodes into a fresh value: a rejected
// parse must not leave partial fields behind for a later attempt to
// merge with. When the model echoes its schema description instead of
// data, the value arrives nested under a "properties" envelope key; one
// level is unwrapped automatically.
func parseInto(text string, target Target) error {
	data := []byte(text)

	candidate := newCandidate(target)
	err := json.Unmarshal(data, candidate)
	if err == nil {
		if err = candidate.Validate(); err == nil {
			adopt(target, candidate)
			return nil
		}
	}

	if inner, ok := propertiesEnvelope(data); ok {
		candidate = newCandidate(target)
		if uerr := json.Unmarshal(inner, candidate); uerr != nil {
			return uerr
		}
		if verr := candidate.Validate(); verr != nil {
			return verr
		}
		adopt(target, candidate)
		return nil
	}
	return err
}

// newCandidate allocates a zero value of target's underlying type.
func newCandidate(target Target) Target {
	return reflect.New(reflect.TypeOf(target).Elem()).Interface().(Target)
}

// adopt copies an accepted candidate value into target.
func adopt(target, candidate Target) {
	reflect.ValueOf(target).Elem().Set(reflect.ValueOf(candidate).Elem())
}

// propertiesEnvelope returns the value under a top-level "properties"
// key, if the text is a JSON object carrying one.
func propertiesEnvelope(data []byte) ([]byte, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, false
	}
	inner, ok := probe["properties"]
	if !ok {
		return nil, false
	}
	trimmed := strings.TrimSpace(string(inner))
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	return inner, true
}

// salvageSpan locates the outermost delimiter span: from the first
// opening brace or bracket to the last matching closing one. Narrative
// text around an otherwise-valid JSON body is discarded this way.
func salvageSpan(s string) (string, bool) {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start := -1
	var closer string
	switch {
	case objStart >= 0 && (arrStart < 0 || objStart < arrStart):
		start = objStart
		closer = "}"
	case arrStart >= 0:
		start = arrStart
		closer = "]"
	default:
		return "", false
	}

	end := strings.LastIndex(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
