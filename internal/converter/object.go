package converter

import (
	"encoding/json"
	"fmt"
)

// object reads the keys of a JSON object.
// The first error is kept and every following read is a no-op.
type object struct {
	entity string
	fields map[string]json.RawMessage
	err    error
}

func newObject(entity string, data []byte) (*object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", entity, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%s: expected a JSON object, got null", entity)
	}
	return &object{
		entity: entity,
		fields: fields,
	}, nil
}

func (o *object) required(key string, dst any) {
	if o.err != nil {
		return
	}
	raw, ok := o.fields[key]
	if !ok {
		o.err = &MissingFieldError{Entity: o.entity, Field: key}
		return
	}
	o.decode(key, raw, dst)
}

// optional decodes the key when it is present and not null, and reports whether it was.
func (o *object) optional(key string, dst any) bool {
	if o.err != nil {
		return false
	}
	raw, ok := o.fields[key]
	if !ok || isNull(raw) {
		return false
	}
	o.decode(key, raw, dst)
	return o.err == nil
}

func (o *object) decode(key string, raw json.RawMessage, dst any) {
	if err := json.Unmarshal(raw, dst); err != nil {
		o.err = fmt.Errorf("%s.%s: %w", o.entity, key, err)
	}
}

// fail keeps err unless an earlier error is already kept.
func (o *object) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
