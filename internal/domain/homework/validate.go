package homework

import (
	"encoding/json"
	"fmt"
	"math"
)

// Homeworks is the "homeworks" list as received. Elements stay undecoded until read.
type Homeworks []any

func (h Homeworks) Len() int { return len(h) }

// First decodes the most recent work item. Only "homework_name" and "status" are
// type-checked; other keys are ignored.
func (h Homeworks) First() (WorkItem, error) {
	if len(h) == 0 {
		return WorkItem{}, fmt.Errorf("%w: %q is empty", ErrUnexpectedType, KeyHomeworks)
	}
	item, err := decodeWorkItem(h[0])
	if err != nil {
		return WorkItem{}, fmt.Errorf("%s[0]: %w", KeyHomeworks, err)
	}
	return item, nil
}

// Validate checks the shape of a decoded status API payload and returns its
// "homeworks" list unchanged. An empty list is valid; a missing one yields
// ErrEmptyResponse.
func Validate(raw any) (Homeworks, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response root is %T, expected an object", ErrUnexpectedType, raw)
	}

	value, found := root[KeyHomeworks]
	if !found || value == nil {
		return nil, ErrEmptyResponse
	}

	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, expected a list", ErrUnexpectedType, KeyHomeworks, value)
	}
	return Homeworks(list), nil
}

func decodeWorkItem(entry any) (WorkItem, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return WorkItem{}, fmt.Errorf("%w: work item is %T, expected an object", ErrUnexpectedType, entry)
	}

	name, err := optionalString(fields, KeyHomeworkName)
	if err != nil {
		return WorkItem{}, err
	}
	status, err := optionalString(fields, KeyStatus)
	if err != nil {
		return WorkItem{}, err
	}
	return WorkItem{Name: name, Status: Status(status)}, nil
}

func optionalString(fields map[string]any, key string) (string, error) {
	v, found := fields[key]
	if !found || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, expected a string", ErrUnexpectedType, key, v)
	}
	return s, nil
}

// NextCursor extracts the server supplied start of the next poll window. The field is
// optional; ok is false when it is absent or not a whole number.
func NextCursor(raw any) (cursor int64, ok bool) {
	root, isMap := raw.(map[string]any)
	if !isMap {
		return 0, false
	}
	switch v := root[KeyCurrentDate].(type) {
	case float64:
		if v != math.Trunc(v) || v < 0 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	case int64:
		return v, v >= 0
	case int:
		return int64(v), v >= 0
	default:
		return 0, false
	}
}
