package styler

import "fmt"

// ParseTemplate converts a loosely typed template into a [Template].
//
// Keys may be a string (a label), a [2]string (a cell) or a [Key].
// Values may be:
//
//   - a string: rename
//   - a [Formatter] or func(any) string: format
//   - a []any or [2]any holding (string, formatter): rename and format
//   - an [Entry]: used as is
//
// Any other shape fails with [ErrMalformedEntry].
func ParseTemplate(raw map[any]any) (Template, error) {
	t := make(Template, len(raw))
	for rk, rv := range raw {
		k, err := parseKey(rk)
		if err != nil {
			return nil, err
		}
		e, err := parseEntry(rv)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		t[k] = e
	}
	return t, nil
}

func parseKey(k any) (Key, error) {
	switch k := k.(type) {
	case string:
		return Label(k), nil
	case [2]string:
		return Cell(k[0], k[1]), nil
	case Key:
		return k, nil
	default:
		return Key{}, fmt.Errorf("%w: key %v of type %T is neither a label nor a label pair", ErrMalformedEntry, k, k)
	}
}

func parseEntry(v any) (Entry, error) {
	switch v := v.(type) {
	case Entry:
		return v, nil
	case string:
		return Rename(v), nil
	case []any:
		if len(v) != 2 {
			return Entry{}, fmt.Errorf("%w: sequence has %d elements, want 2", ErrMalformedEntry, len(v))
		}
		return parsePair(v[0], v[1])
	case [2]any:
		return parsePair(v[0], v[1])
	}
	if fn, ok := asFormatter(v); ok {
		return Format(fn), nil
	}
	return Entry{}, fmt.Errorf("%w: value of type %T is not a name, a formatter or a (name, formatter) pair", ErrMalformedEntry, v)
}

func parsePair(name, fn any) (Entry, error) {
	s, ok := name.(string)
	if !ok {
		return Entry{}, fmt.Errorf("%w: first element of type %T is not a name", ErrMalformedEntry, name)
	}
	f, ok := asFormatter(fn)
	if !ok {
		return Entry{}, fmt.Errorf("%w: second element of type %T is not a formatter", ErrMalformedEntry, fn)
	}
	return RenameFormat(s, f), nil
}

func asFormatter(v any) (Formatter, bool) {
	switch fn := v.(type) {
	case Formatter:
		return fn, fn != nil
	case func(any) string:
		return fn, fn != nil
	default:
		return nil, false
	}
}
