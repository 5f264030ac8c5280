package codec

import "strings"

// expandPaths implements Section 4.4: after decoding, any object key that
// contains '.' and splits into nothing but identifier segments is expanded
// into a chain of nested objects. It is the inverse of the encoder's
// Safe-mode key folding.
func expandPaths(value normalizedValue, strict bool) (normalizedValue, error) {
	switch v := value.(type) {
	case Object:
		var out Object
		for _, field := range v.Fields {
			expanded, err := expandPaths(field.Value, strict)
			if err != nil {
				return nil, err
			}
			if isDottedPath(field.Key) {
				if err := insertExpanded(&out, field.Key, expanded, strict); err != nil {
					return nil, err
				}
			} else {
				if _, exists := out.Get(field.Key); exists && strict {
					return nil, errDecode("path expansion conflict at %q", field.Key)
				}
				out = out.With(field.Key, expanded)
			}
		}
		return out, nil
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			expanded, err := expandPaths(item, strict)
			if err != nil {
				return nil, err
			}
			result[i] = expanded
		}
		return result, nil
	default:
		return value, nil
	}
}

func isDottedPath(key string) bool {
	if !strings.Contains(key, ".") {
		return false
	}
	for _, segment := range strings.Split(key, ".") {
		if !isIdentifierSegment(segment) {
			return false
		}
	}
	return true
}

func insertExpanded(target *Object, dotted string, value normalizedValue, strict bool) error {
	segments := strings.Split(dotted, ".")
	return insertSegments(target, segments, value, strict, dotted)
}

func insertSegments(current *Object, segments []string, value normalizedValue, strict bool, fullKey string) error {
	if len(segments) == 1 {
		if _, exists := current.Get(segments[0]); exists {
			if strict {
				return errDecode("path expansion conflict at %q", fullKey)
			}
		}
		*current = current.With(segments[0], value)
		return nil
	}

	existing, ok := current.Get(segments[0])
	if !ok {
		existing = Object{}
	}

	child, ok := existing.(Object)
	if !ok {
		if strict {
			return errDecode("path expansion conflict at %q: expected object", fullKey)
		}
		child = Object{}
	}

	if err := insertSegments(&child, segments[1:], value, strict, fullKey); err != nil {
		return err
	}
	*current = current.With(segments[0], child)
	return nil
}
