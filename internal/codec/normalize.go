package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"time"
)

// normalize applies the data-model rules from Section 2 and Section 3 to a
// Go value, producing a structure ready for encoding: one of nil, bool,
// string, Number, Object, or []any holding more of the same.
//
// Unlike a JSON-oriented normalizer, integers of any width are kept exact:
// Go's int64/uint64 arithmetic never loses precision the way float64 does,
// so there is no "safe integer" boundary to fall back to a string past.
func normalize(v any) (normalizedValue, error) {
	if v == nil {
		return nil, nil
	}

	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return val, nil
	case Number:
		return val, nil
	case Object:
		return normalizeObjectFields(val.Fields)
	case Field:
		return normalizeObjectFields([]Field{val})
	case json.Number:
		canon, err := canonicalizeDecimalString(val.String())
		if err != nil {
			return val.String(), nil
		}
		return Number{Literal: canon}, nil
	case float32:
		return normalizeFloat(float64(val))
	case float64:
		return normalizeFloat(val)
	case int, int8, int16, int32, int64:
		i := reflect.ValueOf(val).Int()
		return Number{Literal: strconv.FormatInt(i, 10)}, nil
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(val).Uint()
		return Number{Literal: strconv.FormatUint(u, 10)}, nil
	case *big.Int:
		if val == nil {
			return nil, nil
		}
		return Number{Literal: val.String()}, nil
	case big.Int:
		return Number{Literal: val.String()}, nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return val.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		length := rv.Len()
		result := make([]normalizedValue, 0, length)
		for i := 0; i < length; i++ {
			item, err := normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result = append(result, item)
		}
		return result, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errEncoding("unsupported map key type %s", rv.Type().Key())
		}
		iter := rv.MapRange()
		var fields []Field
		for iter.Next() {
			fieldValue, err := normalize(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: iter.Key().String(), Value: fieldValue})
		}
		slices.SortFunc(fields, func(a, b Field) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			default:
				return 0
			}
		})
		return Object{Fields: fields}, nil
	case reflect.Struct:
		return normalizeStructValue(rv)
	}

	return nil, errEncoding("unsupported value of type %T", v)
}

func normalizeStructValue(val reflect.Value) (Object, error) {
	meta := cachedStructMeta(val.Type())
	fields := make([]Field, 0, len(meta.fields))
	for _, field := range meta.fields {
		childValue := fieldValueByIndex(val, field.index)
		if field.omitEmpty && isEmptyValue(childValue) {
			continue
		}
		child, err := normalize(childValue.Interface())
		if err != nil {
			return Object{}, fmt.Errorf("%s: %w", field.name, err)
		}
		fields = append(fields, Field{Key: field.name, Value: child})
	}
	return Object{Fields: fields}, nil
}

func normalizeObjectFields(fields []Field) (Object, error) {
	normalized := make([]Field, 0, len(fields))
	for _, field := range fields {
		child, err := normalize(field.Value)
		if err != nil {
			return Object{}, fmt.Errorf("%s: %w", field.Key, err)
		}
		normalized = append(normalized, Field{Key: field.Key, Value: child})
	}
	return Object{Fields: normalized}, nil
}

func normalizeFloat(f float64) (normalizedValue, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1), math.IsInf(f, -1):
		return nil, nil
	default:
		if f == math.Copysign(0, -1) {
			f = 0
		}
		return Number{Literal: strconv.FormatFloat(f, 'f', -1, 64)}, nil
	}
}
