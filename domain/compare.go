package domain

import (
	"cmp"
	"strings"
	"time"
)

// kind ranks values the way document databases order mixed types.
type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindTime
	kindString
	kindOther
)

func normalize(v any) (kind, any) {
	switch x := v.(type) {
	case nil:
		return kindNull, nil
	case bool:
		return kindBool, x
	case string:
		return kindString, x
	case time.Time:
		return kindTime, x
	case *time.Time:
		if x == nil {
			return kindNull, nil
		}
		return kindTime, *x
	case int:
		return kindNumber, float64(x)
	case int8:
		return kindNumber, float64(x)
	case int16:
		return kindNumber, float64(x)
	case int32:
		return kindNumber, float64(x)
	case int64:
		return kindNumber, float64(x)
	case uint:
		return kindNumber, float64(x)
	case uint8:
		return kindNumber, float64(x)
	case uint16:
		return kindNumber, float64(x)
	case uint32:
		return kindNumber, float64(x)
	case uint64:
		return kindNumber, float64(x)
	case float32:
		return kindNumber, float64(x)
	case float64:
		return kindNumber, x
	}
	return kindOther, v
}

// compareSameKind returns false when a and b cannot be ordered against each other.
func compareSameKind(a, b any) (int, bool) {
	ka, va := normalize(a)
	kb, vb := normalize(b)
	if ka != kb {
		return 0, false
	}
	switch ka {
	case kindNull:
		return 0, true
	case kindBool:
		return cmpBool(va.(bool), vb.(bool)), true
	case kindNumber:
		return cmp.Compare(va.(float64), vb.(float64)), true
	case kindTime:
		return va.(time.Time).Compare(vb.(time.Time)), true
	case kindString:
		return strings.Compare(va.(string), vb.(string)), true
	}
	return 0, false
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func evaluate(actual any, op Operator, expected any) bool {
	c, comparable := compareSameKind(actual, expected)
	switch op {
	case OpEqual:
		return comparable && c == 0
	case OpNotEqual:
		return !comparable || c != 0
	}
	k, _ := normalize(actual)
	if !comparable || k == kindNull || k == kindOther {
		return false
	}
	switch op {
	case OpLessThan:
		return c < 0
	case OpLessThanOrEqual:
		return c <= 0
	case OpGreaterThan:
		return c > 0
	case OpGreaterThanOrEqual:
		return c >= 0
	}
	return false
}

// order is a total order used for sorting: by kind first, then by value.
func order(a, b any) int {
	ka, _ := normalize(a)
	kb, _ := normalize(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	if c, ok := compareSameKind(a, b); ok {
		return c
	}
	return 0
}
