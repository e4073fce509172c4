// Package ast defines the value tree for JSON documents, and a
// recursive-descent parser that constructs value trees from JSON source.
package ast

import (
	"fmt"
	"math"
	"sort"
)

// A Value is a JSON value. The concrete type is one of Null, Bool, Int,
// Float, String, *Array, or *Object. The set of implementations is closed:
// a type switch over these seven cases is exhaustive.
//
// A parsed Value exclusively owns its contents. Two independent parses of
// the same input share no structure, and a subtree is never reachable from
// more than one parent.
type Value interface {
	isValue()
}

// Null represents the JSON null constant.
type Null struct{}

// Bool is a JSON Boolean constant, true or false.
type Bool bool

// Int is a JSON number written without a fraction or exponent.
type Int int32

// Float is a JSON number written with a fraction and/or exponent. The
// distinction from Int is lexical: 1 is an Int, 1.0 and 1e0 are Floats,
// regardless of numeric value.
type Float float64

// String is a JSON string value, unquoted and with escape sequences
// decoded (see jet.Unquote for the decoding rules).
type String string

// An Array is an ordered sequence of values. Element order is significant
// and preserved.
type Array struct {
	Values []Value
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is a collection of key-value members. Member keys are unique
// and members preserve insertion order.
type Object struct {
	Members []*Member
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set updates the member of o with the given key to v, or appends a new
// member if no member has that key. A repeated key keeps its original
// position in the member list; only its value is replaced.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Int) isValue()     {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (*Array) isValue()  {}
func (*Object) isValue() {}

// floatTol is the relative tolerance used to compare Float values, the
// square root of the float64 machine epsilon. It absorbs round-trip
// formatting noise without conflating genuinely distinct values.
const floatTol = 1.4901161193847656e-08

func floatEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scale*floatTol
}

// Equal reports whether a and b are structurally equal.
//
// Comparison is type-strict: an Int never equals a Float, even when their
// numeric values coincide. Ints compare exactly, Floats by relative
// tolerance, Strings by byte equality. Arrays compare by length and then
// element-wise in order. Objects compare by member count and then by
// looking up each of a's keys in b; since keys are unique within an
// object, this is symmetric.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		v, ok := b.(Bool)
		return ok && a == v
	case Int:
		v, ok := b.(Int)
		return ok && a == v
	case Float:
		v, ok := b.(Float)
		return ok && floatEqual(float64(a), float64(v))
	case String:
		v, ok := b.(String)
		return ok && a == v
	case *Array:
		v, ok := b.(*Array)
		if !ok || len(a.Values) != len(v.Values) {
			return false
		}
		for i, elt := range a.Values {
			if !Equal(elt, v.Values[i]) {
				return false
			}
		}
		return true
	case *Object:
		v, ok := b.(*Object)
		if !ok || len(a.Members) != len(v.Members) {
			return false
		}
		for _, m := range a.Members {
			o := v.Find(m.Key)
			if o == nil || !Equal(m.Value, o.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToValue converts a plain Go value into a Value. It panics if v does not
// have one of the supported types:
//
//	nil             Null
//	bool            Bool
//	int variants    Int
//	float32/64      Float
//	string          String
//	[]any           *Array
//	map[string]any  *Object, members in lexicographic key order
//	Value           unchanged
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []any:
		arr := &Array{Values: make([]Value, len(t))}
		for i, elt := range t {
			arr.Values[i] = ToValue(elt)
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := new(Object)
		for _, key := range keys {
			obj.Set(key, ToValue(t[key]))
		}
		return obj
	case Value:
		return t
	default:
		panic(fmt.Sprintf("unconvertible type %T", v))
	}
}
