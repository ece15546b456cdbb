// Package hashing feeds Go values into a 64-bit digest. Generated HashN
// functions call Write once per slot, in slot order.
package hashing

import (
	"encoding/binary"
	"hash"
	"math"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Hashable is implemented by values that know how to feed themselves into a
// digest. Write prefers it over the built-in encodings.
type Hashable interface {
	HashTo(h hash.Hash64)
}

const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagBytes
	tagHashable
	tagOther
	tagStruct
	tagArray
	tagSlice
	tagMap
	tagPointer
	tagRef
	tagCycle
)

// New returns the default digest.
func New() hash.Hash64 {
	return xxhash.New()
}

// Write feeds v into h. Every encoding starts with a kind tag, and variable
// length encodings carry their length, so adjacent values never run together.
func Write[T any](h hash.Hash64, v T) {
	writeAny(h, any(v))
}

// WriteValues feeds every element of vs into h in order.
func WriteValues(h hash.Hash64, vs []any) {
	writeUint(h, tagOther, uint64(len(vs)))

	for _, v := range vs {
		writeAny(h, v)
	}
}

// Sum hashes v alone with the default digest.
func Sum[T any](v T) uint64 {
	h := New()
	Write(h, v)

	return h.Sum64()
}

func writeAny(h hash.Hash64, v any) {
	switch x := v.(type) {
	case nil:
		_, _ = h.Write([]byte{tagNil})
	case Hashable:
		_, _ = h.Write([]byte{tagHashable})
		x.HashTo(h)
	case bool:
		b := byte(0)
		if x {
			b = 1
		}

		_, _ = h.Write([]byte{tagBool, b})
	case int:
		writeUint(h, tagInt, uint64(x))
	case int8:
		writeUint(h, tagInt, uint64(x))
	case int16:
		writeUint(h, tagInt, uint64(x))
	case int32:
		writeUint(h, tagInt, uint64(x))
	case int64:
		writeUint(h, tagInt, uint64(x))
	case uint:
		writeUint(h, tagUint, uint64(x))
	case uint8:
		writeUint(h, tagUint, uint64(x))
	case uint16:
		writeUint(h, tagUint, uint64(x))
	case uint32:
		writeUint(h, tagUint, uint64(x))
	case uint64:
		writeUint(h, tagUint, x)
	case uintptr:
		writeUint(h, tagUint, uint64(x))
	case float32:
		writeFloat(h, tagFloat, float64(x))
	case float64:
		writeFloat(h, tagFloat, x)
	case complex64:
		writeFloat(h, tagComplex, float64(real(x)))
		writeFloat(h, tagComplex, float64(imag(x)))
	case complex128:
		writeFloat(h, tagComplex, real(x))
		writeFloat(h, tagComplex, imag(x))
	case string:
		writeString(h, x)
	case []byte:
		writeUint(h, tagBytes, uint64(len(x)))
		_, _ = h.Write(x)
	default:
		w := walker{h: h}
		w.value(reflect.ValueOf(x))
	}
}

// walker feeds composite values into h field by field. Pointers already on
// the current path are written as a back reference, so cyclic values end.
type walker struct {
	h    hash.Hash64
	path []uintptr
}

func (w *walker) value(v reflect.Value) {
	if !v.IsValid() {
		_, _ = w.h.Write([]byte{tagNil})

		return
	}

	if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface && v.CanInterface() {
		if x, ok := v.Interface().(Hashable); ok {
			_, _ = w.h.Write([]byte{tagHashable})
			x.HashTo(w.h)

			return
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		b := byte(0)
		if v.Bool() {
			b = 1
		}

		_, _ = w.h.Write([]byte{tagBool, b})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(w.h, tagInt, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(w.h, tagUint, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(w.h, tagFloat, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(w.h, tagComplex, real(c))
		writeFloat(w.h, tagComplex, imag(c))
	case reflect.String:
		writeString(w.h, v.String())
	case reflect.Struct:
		writeUint(w.h, tagStruct, uint64(v.NumField()))

		for i := range v.NumField() {
			w.value(v.Field(i))
		}
	case reflect.Array:
		writeUint(w.h, tagArray, uint64(v.Len()))

		for i := range v.Len() {
			w.value(v.Index(i))
		}
	case reflect.Slice:
		writeUint(w.h, tagSlice, uint64(v.Len()))

		for i := range v.Len() {
			w.value(v.Index(i))
		}
	case reflect.Map:
		w.mapValue(v)
	case reflect.Interface:
		if v.IsNil() {
			_, _ = w.h.Write([]byte{tagNil})

			return
		}

		w.value(v.Elem())
	case reflect.Pointer:
		w.pointer(v)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		writeUint(w.h, tagRef, uint64(v.Pointer()))
	default:
		s := v.Type().String()
		writeUint(w.h, tagOther, uint64(len(s)))
		_, _ = w.h.Write([]byte(s))
	}
}

func (w *walker) pointer(v reflect.Value) {
	if v.IsNil() {
		_, _ = w.h.Write([]byte{tagNil})

		return
	}

	if v.CanInterface() {
		if x, ok := v.Interface().(Hashable); ok {
			_, _ = w.h.Write([]byte{tagHashable})
			x.HashTo(w.h)

			return
		}
	}

	p := v.Pointer()
	if i := slices.Index(w.path, p); i >= 0 {
		writeUint(w.h, tagCycle, uint64(len(w.path)-i))

		return
	}

	w.path = append(w.path, p)
	_, _ = w.h.Write([]byte{tagPointer})
	w.value(v.Elem())
	w.path = w.path[:len(w.path)-1]
}

// mapValue combines per-entry digests with a sum, so iteration order does
// not matter.
func (w *walker) mapValue(v reflect.Value) {
	var sum uint64

	for it := v.MapRange(); it.Next(); {
		e := walker{h: New(), path: w.path}
		e.value(it.Key())
		e.value(it.Value())
		sum += e.h.Sum64()
	}

	writeUint(w.h, tagMap, uint64(v.Len()))
	writeUint(w.h, tagMap, sum)
}

// writeFloat feeds f with negative zero folded into positive zero, since the
// two compare equal.
func writeFloat(h hash.Hash64, tag byte, f float64) {
	if f == 0 {
		f = 0
	}

	writeUint(h, tag, math.Float64bits(f))
}

func writeString(h hash.Hash64, s string) {
	writeUint(h, tagString, uint64(len(s)))
	_, _ = h.Write([]byte(s))
}

func writeUint(h hash.Hash64, tag byte, v uint64) {
	var buf [9]byte

	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], v)
	_, _ = h.Write(buf[:])
}
