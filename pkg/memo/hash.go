package memo

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a digest of stage inputs.
type Fingerprint uint64

// String formats the fingerprint as 16 hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// Hasher builds a fingerprint. Every write is length or type prefixed so
// adjacent values cannot run into each other.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
	err error
}

// NewHasher returns an empty hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

func (h *Hasher) tag(t byte) {
	_, _ = h.d.Write([]byte{t})
}

func (h *Hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

// String writes a string.
func (h *Hasher) String(s string) *Hasher {
	h.tag('s')
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
	return h
}

// Float writes a float.
func (h *Hasher) Float(f float64) *Hasher {
	h.tag('f')
	h.u64(math.Float64bits(f))
	return h
}

// Int writes an integer.
func (h *Hasher) Int(i int) *Hasher {
	h.tag('i')
	h.u64(uint64(i))
	return h
}

// Bool writes a boolean.
func (h *Hasher) Bool(b bool) *Hasher {
	h.tag('b')
	if b {
		h.u64(1)
	} else {
		h.u64(0)
	}
	return h
}

// Fingerprint writes another fingerprint, to chain stages.
func (h *Hasher) Fingerprint(f Fingerprint) *Hasher {
	h.tag('p')
	h.u64(uint64(f))
	return h
}

// Value writes v by walking it with reflection. Map keys are sorted, so
// the encoding is canonical. Struct fields tagged json:"-" are not part of
// the fingerprint; use [Hasher.Func] for them. NaN and infinities are
// ordinary values here.
func (h *Hasher) Value(v any) *Hasher {
	h.tag('v')
	h.walk(reflect.ValueOf(v))
	return h
}

func (h *Hasher) walk(rv reflect.Value) {
	if !rv.IsValid() {
		h.tag('n')
		return
	}
	if rv.Kind() == reflect.Struct && rv.CanInterface() {
		// Values such as time.Time keep their state in unexported fields.
		if m, ok := rv.Interface().(encoding.TextMarshaler); ok {
			text, err := m.MarshalText()
			if err != nil && h.err == nil {
				h.err = fmt.Errorf("fingerprint: %w", err)
			}
			h.tag('t')
			h.String(string(text))
			return
		}
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			h.tag('n')
			return
		}
		h.walk(rv.Elem())
	case reflect.Bool:
		h.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.tag('i')
		h.u64(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.tag('u')
		h.u64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			f = math.NaN()
		}
		h.Float(f)
	case reflect.String:
		h.String(rv.String())
	case reflect.Slice, reflect.Array:
		h.tag('l')
		h.u64(uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			h.walk(rv.Index(i))
		}
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		h.tag('m')
		h.u64(uint64(len(keys)))
		for _, k := range keys {
			h.walk(k)
			h.walk(rv.MapIndex(k))
		}
	case reflect.Struct:
		t := rv.Type()
		h.tag('S')
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("json") == "-" {
				continue
			}
			h.String(f.Name)
			h.walk(rv.Field(i))
		}
	default:
		if h.err == nil {
			h.err = fmt.Errorf("fingerprint: unsupported value of type %s", rv.Type())
		}
	}
}

// Func writes the code pointer of a function value, so swapping a
// formatter changes the fingerprint. Closures of the same function
// literal hash alike, as do nil functions.
func (h *Hasher) Func(f any) *Hasher {
	h.tag('F')
	rv := reflect.ValueOf(f)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		h.u64(0)
		return h
	}
	h.u64(uint64(rv.Pointer()))
	return h
}

// Sum returns the fingerprint of everything written, or the first
// encoding error.
func (h *Hasher) Sum() (Fingerprint, error) {
	if h.err != nil {
		return 0, h.err
	}
	return Fingerprint(h.d.Sum64()), nil
}

// Hash returns the xxhash of data as 16 hex digits.
func Hash(data []byte) string {
	return Fingerprint(xxhash.Sum64(data)).String()
}
