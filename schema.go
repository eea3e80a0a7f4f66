package campushub

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/kailas-cloud/campushub/internal/domain"
	domlisting "github.com/kailas-cloud/campushub/internal/domain/listing"
)

const tagKey = "campushub"

// Field roles in a campushub struct tag: `campushub:"name,role"`.
const (
	roleID     = "id"
	roleSearch = "search"
	roleTags   = "tags"
)

// schemaMeta holds parsed struct tag metadata.
type schemaMeta struct {
	typ reflect.Type

	idIdx     int
	searchIdx []int // in declaration order
	tagIdx    []int
	names     map[int]string
}

// parseSchema reflects on T and extracts campushub struct tag metadata.
func parseSchema[T any]() (*schemaMeta, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("campushub: interface type parameter is not a struct")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("campushub: type %s is not a struct", t)
	}

	meta := &schemaMeta{typ: t, idIdx: -1, names: make(map[int]string)}

	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		if err := applyTag(meta, i, f, tag); err != nil {
			return nil, err
		}
	}

	if meta.idIdx == -1 {
		return nil, fmt.Errorf("campushub: no field with `campushub:\"...,id\"` tag in %s", t)
	}
	return meta, nil
}

// applyTag processes a single struct field's campushub tag.
func applyTag(meta *schemaMeta, idx int, f reflect.StructField, tag string) error {
	name, role, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(f.Name)
	}
	if !f.IsExported() {
		return fmt.Errorf("campushub: tagged field %s is unexported", f.Name)
	}

	switch role {
	case roleID:
		if meta.idIdx != -1 {
			return fmt.Errorf("campushub: duplicate id tag on field %s", f.Name)
		}
		if !isIDKind(f.Type) {
			return fmt.Errorf("campushub: id field %s must be a string or integer, got %s", f.Name, f.Type)
		}
		meta.idIdx = idx
	case roleSearch:
		if !isTextKind(f.Type) {
			return fmt.Errorf("campushub: search field %s must be string or []string, got %s", f.Name, f.Type)
		}
		meta.searchIdx = append(meta.searchIdx, idx)
	case roleTags:
		if !isTextKind(f.Type) {
			return fmt.Errorf("campushub: tags field %s must be string or []string, got %s", f.Name, f.Type)
		}
		meta.tagIdx = append(meta.tagIdx, idx)
	case "":
		// Named but not used for filtering.
	default:
		return fmt.Errorf("campushub: unknown role %q on field %s", role, f.Name)
	}
	meta.names[idx] = name
	return nil
}

func isIDKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isTextKind(t reflect.Type) bool {
	return t.Kind() == reflect.String ||
		(t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String)
}

// extractorFor builds a filter extractor reading T through the parsed schema.
func extractorFor[T any](m *schemaMeta) domlisting.Extractor[T] {
	return domlisting.Extractor[T]{
		ID: func(item T) string {
			v, ok := structValue(item)
			if !ok {
				return ""
			}
			return idString(v.Field(m.idIdx))
		},
		Fields: func(item T) []string {
			v, ok := structValue(item)
			if !ok {
				return nil
			}
			return collectText(v, m.searchIdx)
		},
		Tags: func(item T) []string {
			v, ok := structValue(item)
			if !ok {
				return nil
			}
			return domain.UniqueTags(collectText(v, m.tagIdx))
		},
	}
}

// clonerFor returns a copy function for T that detaches everything the
// filter reads: the pointee when T is a pointer, and the []string fields
// tagged search or tags. Nil pointers are returned as is.
func clonerFor[T any](m *schemaMeta) func(T) T {
	var textSlices []int
	for _, i := range slices.Concat(m.searchIdx, m.tagIdx) {
		if m.typ.Field(i).Type.Kind() == reflect.Slice {
			textSlices = append(textSlices, i)
		}
	}

	return func(item T) T {
		v := reflect.ValueOf(&item).Elem()
		s := v
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return item
			}
			cp := reflect.New(m.typ)
			cp.Elem().Set(v.Elem())
			v.Set(cp)
			s = cp.Elem()
		}
		for _, i := range textSlices {
			f := s.Field(i)
			if f.IsNil() {
				continue
			}
			f.Set(reflect.AppendSlice(reflect.MakeSlice(f.Type(), 0, f.Len()), f))
		}
		return item
	}
}

// structValue dereferences item to its struct value. Nil pointers report false.
func structValue(item any) (reflect.Value, bool) {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.Kind() == reflect.Struct
}

func idString(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func collectText(v reflect.Value, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		f := v.Field(i)
		if f.Kind() == reflect.String {
			out = append(out, f.String())
			continue
		}
		for j := range f.Len() {
			out = append(out, f.Index(j).String())
		}
	}
	return out
}
