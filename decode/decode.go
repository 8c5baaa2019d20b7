package decode

import (
	"errors"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"golang.org/x/image/colornames"

	"github.com/tsawler/inkscript/tools"
)

var (
	// ErrNotSequence reports a container that is not an ordered table.
	ErrNotSequence = errors.New("decode: not a sequence")
	// ErrBadElement reports an element or field of the wrong type.
	ErrBadElement = errors.New("decode: bad element")
)

// NumericSequence converts an ordered Lua table into a float64 slice,
// preserving the table's natural 1..N order. The container is not
// mutated; decoding the same table twice yields identical results.
func NumericSequence(lv lua.LValue) ([]float64, error) {
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s, want table", ErrNotSequence, lv.Type())
	}

	n := tbl.Len()
	if n == 0 {
		if k, _ := tbl.Next(lua.LNil); k != lua.LNil {
			return nil, fmt.Errorf("%w: table has keys but no ordered elements", ErrNotSequence)
		}
		return nil, nil
	}

	out := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		v := tbl.RawGetInt(i)
		num, ok := v.(lua.LNumber)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, want number", ErrBadElement, i, v.Type())
		}
		out = append(out, float64(num))
	}
	return out, nil
}

// StringSequence converts an ordered Lua table into a string slice; it
// is used for pattern lists such as file-filter globs. Same shape
// contract as [NumericSequence].
func StringSequence(lv lua.LValue) ([]string, error) {
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s, want table", ErrNotSequence, lv.Type())
	}

	n := tbl.Len()
	if n == 0 {
		if k, _ := tbl.Next(lua.LNil); k != lua.LNil {
			return nil, fmt.Errorf("%w: table has keys but no ordered elements", ErrNotSequence)
		}
		return nil, nil
	}

	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		v := tbl.RawGetInt(i)
		s, ok := v.(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, want string", ErrBadElement, i, v.Type())
		}
		out = append(out, string(s))
	}
	return out, nil
}

// IndexedStrings converts a Lua table of integer-keyed strings (such as
// a message-box button table) into a map.
func IndexedStrings(lv lua.LValue) (map[int]string, error) {
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s, want table", ErrNotSequence, lv.Type())
	}

	out := make(map[int]string)
	key := lua.LValue(lua.LNil)
	for {
		k, v := tbl.Next(key)
		if k == lua.LNil {
			break
		}
		idx, ok := k.(lua.LNumber)
		if !ok {
			return nil, fmt.Errorf("%w: key %s is not an integer index", ErrBadElement, k.Type())
		}
		s, ok := v.(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: value at index %d is %s, want string", ErrBadElement, int(idx), v.Type())
		}
		out[int(idx)] = string(s)
		key = k
	}
	return out, nil
}

// StyleOverride reads the optional stroke attribute keys from a request
// table. Absent keys stay absent in the returned override; provided keys
// of the wrong type are an error. Keys other than tool, width, color,
// fill and lineStyle are ignored.
func StyleOverride(tbl *lua.LTable) (tools.Override, error) {
	var ov tools.Override

	switch v := tbl.RawGetString("tool").(type) {
	case *lua.LNilType:
	case lua.LString:
		ov.Tool = string(v)
	default:
		return tools.Override{}, fmt.Errorf("%w: tool is %s, want string", ErrBadElement, v.Type())
	}

	switch v := tbl.RawGetString("width").(type) {
	case *lua.LNilType:
	case lua.LNumber:
		ov.HasWidth = true
		ov.Width = float64(v)
	default:
		return tools.Override{}, fmt.Errorf("%w: width is %s, want number", ErrBadElement, v.Type())
	}

	switch v := tbl.RawGetString("color").(type) {
	case *lua.LNilType:
	case lua.LNumber:
		ov.HasColor = true
		ov.Color = uint32(int64(v))
	case lua.LString:
		c, ok := colornames.Map[strings.ToLower(string(v))]
		if !ok {
			return tools.Override{}, fmt.Errorf("%w: unknown color name %q", ErrBadElement, string(v))
		}
		ov.HasColor = true
		ov.Color = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	default:
		return tools.Override{}, fmt.Errorf("%w: color is %s, want integer or color name", ErrBadElement, v.Type())
	}

	switch v := tbl.RawGetString("fill").(type) {
	case *lua.LNilType:
	case lua.LNumber:
		ov.HasFill = true
		ov.Fill = int(v)
	default:
		return tools.Override{}, fmt.Errorf("%w: fill is %s, want integer", ErrBadElement, v.Type())
	}

	switch v := tbl.RawGetString("lineStyle").(type) {
	case *lua.LNilType:
	case lua.LString:
		ov.HasLineStyle = true
		ov.LineStyle = string(v)
	default:
		return tools.Override{}, fmt.Errorf("%w: lineStyle is %s, want string", ErrBadElement, v.Type())
	}

	return ov, nil
}
