package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/tapeopt/ir"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint8:
		return starlark.MakeUint(uint(v))
	case uint64:
		return starlark.MakeUint64(v)

	case float64:
		return starlark.Float(v)

	case ir.Op:
		return starlark.String(v.String())

	case ir.Inst:
		return instValue(v)

	case ir.Program:
		elems := make([]starlark.Value, len(v))
		for i, inst := range v {
			elems[i] = instValue(inst)
		}
		return starlark.NewList(elems)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// instValue renders an instruction as a dict holding only the fields its
// op uses.
func instValue(inst ir.Inst) starlark.Value {
	d := starlark.NewDict(4)
	set := func(key string, value starlark.Value) {
		d.SetKey(starlark.String(key), value)
	}
	set("op", starlark.String(inst.Op.String()))
	switch inst.Op {
	case ir.OpTouch:
		set("high", starlark.MakeInt(inst.High))
		set("low", starlark.MakeInt(inst.Low))
	case ir.OpSet, ir.OpAdd, ir.OpMul:
		set("offset", starlark.MakeInt(inst.Offset))
		set("value", starlark.MakeUint(uint(inst.Value)))
	case ir.OpMove, ir.OpStore, ir.OpInput, ir.OpOutput:
		set("offset", starlark.MakeInt(inst.Offset))
	case ir.OpLoop:
		set("body", toStarlarkValue(inst.Body))
	case ir.OpFixedLoop:
		set("high", starlark.MakeInt(inst.High))
		set("low", starlark.MakeInt(inst.Low))
		set("body", toStarlarkValue(inst.Body))
	case ir.OpScan:
		set("value", starlark.MakeUint(uint(inst.Value)))
		set("step", starlark.MakeInt(inst.Step))
	case ir.OpFill:
		set("offset", starlark.MakeInt(inst.Offset))
		set("value", starlark.MakeUint(uint(inst.Value)))
		set("step", starlark.MakeInt(inst.Step))
	}
	return d
}
