// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import (
	"errors"
	"math/big"
	"regexp"
	"testing"

	"github.com/minodisk/zoq/bqschema"
	z "github.com/minodisk/zoq/zschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarShape() *z.Object {
	return z.ObjectOf(
		z.Prop("bool", z.Bool()),
		z.Prop("int64", z.Num().Int()),
		z.Prop("numeric", z.Num()),
		z.Prop("bigint", z.Big()),
		z.Prop("string", z.Str()),
		z.Prop("timestamp", z.DateTime()),
		z.Prop("date", z.Str().Regex(RegExpDate)),
		z.Prop("time", z.Str().Regex(RegExpTime)),
	)
}

func scalarFields() []bqschema.Field {
	return []bqschema.Field{
		{Name: "bool", Type: bqschema.Bool},
		{Name: "int64", Type: bqschema.Int64},
		{Name: "numeric", Type: bqschema.Numeric},
		{Name: "bigint", Type: bqschema.BigNumeric},
		{Name: "string", Type: bqschema.String},
		{Name: "timestamp", Type: bqschema.Timestamp},
		{Name: "date", Type: bqschema.Date},
		{Name: "time", Type: bqschema.Time},
	}
}

func TestConvert_Nullable(t *testing.T) {
	shape := scalarShape()
	props := make([]z.Property, len(shape.Shape))
	for i, p := range shape.Shape {
		props[i] = z.Prop(p.Name, z.NullableOf(p.Node))
	}

	fields, err := Convert(z.ObjectOf(props...))
	require.NoError(t, err)

	want := scalarFields()
	for i := range want {
		want[i].Mode = bqschema.Nullable
	}
	assert.Equal(t, want, []bqschema.Field(fields))
}

func TestConvert_Struct(t *testing.T) {
	obj := z.ObjectOf(z.Prop("struct", z.NullableOf(scalarShape())))

	fields, err := Convert(obj)
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{{
		Name:   "struct",
		Type:   bqschema.Struct,
		Mode:   bqschema.Nullable,
		Fields: scalarFields(),
	}}, []bqschema.Field(fields))
}

func TestConvert_Array(t *testing.T) {
	obj := z.ObjectOf(
		z.Prop("repeated", z.NullableOf(z.ArrayOf(z.NullableOf(z.Bool())))),
	)

	fields, err := Convert(obj)
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{
		{Name: "repeated", Type: bqschema.Bool, Mode: bqschema.Repeated},
	}, []bqschema.Field(fields))
}

func TestConvert_ArrayOfObject(t *testing.T) {
	obj := z.ObjectOf(
		z.Prop("repeated", z.NullableOf(z.ArrayOf(scalarShape()))),
	)

	fields, err := Convert(obj)
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{{
		Name:   "repeated",
		Type:   bqschema.Struct,
		Mode:   bqschema.Repeated,
		Fields: scalarFields(),
	}}, []bqschema.Field(fields))
}

func TestConvert_RoundTripShape(t *testing.T) {
	obj := z.ObjectOf(
		z.Prop("a", z.Bool()),
		z.Prop("b", z.ObjectOf(z.Prop("c", z.Str()))),
	)

	fields, err := Convert(obj)
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{
		{Name: "a", Type: bqschema.Bool},
		{Name: "b", Type: bqschema.Struct, Fields: []bqschema.Field{
			{Name: "c", Type: bqschema.String},
		}},
	}, []bqschema.Field(fields))
}

func TestConvert_Leaves(t *testing.T) {
	type color string

	tests := []struct {
		name string
		node z.Node
		want bqschema.FieldType
	}{
		{name: "nan", node: z.NotANumber(), want: bqschema.Numeric},
		{name: "enum", node: z.EnumOf("a", "b"), want: bqschema.String},
		{name: "native enum", node: z.NativeEnumOf(map[string]any{"A": 1}), want: bqschema.String},
		{name: "int with other checks", node: z.Num().Min(0).Int().Max(10), want: bqschema.Int64},
		{name: "number with bounds", node: z.Num().Gt(0).Lt(1).MultipleOf(0.5), want: bqschema.Numeric},
		{name: "string with length", node: z.Str().Min(1).Max(5).Email(), want: bqschema.String},
		{name: "date wins over time", node: z.Str().Regex(RegExpTime).Regex(RegExpDate), want: bqschema.Date},
		{name: "literal bool", node: z.LiteralOf(true), want: bqschema.Bool},
		{name: "literal int", node: z.LiteralOf(42), want: bqschema.Numeric},
		{name: "literal float", node: z.LiteralOf(1.5), want: bqschema.Numeric},
		{name: "literal uint8", node: z.LiteralOf(uint8(1)), want: bqschema.Numeric},
		{name: "literal big int", node: z.LiteralOf(big.NewInt(7)), want: bqschema.BigNumeric},
		{name: "literal string", node: z.LiteralOf("x"), want: bqschema.String},
		{name: "literal named string", node: z.LiteralOf(color("red")), want: bqschema.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Convert(z.ObjectOf(z.Prop("f", tt.node)))
			require.NoError(t, err)
			require.Len(t, fields, 1)
			assert.Equal(t, bqschema.Field{Name: "f", Type: tt.want}, fields[0])
		})
	}
}

func TestConvert_LiteralWithoutColumn(t *testing.T) {
	for _, v := range []any{nil, struct{}{}, []int{1}} {
		fields, err := Convert(z.ObjectOf(z.Prop("f", z.LiteralOf(v))))
		require.NoError(t, err)
		assert.Empty(t, fields)
	}
}

func TestConvert_PatternIdentity(t *testing.T) {
	sameDate := regexp.MustCompile(RegExpDate.String())
	sameTime := regexp.MustCompile(RegExpTime.String())
	require.Equal(t, RegExpDate.String(), sameDate.String())

	fields, err := Convert(z.ObjectOf(
		z.Prop("date", z.Str().Regex(sameDate)),
		z.Prop("time", z.Str().Regex(sameTime)),
	))
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{
		{Name: "date", Type: bqschema.String},
		{Name: "time", Type: bqschema.String},
	}, []bqschema.Field(fields))
}

func TestReservedPatterns(t *testing.T) {
	for _, s := range []string{"0001-01-01", "9999-12-31"} {
		assert.True(t, RegExpDate.MatchString(s), s)
	}
	for _, s := range []string{"00:00:00", "23:59:59.999999", "12:30:00.5"} {
		assert.True(t, RegExpTime.MatchString(s), s)
	}
	assert.False(t, RegExpDate.MatchString("2024-1-01"))
	assert.False(t, RegExpTime.MatchString("23:59:59.1234567"))
}

func TestConvert_Ignorable(t *testing.T) {
	ignorable := []z.Node{
		nil,
		z.UndefinedValue(),
		z.NullValue(),
		z.AnyValue(),
		z.UnknownValue(),
		z.NeverValue(),
		z.VoidValue(),
		z.Func(),
		z.PromiseOf(z.Str()),
		z.LazyOf(func() z.Node { panic("lazy nodes must not be evaluated") }),
	}

	for _, node := range ignorable {
		t.Run(z.TypeName(node), func(t *testing.T) {
			fields, err := Convert(z.ObjectOf(
				z.Prop("before", z.Bool()),
				z.Prop("dropped", node),
				z.Prop("after", z.Str()),
			))
			require.NoError(t, err)
			assert.Equal(t, []bqschema.Field{
				{Name: "before", Type: bqschema.Bool},
				{Name: "after", Type: bqschema.String},
			}, []bqschema.Field(fields))
		})
	}
}

func TestConvert_TypedNilIsUndefined(t *testing.T) {
	tests := []struct {
		name string
		node z.Node
	}{
		{name: "object", node: (*z.Object)(nil)},
		{name: "optional", node: (*z.Optional)(nil)},
		{name: "string", node: (*z.String)(nil)},
		{name: "array", node: (*z.Array)(nil)},
		{name: "optional of nil object", node: z.OptionalOf((*z.Object)(nil))},
		{name: "array of nil string", node: z.ArrayOf((*z.String)(nil))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var omitted []z.Kind
			fields, err := Convert(z.ObjectOf(
				z.Prop("x", tt.node),
				z.Prop("y", z.Bool()),
			), WithOmitHook(func(_ string, kind z.Kind) {
				omitted = append(omitted, kind)
			}))
			require.NoError(t, err)
			assert.Equal(t, []bqschema.Field{{Name: "y", Type: bqschema.Bool}}, []bqschema.Field(fields))
			assert.Equal(t, []z.Kind{z.KindUndefined}, omitted)
		})
	}
}

func TestConvert_RepeatedOfIgnorableIsDropped(t *testing.T) {
	fields, err := Convert(z.ObjectOf(
		z.Prop("funcs", z.ArrayOf(z.Func())),
		z.Prop("anys", z.SetOf(z.AnyValue())),
		z.Prop("nested", z.ArrayOf(z.OptionalOf(z.NullValue()))),
	))
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestConvert_Set(t *testing.T) {
	fields, err := Convert(z.ObjectOf(z.Prop("ids", z.SetOf(z.Num().Int()))))
	require.NoError(t, err)
	assert.Equal(t, []bqschema.Field{
		{Name: "ids", Type: bqschema.Int64, Mode: bqschema.Repeated},
	}, []bqschema.Field(fields))
}

func TestConvert_RepeatedOverwritesChildMode(t *testing.T) {
	fields, err := Convert(z.ObjectOf(
		z.Prop("matrix", z.ArrayOf(z.ArrayOf(z.Num()))),
		z.Prop("entries", z.ArrayOf(z.RecordOf(z.Str(), z.Num()))),
	))
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, bqschema.Field{Name: "matrix", Type: bqschema.Numeric, Mode: bqschema.Repeated}, fields[0])
	assert.Equal(t, bqschema.Repeated, fields[1].Mode)
	assert.Equal(t, bqschema.Struct, fields[1].Type)
}

func TestConvert_Tuple(t *testing.T) {
	fields, err := Convert(z.ObjectOf(z.Prop("point", z.TupleOf(
		z.Num(),
		z.Func(),
		z.NullableOf(z.Str()),
	))))
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{{
		Name: "point",
		Type: bqschema.Struct,
		Fields: []bqschema.Field{
			{Name: "0", Type: bqschema.Numeric},
			{Name: "2", Type: bqschema.String, Mode: bqschema.Nullable},
		},
	}}, []bqschema.Field(fields))
}

func TestConvert_EmptyTupleIsEmptyStruct(t *testing.T) {
	fields, err := Convert(z.ObjectOf(z.Prop("t", z.TupleOf(z.Func()))))
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, bqschema.Struct, fields[0].Type)
	assert.NotNil(t, fields[0].Fields)
	assert.Empty(t, fields[0].Fields)
}

func TestConvert_KeyedCollections(t *testing.T) {
	want := bqschema.Field{
		Name: "scores",
		Type: bqschema.Struct,
		Mode: bqschema.Repeated,
		Fields: []bqschema.Field{
			{Name: "key", Type: bqschema.String},
			{Name: "value", Type: bqschema.Numeric},
		},
	}

	for _, node := range []z.Node{z.RecordOf(z.Str(), z.Num()), z.MapOf(z.Str(), z.Num())} {
		t.Run(z.TypeName(node), func(t *testing.T) {
			fields, err := Convert(z.ObjectOf(z.Prop("scores", node)))
			require.NoError(t, err)
			assert.Equal(t, []bqschema.Field{want}, []bqschema.Field(fields))
		})
	}
}

func TestConvert_KeyedCollectionPartial(t *testing.T) {
	tests := []struct {
		name string
		node z.Node
		want []string
	}{
		{name: "no value", node: z.MapOf(z.Str(), z.AnyValue()), want: []string{"key"}},
		{name: "no key", node: z.RecordOf(z.UnknownValue(), z.Bool()), want: []string{"value"}},
		{name: "neither", node: z.MapOf(z.AnyValue(), z.Func()), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Convert(z.ObjectOf(z.Prop("m", tt.node)))
			require.NoError(t, err)
			require.Len(t, fields, 1)

			names := []string{}
			for _, f := range fields[0].Fields {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, bqschema.Repeated, fields[0].Mode)
		})
	}
}

func TestConvert_WrappersPreserveName(t *testing.T) {
	inner := []z.Node{z.Bool(), z.ObjectOf(z.Prop("x", z.Str())), z.ArrayOf(z.Num()), z.Func()}
	wraps := []func(z.Node) z.Node{
		func(n z.Node) z.Node { return z.OptionalOf(n) },
		func(n z.Node) z.Node { return z.NullableOf(n) },
		func(n z.Node) z.Node { return z.WithDefault(n, nil) },
		func(n z.Node) z.Node { return z.Refine(n, func(any) bool { return true }) },
		func(n z.Node) z.Node { return z.Transform(n, func(v any) (any, error) { return v, nil }) },
		func(n z.Node) z.Node { return z.Preprocess(n, func(v any) any { return v }) },
	}

	for _, base := range inner {
		direct, err := Convert(z.ObjectOf(z.Prop("field", base)))
		require.NoError(t, err)

		node := base
		for _, wrap := range wraps {
			node = wrap(node)
			wrapped, err := Convert(z.ObjectOf(z.Prop("field", node)))
			require.NoError(t, err)
			require.Equal(t, len(direct), len(wrapped))
			for i := range direct {
				assert.Equal(t, direct[i].Name, wrapped[i].Name)
				assert.Equal(t, direct[i].Type, wrapped[i].Type)
				assert.Equal(t, direct[i].Fields, wrapped[i].Fields)
			}
		}
	}
}

func TestConvert_DefaultAndEffectsAddNoMode(t *testing.T) {
	fields, err := Convert(z.ObjectOf(
		z.Prop("d", z.WithDefault(z.Num().Int(), 0)),
		z.Prop("e", z.Refine(z.Str(), func(any) bool { return true })),
		z.Prop("od", z.OptionalOf(z.WithDefault(z.Bool(), true))),
	))
	require.NoError(t, err)

	assert.Equal(t, []bqschema.Field{
		{Name: "d", Type: bqschema.Int64},
		{Name: "e", Type: bqschema.String},
		{Name: "od", Type: bqschema.Bool, Mode: bqschema.Nullable},
	}, []bqschema.Field(fields))
}

func TestConvert_NullableKeepsRepeated(t *testing.T) {
	fields, err := Convert(z.ObjectOf(
		z.Prop("tags", z.OptionalOf(z.ArrayOf(z.Str()))),
		z.Prop("kv", z.NullableOf(z.MapOf(z.Str(), z.Str()))),
	))
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, bqschema.Repeated, fields[0].Mode)
	assert.Equal(t, bqschema.Repeated, fields[1].Mode)
}

func TestConvert_Unsupported(t *testing.T) {
	tests := []struct {
		name     string
		node     z.Node
		wantName string
		wantPath string
	}{
		{name: "union", node: z.UnionOf(z.Str(), z.Num()), wantName: "union", wantPath: "bad"},
		{
			name:     "discriminated union",
			node:     z.Discriminated("type", z.ObjectOf(z.Prop("type", z.LiteralOf("a")))),
			wantName: "discriminatedUnion",
			wantPath: "bad",
		},
		{name: "intersection", node: z.IntersectionOf(z.Str(), z.Str()), wantName: "intersection", wantPath: "bad"},
		{name: "custom", node: z.Custom("symbol"), wantName: "symbol", wantPath: "bad"},
		{name: "wrapped union", node: z.OptionalOf(z.UnionOf(z.Str())), wantName: "union", wantPath: "bad"},
		{name: "union in array", node: z.ArrayOf(z.UnionOf(z.Str())), wantName: "union", wantPath: "bad"},
		{
			name:     "union deep in struct",
			node:     z.ObjectOf(z.Prop("inner", z.TupleOf(z.Str(), z.UnionOf(z.Str())))),
			wantName: "union",
			wantPath: "bad.inner.1",
		},
		{name: "union as map value", node: z.MapOf(z.Str(), z.UnionOf(z.Str())), wantName: "union", wantPath: "bad.value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Convert(z.ObjectOf(
				z.Prop("ok", z.Bool()),
				z.Prop("bad", tt.node),
			))
			require.Error(t, err)
			assert.Nil(t, fields)

			var kindErr *UnsupportedKindError
			require.ErrorAs(t, err, &kindErr)
			assert.Equal(t, tt.wantName, kindErr.Name)
			assert.Equal(t, tt.wantPath, kindErr.Path)
			assert.Contains(t, err.Error(), `"`+tt.wantName+`"`)
			assert.True(t, errors.Is(err, ErrUnsupportedKind))
		})
	}
}

type foreignNode struct{ kind z.Kind }

func (f foreignNode) Kind() z.Kind { return f.kind }

func TestConvert_ForeignNodeIsRejected(t *testing.T) {
	for _, k := range []z.Kind{z.KindString, z.KindArray, z.KindOptional, z.Kind(500)} {
		t.Run(k.String(), func(t *testing.T) {
			_, err := Convert(z.ObjectOf(z.Prop("x", foreignNode{kind: k})))
			assert.ErrorIs(t, err, ErrUnsupportedKind)
		})
	}
}

func TestConvert_NilObject(t *testing.T) {
	_, err := Convert(nil)
	assert.ErrorIs(t, err, ErrNilSchema)
}

func TestConvert_EmptyObject(t *testing.T) {
	fields, err := Convert(z.ObjectOf())
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestConvert_Deterministic(t *testing.T) {
	obj := scalarShape()
	first, err := Convert(obj)
	require.NoError(t, err)
	second, err := Convert(obj)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvert_SharedNodeIsNotACycle(t *testing.T) {
	addr := z.ObjectOf(z.Prop("city", z.Str()))
	fields, err := Convert(z.ObjectOf(
		z.Prop("home", addr),
		z.Prop("work", z.OptionalOf(addr)),
	))
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, fields[0].Fields, fields[1].Fields)
}

func TestConvert_Cycle(t *testing.T) {
	node := &z.Object{}
	node.Shape = []z.Property{z.Prop("name", z.Str()), z.Prop("parent", z.OptionalOf(node))}

	_, err := Convert(node)
	require.ErrorIs(t, err, ErrCycle)
	assert.Contains(t, err.Error(), `"parent"`)

	arr := &z.Array{}
	arr.Element = arr
	_, err = Convert(z.ObjectOf(z.Prop("a", arr)))
	assert.ErrorIs(t, err, ErrCycle)
}

func TestConvert_MaxDepth(t *testing.T) {
	obj := z.ObjectOf(z.Prop("a", z.ObjectOf(z.Prop("b", z.ObjectOf(z.Prop("c", z.Bool()))))))

	_, err := Convert(obj, WithMaxDepth(3))
	require.NoError(t, err)

	_, err = Convert(obj, WithMaxDepth(2))
	require.ErrorIs(t, err, ErrMaxDepth)
	assert.Contains(t, err.Error(), `"a.b.c"`)

	_, err = Convert(obj, WithMaxDepth(0))
	assert.NoError(t, err)
}

func TestConvert_MaxDepthCountsColumns(t *testing.T) {
	obj := z.ObjectOf(z.Prop("a", z.OptionalOf(z.NullableOf(
		z.ArrayOf(z.ObjectOf(z.Prop("b", z.OptionalOf(z.Bool())))),
	))))

	_, err := Convert(obj, WithMaxDepth(2))
	require.NoError(t, err)

	_, err = Convert(obj, WithMaxDepth(1))
	require.ErrorIs(t, err, ErrMaxDepth)
	assert.Contains(t, err.Error(), `"a.b"`)
}

func TestConvert_OmitHook(t *testing.T) {
	type omitted struct {
		path string
		kind z.Kind
	}
	var got []omitted

	_, err := Convert(z.ObjectOf(
		z.Prop("fn", z.Func()),
		z.Prop("s", z.ObjectOf(z.Prop("lit", z.LiteralOf(nil)))),
		z.Prop("arr", z.ArrayOf(z.NullValue())),
		z.Prop("kept", z.Str()),
	), WithOmitHook(func(path string, kind z.Kind) {
		got = append(got, omitted{path, kind})
	}))
	require.NoError(t, err)

	assert.Equal(t, []omitted{
		{"fn", z.KindFunction},
		{"s.lit", z.KindLiteral},
		{"arr", z.KindNull},
	}, got)
}
