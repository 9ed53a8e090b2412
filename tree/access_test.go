package tree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emucfg/tree"
)

func caseFixture() *tree.Node {
	o := tree.NewObject()
	o.Insert("nAME", tree.String("third-casing"))
	o.Insert("Name", tree.String("upper"))
	o.Insert("name", tree.String("lower"))

	inner := tree.NewObject()
	inner.Insert("Icon", tree.String("icon.jpg"))
	o.Insert("Display", tree.FromObject(inner))

	return tree.FromObject(o)
}

func TestGetCaseRule(t *testing.T) {
	t.Parallel()

	root := caseFixture()

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"exact upper", []string{"Name"}, "upper"},
		{"exact lower", []string{"name"}, "lower"},
		{"no exact match takes first insensitive", []string{"NAME"}, "third-casing"},
		{"nested insensitive", []string{"display", "icon"}, "icon.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, root.Get(tt.keys...).AsString())
		})
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	root := caseFixture()

	assert.Nil(t, root.Get())
	assert.Nil(t, root.Get("missing"))
	assert.Nil(t, root.Get("name", "deeper"), "scalar step short-circuits")
	assert.Nil(t, (*tree.Node)(nil).Get("a"))
	assert.Nil(t, root.Get("display", "icon_gray"))
	assert.NotNil(t, root.Get("display", "icon"))
}

func TestAsBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *tree.Node
		want bool
	}{
		{"nil", nil, false},
		{"true", tree.Bool(true), true},
		{"false", tree.Bool(false), false},
		{"int one", tree.Int(1), true},
		{"int zero", tree.Int(0), false},
		{"tiny float", tree.Float(1e-11), false},
		{"negative float", tree.Float(-0.5), true},
		{"string TRUE", tree.String("TRUE"), true},
		{"string 1", tree.String("1"), true},
		{"string 2", tree.String("2"), false},
		{"string yes", tree.String("yes"), false},
		{"object", tree.FromObject(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.node.AsBool())
		})
	}
}

func TestAsNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, (*tree.Node)(nil).AsNumber())
	assert.Equal(t, 42.0, tree.Int(42).AsNumber())
	assert.Equal(t, float64(math.MaxUint64), tree.Uint64(math.MaxUint64).AsNumber())
	assert.Equal(t, 2.5, tree.String(" 2.5 ").AsNumber())
	assert.Equal(t, 1.0, tree.Bool(true).AsNumber())
	assert.Equal(t, 0.0, tree.Bool(false).AsNumber())
	assert.Equal(t, 0.0, tree.String("abc").AsNumber())
	assert.Equal(t, 0.0, tree.Float(math.NaN()).AsNumber())

	_, ok := tree.String("nan").TryNumber()
	assert.False(t, ok)

	_, ok = tree.Array().TryNumber()
	assert.False(t, ok)
}

func TestCoercionZeroValues(t *testing.T) {
	t.Parallel()

	var absent *tree.Node

	assert.Empty(t, absent.AsString())
	assert.Empty(t, tree.Int(3).AsString())
	assert.Empty(t, absent.AsArray())
	assert.Equal(t, 0, absent.AsObject().Len())
	assert.Equal(t, 0, tree.String("x").AsObject().Len())
	assert.Empty(t, tree.Int(1).AsArray())
}

func TestElements(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (*tree.Node)(nil).Elements())
	assert.Empty(t, tree.Null().Elements())

	single := tree.String("x")
	require.Len(t, single.Elements(), 1)
	assert.Same(t, single, single.Elements()[0])

	arr := tree.Array(tree.Int(1), tree.Int(2))
	assert.Len(t, arr.Elements(), 2)
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	inner := tree.NewObject()
	inner.Insert("id", tree.Int(1))
	arr := tree.Array(tree.String("a"), tree.String("b"))

	o := tree.NewObject()
	o.Insert("list", arr)
	o.Insert("group", tree.FromObject(inner))
	root := tree.FromObject(o)

	items := root.Get("list").AsArray()
	items[0] = tree.String("changed")
	_ = append(items[:1], tree.String("grown"))

	elems := root.Get("list").Elements()
	elems[1] = tree.Null()

	group := root.Get("group").AsObject()
	group.Set("id", tree.Int(99))
	group.Insert("extra", tree.Bool(true))

	top := root.AsObject()
	top.Set("list", tree.Null())

	want := tree.NewObject()
	want.Insert("list", tree.Array(tree.String("a"), tree.String("b")))
	wantGroup := tree.NewObject()
	wantGroup.Insert("id", tree.Int(1))
	want.Insert("group", tree.FromObject(wantGroup))

	assert.True(t, root.Equal(tree.FromObject(want)))
	assert.Equal(t, float64(1), root.Get("group", "id").AsNumber())
	assert.Nil(t, root.Get("group", "extra"))
}
