package geomorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveSelectsFaceBeforeStepping(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		start Key
		first Key
		again Key
	}{
		{
			name:  "left",
			in:    InputLeft,
			start: Key{RoleRight, 2, 3, 4},
			first: Key{RoleLeft, 2, 3, 4},
			again: Key{RoleLeft, 2, 4, 4},
		},
		{
			name:  "up",
			in:    InputUp,
			start: Key{RoleLeft, 2, 3, 4},
			first: Key{RoleTop, 2, 3, 4},
			again: Key{RoleTop, 2, 3, 5},
		},
		{
			name:  "right",
			in:    InputRight,
			start: Key{RoleTop, 2, 3, 4},
			first: Key{RoleRight, 2, 3, 4},
			again: Key{RoleRight, 3, 3, 4},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first := Move(c.start, c.in)
			assert.Equal(t, c.first, first)
			assert.Equal(t, c.again, Move(first, c.in))
		})
	}
}

func TestMoveDownStepsBackAlongSelectedFace(t *testing.T) {
	assert.Equal(t, Key{RoleLeft, 0, -1, 0}, Move(Key{RoleLeft, 0, 0, 0}, InputDown))
	assert.Equal(t, Key{RoleTop, 0, 0, -1}, Move(Key{RoleTop, 0, 0, 0}, InputDown))
	assert.Equal(t, Key{RoleRight, -1, 0, 0}, Move(Key{RoleRight, 0, 0, 0}, InputDown))
}

func TestMoveReset(t *testing.T) {
	for _, k := range []Key{
		{RoleLeft, 7, -3, 2},
		{RoleTop, 0, 0, 0},
		Origin,
	} {
		assert.Equal(t, Key{RoleRight, 0, 0, 0}, Move(k, InputReset))
	}
}

func TestMoveIgnoresEditingInputs(t *testing.T) {
	k := Key{RoleTop, 1, 2, 3}
	for _, in := range []Input{InputDelete, InputFlip, InputRotate, InputNone} {
		assert.Equal(t, k, Move(k, in), in.String())
	}
}

func TestParseInput(t *testing.T) {
	for in, name := range inputNames {
		if in == InputNone {
			continue
		}
		got, err := ParseInput(name)
		assert.Nil(t, err)
		assert.Equal(t, in, got)
	}

	_, err := ParseInput("none")
	assert.NotNil(t, err)
	_, err = ParseInput("jump")
	assert.NotNil(t, err)
}

func TestKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	in, ok := km.Lookup(CodeArrowLeft)
	assert.True(t, ok)
	assert.Equal(t, InputLeft, in)

	in, ok = km.Lookup(CodeD)
	assert.True(t, ok)
	assert.Equal(t, InputDelete, in)

	_, ok = km.Lookup(1234)
	assert.False(t, ok)
}
