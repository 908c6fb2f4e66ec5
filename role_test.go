package geomorph

import (
	"testing"

	"github.com/go-yaml/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"R,0,0,0":    Origin,
		"L,1,0,-2":   {Role: RoleLeft, X: 1, Z: -2},
		"T, 3, 4, 5": {Role: RoleTop, X: 3, Y: 4, Z: 5},
	}

	for in, expect := range cases {
		k, err := ParseKey(in)
		require.Nil(t, err, in)
		assert.Equal(t, expect, k, in)
	}

	for _, in := range []string{"", "R,0,0", "Q,0,0,0", "L,a,0,0"} {
		_, err := ParseKey(in)
		assert.NotNil(t, err, in)
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	k := Key{Role: RoleTop, X: -1, Y: 2, Z: 7}

	parsed, err := ParseKey(k.String())

	require.Nil(t, err)
	assert.Equal(t, k, parsed)
}

func TestFormRefYaml(t *testing.T) {
	var ref FormRef

	err := yaml.Unmarshal([]byte("tileset: crypt\nsubset: vertical\noffset: 2\n"), &ref)

	require.Nil(t, err)
	assert.Equal(t, FormRef{Tileset: "crypt", Subset: Vertical, Offset: 2}, ref)
	assert.Equal(t, "crypt/vertical/2", ref.String())

	err = yaml.Unmarshal([]byte("subset: sideways\n"), &ref)
	assert.NotNil(t, err)
}
