package geomorph

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is one of the three visible faces of an isometric cube.
type Role int

const (
	RoleLeft Role = iota
	RoleRight
	RoleTop
)

// Roles in cursor draw order.
var Roles = []Role{RoleLeft, RoleRight, RoleTop}

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "L"
	case RoleRight:
		return "R"
	case RoleTop:
		return "T"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole is the inverse of Role.String.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// Subset is one of a tileset's two strip images.
type Subset int

const (
	// Overhead holds top-down caps.
	Overhead Subset = iota
	// Vertical holds wall faces.
	Vertical
)

func (s Subset) String() string {
	switch s {
	case Overhead:
		return "overhead"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Subset(%d)", int(s))
}

// ParseSubset is the inverse of Subset.String.
func ParseSubset(s string) (Subset, error) {
	switch s {
	case "overhead":
		return Overhead, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown subset %q", s)
}

func (s *Subset) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseSubset(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Key addresses one face of one cube. Placements on the L, R and T faces of
// the same cube are distinct keys.
type Key struct {
	Role    Role
	X, Y, Z int
}

// Origin is where the cursor starts and returns to on reset.
var Origin = Key{Role: RoleRight}

func (k Key) String() string {
	return fmt.Sprintf("%s,%d,%d,%d", k.Role, k.X, k.Y, k.Z)
}

// ParseKey is the inverse of Key.String, eg. "L,1,0,-2".
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Key{}, fmt.Errorf("invalid key %q, expected role,x,y,z", s)
	}

	role, err := ParseRole(strings.TrimSpace(parts[0]))
	if err != nil {
		return Key{}, err
	}
	k := Key{Role: role}

	for i, dst := range []*int{&k.X, &k.Y, &k.Z} {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i+1]))
		if err != nil {
			return Key{}, fmt.Errorf("invalid key %q: %w", s, err)
		}
		*dst = n
	}
	return k, nil
}

func (k *Key) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// FormRef identifies a form by value: which tileset, which subset, which
// slice of the strip.
type FormRef struct {
	Tileset string
	Subset  Subset
	Offset  int
}

func (f FormRef) String() string {
	return fmt.Sprintf("%s/%s/%d", f.Tileset, f.Subset, f.Offset)
}
