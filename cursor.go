package geomorph

import "fmt"

// Input is a logical command decoded from a key press.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputUp
	InputRight
	InputDown
	InputReset
	InputDelete
	InputFlip
	InputRotate
)

var inputNames = map[Input]string{
	InputNone:   "none",
	InputLeft:   "left",
	InputUp:     "up",
	InputRight:  "right",
	InputDown:   "down",
	InputReset:  "reset",
	InputDelete: "delete",
	InputFlip:   "flip",
	InputRotate: "rotate",
}

func (i Input) String() string {
	if s, ok := inputNames[i]; ok {
		return s
	}
	return fmt.Sprintf("Input(%d)", int(i))
}

// ParseInput is the inverse of Input.String.
func ParseInput(s string) (Input, error) {
	for i, name := range inputNames {
		if name == s && i != InputNone {
			return i, nil
		}
	}
	return InputNone, fmt.Errorf("unknown input %q", s)
}

// UnmarshalYAML reads an input by name.
func (i *Input) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	in, err := ParseInput(s)
	if err != nil {
		return err
	}
	*i = in
	return nil
}

// MarshalYAML writes an input by name.
func (i Input) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// Move returns the cursor after applying a navigation input.
//
// Left, Up and Right first select their face; once the face is selected the
// same input steps one cube along that face's axis. Down steps back along
// the axis of whatever face is selected.
func Move(c Key, in Input) Key {
	switch in {
	case InputLeft:
		if c.Role == RoleLeft {
			c.Y++
		} else {
			c.Role = RoleLeft
		}
	case InputUp:
		if c.Role == RoleTop {
			c.Z++
		} else {
			c.Role = RoleTop
		}
	case InputRight:
		if c.Role == RoleRight {
			c.X++
		} else {
			c.Role = RoleRight
		}
	case InputDown:
		switch c.Role {
		case RoleLeft:
			c.Y--
		case RoleTop:
			c.Z--
		case RoleRight:
			c.X--
		}
	case InputReset:
		return Origin
	}
	return c
}

// navigates reports if the input moves the cursor (as opposed to editing
// tiles).
func (i Input) navigates() bool {
	switch i {
	case InputLeft, InputUp, InputRight, InputDown, InputReset:
		return true
	}
	return false
}
