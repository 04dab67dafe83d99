package view

import "gridui/internal/grid"

// User identifies the person a View is shown to.
type User struct {
	ID   string
	Name string
}

// ClickKind is the kind of click the host reported.
type ClickKind int

const (
	ClickUnknown ClickKind = iota
	ClickLeft
	ClickShiftLeft
	ClickRight
	ClickShiftRight
	ClickMiddle
	ClickDouble
	ClickNumberKey
	ClickDrop
	ClickControlDrop
)

var clickNames = map[ClickKind]string{
	ClickUnknown:     "unknown",
	ClickLeft:        "left",
	ClickShiftLeft:   "shift_left",
	ClickRight:       "right",
	ClickShiftRight:  "shift_right",
	ClickMiddle:      "middle",
	ClickDouble:      "double",
	ClickNumberKey:   "number_key",
	ClickDrop:        "drop",
	ClickControlDrop: "control_drop",
}

// String returns the snake_case name of the click kind.
func (k ClickKind) String() string {
	if s, ok := clickNames[k]; ok {
		return s
	}
	return clickNames[ClickUnknown]
}

// IsLeft reports whether k is a (shift-)left click.
func (k ClickKind) IsLeft() bool { return k == ClickLeft || k == ClickShiftLeft }

// IsRight reports whether k is a (shift-)right click.
func (k ClickKind) IsRight() bool { return k == ClickRight || k == ClickShiftRight }

// IsShift reports whether shift was held.
func (k ClickKind) IsShift() bool { return k == ClickShiftLeft || k == ClickShiftRight }

// Click is the context a Reaction runs with.
type Click struct {
	User  User
	View  *View
	Kind  ClickKind
	Point grid.Point
}
