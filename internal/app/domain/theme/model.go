// Package theme defines the light/dark theme preference model.
package theme

// Mode is the theme preference. It is stored as the literal string "light" or
// "dark" in the preference store.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Valid reports whether the mode is one of the known values.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}
