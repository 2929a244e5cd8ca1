package wallpaper

// New returns the Setter for the running platform.
func New() Setter {
	return darwinSetter{}
}
