package strings

// OneOf reports whether value equals one of options exactly.
func OneOf(value string, options []string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
