package cli

// Terminal color codes
const (
	Reset    = "\033[0m"
	Red      = "\033[31m"
	Green    = "\033[32m"
	Yellow   = "\033[33m"
	Blue     = "\033[34m"
	Magenta  = "\033[35m"
	Cyan     = "\033[36m"
	OnYellow = "\033[43m"
	OnGreen  = "\033[42m"
)

// palette wraps text in color codes only when enabled.
type palette struct {
	enabled bool
}

func (p palette) paint(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + Reset
}
