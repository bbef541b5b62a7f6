package config

import (
	"regexp"
	"strconv"

	"github.com/vovakirdan/pacmen/internal/sprite"
)

// leadingNumber matches the numeric prefix of a control value such as "1.5x".
var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d*)?)`)

// ParseNumber reads the leading decimal number of s.
func ParseNumber(s string) (float64, bool) {
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseSpawnOptions builds spawn options from loose key/value input.
// Recognised keys are behavior, speed and size. Unknown keys and values
// that do not parse are dropped.
func ParseSpawnOptions(values map[string]string) sprite.Options {
	var opts sprite.Options
	for k, v := range values {
		switch k {
		case "behavior":
			if b, err := sprite.ParseBehavior(v); err == nil {
				opts = opts.WithBehavior(b)
			}
		case "speed":
			if n, ok := ParseNumber(v); ok {
				opts = opts.WithSpeed(n)
			}
		case "size":
			if n, ok := ParseNumber(v); ok {
				opts = opts.WithSize(n)
			}
		}
	}
	return opts
}
