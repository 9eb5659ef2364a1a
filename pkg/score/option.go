package score

import (
	"errors"
	"fmt"
	"strings"
)

// Option selects how the accumulated character score is normalized.
type Option int

const (
	// Default weighs the query score by the share of the source it covers.
	Default Option = iota
	// FavorSmallerWords divides the character score by the source length only.
	FavorSmallerWords
	// ReducedLongStringPenalty reduces the penalty for long sources.
	ReducedLongStringPenalty
)

var ErrUnknownOption = errors.New("unknown option")

var optionNames = map[Option]string{
	Default:                  "default",
	FavorSmallerWords:        "favor_smaller_words",
	ReducedLongStringPenalty: "reduced_long_string_penalty",
}

func (o Option) String() string {
	if name, ok := optionNames[o]; ok {
		return name
	}

	return fmt.Sprintf("option(%d)", int(o))
}

// ParseOption parses the name of an option. The empty string is Default.
func ParseOption(s string) (Option, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")

	if s == "" {
		return Default, nil
	}

	for k, v := range optionNames {
		if v == s {
			return k, nil
		}
	}

	return Default, fmt.Errorf("%w: %q", ErrUnknownOption, s)
}

func (o Option) MarshalText() ([]byte, error) {
	if _, ok := optionNames[o]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOption, int(o))
	}

	return []byte(o.String()), nil
}

func (o *Option) UnmarshalText(text []byte) error {
	v, err := ParseOption(string(text))
	if err != nil {
		return err
	}

	*o = v

	return nil
}
