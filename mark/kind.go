package mark

import "fmt"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindSkip
	KindXFail
	KindCustom

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// ParseKind maps a definition-file kind string to a KindEnum.
func ParseKind(s string) (KindEnum, error) {
	switch s {
	default:
		return 0, fmt.Errorf("unknown mark kind %q (expected 'skip', 'xfail' or 'custom')", s)
	case "skip":
		return KindSkip, nil
	case "xfail":
		return KindXFail, nil
	case "custom":
		return KindCustom, nil
	}
}
