package modes

import "fmt"

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return fmt.Sprintf("mode(%d)", m)
}

// Parse accepts the names returned by String.
func Parse(str string) (Mode, error) {
	switch str {
	case "production", "prod":
		return ModeProduction, nil
	case "development", "dev":
		return ModeDevelopment, nil
	}
	return 0, fmt.Errorf("unknown mode: %q", str)
}
