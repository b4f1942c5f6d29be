package tables

import (
	"errors"
	"fmt"
)

const (
	ProgramRestricted = "restricted"
	ProgramUniversal  = "universal"
	ProgramStrict     = "strict"
)

var ErrUnknownProgram = errors.New("unknown program")

// ByName builds a named program. alphabet is used by the strict program only.
func ByName(name string, alphabet string) (*Table, error) {
	switch name {
	case ProgramRestricted:
		return Restricted(), nil
	case ProgramUniversal, "":
		return Universal(), nil
	case ProgramStrict:
		return Strict(alphabet)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProgram, name)
}
