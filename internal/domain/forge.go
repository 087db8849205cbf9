package domain

import "fmt"

type ForgeCommand string

const (
	ForgePackage ForgeCommand = "package"
	ForgeMake    ForgeCommand = "make"
)

func (c ForgeCommand) Valid() bool {
	switch c {
	case ForgePackage, ForgeMake:
		return true
	default:
		return false
	}
}

// Script returns the package.json script a forge command runs.
func (c ForgeCommand) Script() (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("unsupported forge command %q", string(c))
	}
	return string(c), nil
}
