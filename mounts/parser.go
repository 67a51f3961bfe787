package mounts

import (
	"github.com/docker/docker/api/types"
)

// Parser represents a platform specific parser for mount expressions
type Parser interface {
	ParseMountRaw(raw, volumeDriver string) (*types.MountPoint, error)
}

// NewWindowsParser returns a Parser for Windows bind specs.
func NewWindowsParser() Parser {
	return &windowsParser{}
}
