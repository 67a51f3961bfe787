package mounts

import (
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/mount"
)

// AccessMode controls whether the container may write to the mount.
type AccessMode string

const (
	ReadWrite AccessMode = "rw"
	ReadOnly  AccessMode = "ro"

	// DefaultAccessMode is used when the spec carries no mode.
	DefaultAccessMode = ReadWrite
)

// Bind is a parsed Windows bind with its access mode resolved.
type Bind struct {
	Source      string
	Destination string
	AccessMode  AccessMode
}

// ParseBind parses raw and resolves the access mode. Errors always read
// "Error parsing Bind '<raw>'" and unwrap to the underlying cause.
func ParseBind(raw string) (*Bind, error) {
	spec, err := ParseWindowsSpec(raw)
	if err != nil {
		return nil, &BindError{Spec: raw, Err: err}
	}

	mode := DefaultAccessMode
	if len(spec.Flags) > 0 {
		mode = AccessMode(spec.Flags[0])
	}
	return &Bind{
		Source:      spec.Source,
		Destination: spec.Destination,
		AccessMode:  mode,
	}, nil
}

// Spec returns the split form, always carrying the access mode. An unset
// mode is rendered as DefaultAccessMode.
func (b *Bind) Spec() MountSpec {
	return MountSpec{
		Source:      b.Source,
		Destination: b.Destination,
		Flags:       []string{string(b.mode())},
	}
}

func (b *Bind) mode() AccessMode {
	if b.AccessMode == "" {
		return DefaultAccessMode
	}
	return b.AccessMode
}

// String returns the canonical form of the bind, e.g. c:\host:c:\container:rw.
func (b *Bind) String() string {
	return b.Spec().String()
}

// Type returns mount.TypeBind for host directories and mount.TypeVolume for
// named or anonymous volumes.
func (b *Bind) Type() mount.Type {
	if b.Spec().IsHostDir() {
		return mount.TypeBind
	}
	return mount.TypeVolume
}

// Mount converts the bind into an Engine API mount.
func (b *Bind) Mount() mount.Mount {
	return mount.Mount{
		Type:     b.Type(),
		Source:   b.Source,
		Target:   b.Destination,
		ReadOnly: b.mode() == ReadOnly,
	}
}

// MountPoint converts the bind into an Engine API mount point.
func (b *Bind) MountPoint() *types.MountPoint {
	mp := &types.MountPoint{
		Type:        b.Type(),
		Destination: b.Destination,
		Mode:        string(b.mode()),
		RW:          b.mode() != ReadOnly,
	}
	if mp.Type == mount.TypeBind {
		mp.Source = b.Source
	} else {
		mp.Name = b.Source
	}
	return mp
}
