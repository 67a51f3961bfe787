package mounts

import (
	"regexp"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/mount"
	"github.com/pkg/errors"
)

// rxReservedNames are reserved names not possible on Windows
const rxReservedNames = `(con)|(prn)|(nul)|(aux)|(com[1-9])|(lpt[1-9])`

var reservedNameExp = regexp.MustCompile(`^(?:` + rxReservedNames + `)$`)

type mountValidator func(b *Bind) error

type windowsParser struct {
}

func (p *windowsParser) ParseMountRaw(raw, volumeDriver string) (*types.MountPoint, error) {
	b, err := ParseBind(raw)
	if err != nil {
		return nil, err
	}

	for _, v := range []mountValidator{validateDestination, validateVolume} {
		if err := v(b); err != nil {
			return nil, errInvalidSpec(raw, err)
		}
	}

	mp := b.MountPoint()
	if mp.Type == mount.TypeVolume {
		mp.Driver = volumeDriver
	}
	// cleanup trailing `\` except for paths like `c:\`
	mp.Source = trimTrailingSeparator(mp.Source)
	mp.Destination = trimTrailingSeparator(mp.Destination)
	return mp, nil
}

// ValidateVolumeName checks a volume name against the Windows naming rules.
func ValidateVolumeName(name string) error {
	if !nameExp.MatchString(name) {
		return errors.Errorf("invalid volume name %q", name)
	}
	if reservedNameExp.MatchString(strings.ToLower(name)) {
		return errReservedName(name)
	}
	return nil
}

var nameExp = regexp.MustCompile(`^` + rxName + `$`)

func validateDestination(b *Bind) error {
	// Drive cannot be c:, checked here rather than in the grammar
	if b.Destination == `c:` || b.Destination == `c:\` {
		return errors.Errorf("destination path cannot be `c:` or `c:\\`: %s", b.Destination)
	}
	return nil
}

func validateVolume(b *Bind) error {
	if b.Type() != mount.TypeVolume {
		return nil
	}
	if b.Source == "" {
		if b.mode() == ReadOnly {
			return errors.New("must not set ReadOnly mode when using anonymous volumes")
		}
		return nil
	}
	return ValidateVolumeName(b.Source)
}

func trimTrailingSeparator(p string) string {
	if len(p) > 3 && p[len(p)-1] == '\\' {
		return p[:len(p)-1]
	}
	return p
}
