package mounts

import (
	"regexp"
	"strings"
)

const (
	// Spec should be in the format [source:]destination[:mode]
	//
	// Examples: c:\foo bar:d::rw
	//           c:\foo:d:\bar
	//           myname:d:
	//           d:\
	//
	// There are three match groups: source, destination and mode.

	// rxHostDir is the first option of a source
	rxHostDir = `[a-z]:\\(?:[^\\/:*?"<>|\r\n]+\\?)*`
	// rxName is the second option of a source
	rxName = `[^\\/:*?"<>|\r\n]+`

	// rxSource is the combined possibilities for a source
	rxSource = `(?:(?P<source>(?:` + rxHostDir + `)|(?:` + rxName + `)):)?`

	// Source. Can be either a host directory, a name, or omitted:
	//  HostDir:
	//    -  Must be an absolute path such as c:\path
	//    -  Can include spaces such as `c:\program files`
	//    -  And then followed by a colon which is not in the capture group
	//  Name:
	//    -  Must not contain invalid NTFS filename characters
	//    -  And then followed by a colon which is not in the capture group

	// rxDestination is the regex expression for the mount destination.
	// A drive followed by a colon, optionally followed by an absolute path.
	rxDestination = `(?P<destination>[a-z]:(?:\\[^\\/:*?"<>\r\n]+)*\\?)`

	// rxMode is the regex expression for the mode of the mount.
	// Colon is not in the capture group.
	rxMode = `(?::(?P<mode>(?i)ro|rw))?`
)

// windowsSpecExp matches a complete lower-cased bind spec. Go's regexp picks
// the submatch a backtracking engine would, so the source group wins over
// the destination whenever both splits are possible.
var windowsSpecExp = regexp.MustCompile(`^` + rxSource + rxDestination + rxMode + `$`)

var (
	sourceIdx      = windowsSpecExp.SubexpIndex("source")
	destinationIdx = windowsSpecExp.SubexpIndex("destination")
	modeIdx        = windowsSpecExp.SubexpIndex("mode")
)

// MountSpec is the split form of a Windows bind spec. An empty Source means
// the spec had none; the grammar never captures an empty source.
type MountSpec struct {
	Source      string
	Destination string
	Flags       []string
}

// ParseWindowsSpec splits raw into source, destination and flags. Matching is
// case-insensitive and all returned fields are lower case.
func ParseWindowsSpec(raw string) (MountSpec, error) {
	match := windowsSpecExp.FindStringSubmatch(strings.ToLower(raw))
	if match == nil {
		return MountSpec{}, &ParseError{Spec: raw}
	}

	flags := []string{}
	if mode := match[modeIdx]; mode != "" {
		flags = strings.Split(mode, ",")
	}
	return MountSpec{
		Source:      match[sourceIdx],
		Destination: match[destinationIdx],
		Flags:       flags,
	}, nil
}

// String renders the spec as [source:]destination[:flags].
func (s MountSpec) String() string {
	var b strings.Builder
	if s.Source != "" {
		b.WriteString(s.Source)
		b.WriteByte(':')
	}
	b.WriteString(s.Destination)
	if len(s.Flags) > 0 {
		b.WriteByte(':')
		b.WriteString(strings.Join(s.Flags, ","))
	}
	return b.String()
}

// Equal reports whether both specs have the same source, destination and
// flags. A nil and an empty Flags slice compare equal.
func (s MountSpec) Equal(o MountSpec) bool {
	if s.Source != o.Source || s.Destination != o.Destination || len(s.Flags) != len(o.Flags) {
		return false
	}
	for i := range s.Flags {
		if s.Flags[i] != o.Flags[i] {
			return false
		}
	}
	return true
}

// IsHostDir reports whether the source is a host directory rather than a
// volume name.
func (s MountSpec) IsHostDir() bool {
	return s.Source != "" && hostDirExp.MatchString(s.Source)
}

var hostDirExp = regexp.MustCompile(`^` + rxHostDir + `$`)
