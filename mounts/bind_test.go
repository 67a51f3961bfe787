package mounts

import (
	"errors"
	"testing"

	"github.com/docker/docker/api/types/mount"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseBind(t *testing.T) {
	testCases := []struct {
		input    string
		expected Bind
	}{
		{`c:\host:c:\container`, Bind{`c:\host`, `c:\container`, DefaultAccessMode}},
		{`c:\host:c:\container:rw`, Bind{`c:\host`, `c:\container`, ReadWrite}},
		{`c:\host:c:\container:ro`, Bind{`c:\host`, `c:\container`, ReadOnly}},
		{`C:\Host:C:\Container:Ro`, Bind{`c:\host`, `c:\container`, ReadOnly}},
		{`myname:d:`, Bind{`myname`, `d:`, ReadWrite}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := ParseBind(tc.input)
			assert.NilError(t, err)
			assert.DeepEqual(t, *actual, tc.expected)
		})
	}
}

func TestParseBindInvalid(t *testing.T) {
	testCases := []string{
		`c:\host:c:\container:xx`,
		`nonsense`,
		``,
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			_, err := ParseBind(input)
			assert.Error(t, err, "Error parsing Bind '"+input+"'")

			var parseErr *ParseError
			assert.Assert(t, errors.As(err, &parseErr))
			assert.Equal(t, parseErr.Spec, input)
		})
	}
}

func TestBindString(t *testing.T) {
	testCases := []struct {
		input, expected string
	}{
		{`c:\host:c:\container:ro`, `c:\host:c:\container:ro`},
		{`c:\host:c:\container:rw`, `c:\host:c:\container:rw`},
		{`c:\host:c:\container`, `c:\host:c:\container:rw`},
		{`d:\data`, `d:\data:rw`},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			b, err := ParseBind(tc.input)
			assert.NilError(t, err)
			assert.Equal(t, b.String(), tc.expected)

			again, err := ParseBind(b.String())
			assert.NilError(t, err)
			assert.DeepEqual(t, again, b)
		})
	}
}

func TestBindStringUnsetAccessMode(t *testing.T) {
	b := &Bind{Source: `c:\h`, Destination: `d:\x`}
	assert.Equal(t, b.String(), `c:\h:d:\x:rw`)

	again, err := ParseBind(b.String())
	assert.NilError(t, err)
	assert.DeepEqual(t, *again, Bind{`c:\h`, `d:\x`, ReadWrite})

	mp := b.MountPoint()
	assert.Check(t, is.Equal(mp.Mode, "rw"))
	assert.Check(t, mp.RW)
	assert.Check(t, !b.Mount().ReadOnly)
}

func TestBindType(t *testing.T) {
	testCases := []struct {
		input    string
		expected mount.Type
	}{
		{`c:\host:c:\container`, mount.TypeBind},
		{`myname:c:\container`, mount.TypeVolume},
		{`c:\container`, mount.TypeVolume},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			b, err := ParseBind(tc.input)
			assert.NilError(t, err)
			assert.Equal(t, b.Type(), tc.expected)
		})
	}
}

func TestBindMount(t *testing.T) {
	b, err := ParseBind(`c:\host:c:\container:ro`)
	assert.NilError(t, err)
	assert.DeepEqual(t, b.Mount(), mount.Mount{
		Type:     mount.TypeBind,
		Source:   `c:\host`,
		Target:   `c:\container`,
		ReadOnly: true,
	})
}

func TestBindMountPoint(t *testing.T) {
	b, err := ParseBind(`c:\host:c:\container`)
	assert.NilError(t, err)
	mp := b.MountPoint()
	assert.Check(t, is.Equal(mp.Type, mount.TypeBind))
	assert.Check(t, is.Equal(mp.Source, `c:\host`))
	assert.Check(t, is.Equal(mp.Name, ""))
	assert.Check(t, is.Equal(mp.Destination, `c:\container`))
	assert.Check(t, is.Equal(mp.Mode, "rw"))
	assert.Check(t, mp.RW)

	b, err = ParseBind(`data:d:\data:ro`)
	assert.NilError(t, err)
	mp = b.MountPoint()
	assert.Check(t, is.Equal(mp.Type, mount.TypeVolume))
	assert.Check(t, is.Equal(mp.Source, ""))
	assert.Check(t, is.Equal(mp.Name, "data"))
	assert.Check(t, !mp.RW)
}
