// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"testing"

	"github.com/matryer/is"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"0'/0'", Path{Hardened(0), Hardened(0)}},
		{"m/0'/1'", Path{Hardened(0), Hardened(1)}},
		{"m/83696968'/2'/0'", Path{Hardened(2), Hardened(0)}},
		{"39h/0H/12'/3'", Path{Hardened(39), Hardened(0), Hardened(12), Hardened(3)}},
		{" 1 / 2' ", Path{1, Hardened(2)}},
		{"m", Path{}},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			is := is.New(t)
			got, err := ParsePath(test.in)
			is.NoErr(err)
			is.Equal(got, test.want)
		})
	}
}

func TestParsePath_Invalid(t *testing.T) {
	for _, in := range []string{"", "m//1", "a'", "-1", "2147483648'", "0'/x"} {
		t.Run(in, func(t *testing.T) {
			is := is.New(t)
			_, err := ParsePath(in)
			is.True(err != nil)
		})
	}
}

func TestPath_String(t *testing.T) {
	is := is.New(t)

	p := Path{Hardened(39), Hardened(0), Hardened(12), 7}
	is.Equal(p.String(), "m/39'/0'/12'/7")
	is.Equal(p.Absolute().String(), "m/83696968'/39'/0'/12'/7")
	is.True(!p.IsHardened())
	is.True(p.Absolute()[:4].IsHardened())

	parsed, err := ParsePath(p.Absolute().String())
	is.NoErr(err)
	is.Equal(parsed, p)
}

func TestApplication_Path(t *testing.T) {
	is := is.New(t)

	path, err := AppBIP39.Path(Params{Language: Japanese, WordCount: 18, Index: 4})
	is.NoErr(err)
	is.Equal(path.Absolute().String(), "m/83696968'/39'/1'/18'/4'")
	is.True(path.IsHardened())

	path, err = AppHex.Path(Params{Length: 32, Index: 1})
	is.NoErr(err)
	is.Equal(path.String(), "m/128169'/32'/1'")

	path, err = AppXPRV.Path(Params{})
	is.NoErr(err)
	is.Equal(path.String(), "m/32'/0'")
}
