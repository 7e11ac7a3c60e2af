// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Path is a sequence of BIP-32 child numbers. Hardened steps carry
// hdkeychain.HardenedKeyStart in their top bit.
type Path []uint32

// Hardened returns the hardened child number for index. The caller is
// responsible for keeping index below hdkeychain.HardenedKeyStart.
func Hardened(index uint32) uint32 {
	return hdkeychain.HardenedKeyStart + index
}

// IsHardened reports whether every step of the path is hardened.
func (p Path) IsHardened() bool {
	for _, c := range p {
		if c < hdkeychain.HardenedKeyStart {
			return false
		}
	}
	return true
}

// String renders the path in the canonical m/a'/b form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, c := range p {
		b.WriteByte('/')
		if c >= hdkeychain.HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(c-hdkeychain.HardenedKeyStart), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	return b.String()
}

// Absolute returns the full path from the master key, namespace included.
func (p Path) Absolute() Path {
	full := make(Path, 0, len(p)+1)
	full = append(full, Hardened(Namespace))
	return append(full, p...)
}

// ParsePath converts a textual path such as "m/0'/1'" or "0h/1h" into a
// Path relative to the BIP-85 namespace. A leading namespace component is
// stripped so both absolute and relative forms are accepted.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty derivation path")
	}

	components := strings.Split(s, "/")
	if strings.TrimSpace(components[0]) == "m" {
		components = components[1:]
	}

	path := make(Path, 0, len(components))
	for _, component := range components {
		component = strings.TrimSpace(component)
		if component == "" {
			return nil, fmt.Errorf("invalid derivation path %q: empty component", s)
		}

		var offset uint32
		if last := component[len(component)-1]; last == '\'' || last == 'h' || last == 'H' {
			offset = hdkeychain.HardenedKeyStart
			component = component[:len(component)-1]
		}

		v, err := strconv.ParseUint(component, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q: %w", component, err)
		}
		if v >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("component %d out of allowed range [0, %d]", v, hdkeychain.HardenedKeyStart-1)
		}
		path = append(path, offset+uint32(v))
	}

	if len(path) > 0 && path[0] == Hardened(Namespace) {
		path = path[1:]
	}
	return path, nil
}
