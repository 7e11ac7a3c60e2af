// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// NewDRNG returns the BIP85-DRNG stream for 64 bytes of derived entropy:
// a SHAKE256 extendable-output function absorbing the entropy once. The
// reader never returns an error and never runs dry.
func NewDRNG(entropy []byte) io.Reader {
	h := sha3.NewShake256()
	_, _ = h.Write(entropy)
	return h
}
