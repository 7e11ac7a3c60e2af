// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// KeyChain performs BIP-32 private child derivation. Implementations must
// be safe for concurrent use and must not modify the keys they are given.
type KeyChain interface {
	// HardenedChild derives the hardened child index' of key.
	HardenedChild(key *hdkeychain.ExtendedKey, index uint32) (*hdkeychain.ExtendedKey, error)

	// DerivePath walks path starting at key.
	DerivePath(key *hdkeychain.ExtendedKey, path Path) (*hdkeychain.ExtendedKey, error)
}

// BIP32 is the KeyChain backed by btcutil's hdkeychain package.
type BIP32 struct{}

var _ KeyChain = BIP32{}

// HardenedChild implements KeyChain.
func (BIP32) HardenedChild(key *hdkeychain.ExtendedKey, index uint32) (*hdkeychain.ExtendedKey, error) {
	//nolint: wrapcheck
	return key.Derive(Hardened(index))
}

// DerivePath implements KeyChain.
func (BIP32) DerivePath(key *hdkeychain.ExtendedKey, path Path) (*hdkeychain.ExtendedKey, error) {
	var err error
	for _, child := range path {
		key, err = key.Derive(child)
		if err != nil {
			//nolint: wrapcheck
			return nil, err
		}
	}
	return key, nil
}
