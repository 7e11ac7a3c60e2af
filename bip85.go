// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package bip85 derives deterministic secondary secrets from a BIP-32 master
// key as described in BIP-85.
//
// Every secret is produced by walking a hardened path below the namespace
// 83696968' and hashing the resulting private key with HMAC-SHA512 keyed by
// "bip-entropy-from-k". The 64 bytes of entropy are then sliced or encoded
// according to the application:
//
//   - WIF private key     m/83696968'/2'/{index}'
//   - BIP-32 xprv         m/83696968'/32'/{index}'
//   - BIP-39 mnemonic     m/83696968'/39'/{language}'/{words}'/{index}'
//   - hex entropy         m/83696968'/128169'/{length}'/{index}'
//   - base64 password     m/83696968'/707764'/{length}'/{index}'
//   - DRNG                m/83696968'/0'/{index}'
//
// Only the master key and the (application, index) pair need to be kept to
// reproduce any of these secrets.
package bip85

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// Namespace is the BIP-85 purpose index applied (hardened) directly
	// below the master key.
	Namespace = 83696968

	// EntropyLen is the size of the derived entropy in bytes.
	EntropyLen = sha512.Size
)

// hmacKey domain-separates BIP-85 entropy from other uses of the same key.
var hmacKey = []byte("bip-entropy-from-k")

// Deriver derives BIP-85 entropy through a KeyChain. The zero value is not
// usable; construct one with NewDeriver. A Deriver holds no mutable state
// and is safe for concurrent use.
type Deriver struct {
	chain KeyChain
}

// NewDeriver returns a Deriver using chain for BIP-32 derivation.
func NewDeriver(chain KeyChain) *Deriver {
	return &Deriver{chain: chain}
}

var defaultDeriver = NewDeriver(BIP32{})

// Derive returns the 64 bytes of entropy at path below the BIP-85 namespace
// using the hdkeychain-backed KeyChain. Use it for applications without a
// dedicated helper; path must not include the namespace itself, e.g.
// Path{Hardened(2), Hardened(1)} for the WIF application at index 1.
func Derive(root *hdkeychain.ExtendedKey, path Path) ([]byte, error) {
	return defaultDeriver.Derive(root, path)
}

// Derive returns the 64 bytes of entropy at path below the BIP-85
// namespace. Errors from the KeyChain are returned as they are.
func (d *Deriver) Derive(root *hdkeychain.ExtendedKey, path Path) ([]byte, error) {
	log.Tracef("Deriving entropy at %v", path.Absolute())

	nsKey, err := d.chain.HardenedChild(root, Namespace)
	if err != nil {
		return nil, err
	}
	derived, err := d.chain.DerivePath(nsKey, path)
	if err != nil {
		return nil, err
	}

	priv, err := derived.ECPrivKey()
	if err != nil {
		//nolint: wrapcheck
		return nil, err
	}

	mac := hmac.New(sha512.New, hmacKey)
	mac.Write(priv.Serialize())
	return mac.Sum(nil), nil
}

// checkIndex rejects indexes that would collide with the hardening bit.
func checkIndex(index uint32) error {
	if index >= hdkeychain.HardenedKeyStart {
		return InvalidIndexError(index)
	}
	return nil
}

func (d *Deriver) deriveApp(root *hdkeychain.ExtendedKey, app Application, p Params) ([]byte, error) {
	path, err := app.Path(p)
	if err != nil {
		return nil, err
	}
	log.Debugf("Deriving %v entropy at %v", app, path.Absolute())
	return d.Derive(root, path)
}

