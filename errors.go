// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"errors"
	"fmt"
)

var (
	// ErrUnusableKey is returned when derived entropy does not form a valid
	// secp256k1 private key (zero, or not below the group order).
	ErrUnusableKey = errors.New("derived entropy is not a usable private key")

	// ErrUnknownNetwork is returned when the root key's version bytes do not
	// match any known bitcoin network.
	ErrUnknownNetwork = errors.New("root key belongs to an unknown network")
)

// InvalidIndexError is returned when an application index has the
// hardening bit set.
type InvalidIndexError uint32

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index for derivation, should be less than 0x80000000: %d", uint32(e))
}

// InvalidLengthError is returned when a requested output length is out of
// range for the application.
type InvalidLengthError uint32

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid bytes length: %d", uint32(e))
}

// InvalidWordCountError is returned for mnemonic word counts other than
// 12, 18 or 24.
type InvalidWordCountError uint32

func (e InvalidWordCountError) Error() string {
	return fmt.Sprintf("invalid number of words for mnemonic: %d. Should be 12, 18 or 24", uint32(e))
}

// InvalidLanguageError is returned for a BIP-85 language code without a
// wordlist.
type InvalidLanguageError uint32

func (e InvalidLanguageError) Error() string {
	return fmt.Sprintf("unsupported mnemonic language code: %d", uint32(e))
}

// UnknownApplicationError is returned by DeriveApp for application numbers
// outside the registry.
type UnknownApplicationError uint32

func (e UnknownApplicationError) Error() string {
	return fmt.Sprintf("unknown application number: %d", uint32(e))
}
