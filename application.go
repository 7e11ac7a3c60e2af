// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Application is a BIP-85 application number. It is applied as a hardened
// child directly below the namespace.
type Application uint32

// Registered applications.
const (
	// AppDRNG seeds the BIP85-DRNG stream.
	AppDRNG Application = 0

	// AppWIF produces a compressed WIF private key.
	AppWIF Application = 2

	// AppXPRV produces a BIP-32 extended private key.
	AppXPRV Application = 32

	// AppBIP39 produces a BIP-39 mnemonic.
	AppBIP39 Application = 39

	// AppHex produces 16 to 64 bytes of raw entropy.
	AppHex Application = 128169

	// AppPasswordBase64 produces a base64 password of 20 to 86 characters.
	AppPasswordBase64 Application = 707764
)

// Bounds of the length parameters.
const (
	MinHexLen      = 16
	MaxHexLen      = 64
	MinPasswordLen = 20
	MaxPasswordLen = 86
)

func (a Application) String() string {
	switch a {
	case AppDRNG:
		return "drng"
	case AppWIF:
		return "wif"
	case AppXPRV:
		return "xprv"
	case AppBIP39:
		return "bip39"
	case AppHex:
		return "hex"
	case AppPasswordBase64:
		return "pwd-base64"
	default:
		return fmt.Sprintf("app(%d)", uint32(a))
	}
}

// Params holds the caller-supplied parameters of an application. Fields an
// application does not use are ignored.
type Params struct {
	// Index selects which secret of the application to produce.
	Index uint32

	// Length is the hex entropy length in bytes or the password length in
	// characters.
	Length uint32

	// WordCount is the mnemonic length: 12, 18 or 24.
	WordCount uint32

	// Language is the mnemonic wordlist. The zero value is English.
	Language Language
}

// Path validates p and returns the application's path relative to the
// namespace. No derivation happens here.
func (a Application) Path(p Params) (Path, error) {
	switch a {
	case AppDRNG, AppWIF, AppXPRV:
		if err := checkIndex(p.Index); err != nil {
			return nil, err
		}
		return Path{Hardened(uint32(a)), Hardened(p.Index)}, nil

	case AppHex:
		if p.Length < MinHexLen || p.Length > MaxHexLen {
			return nil, InvalidLengthError(p.Length)
		}
		if err := checkIndex(p.Index); err != nil {
			return nil, err
		}
		return Path{Hardened(uint32(a)), Hardened(p.Length), Hardened(p.Index)}, nil

	case AppPasswordBase64:
		if p.Length < MinPasswordLen || p.Length > MaxPasswordLen {
			return nil, InvalidLengthError(p.Length)
		}
		if err := checkIndex(p.Index); err != nil {
			return nil, err
		}
		return Path{Hardened(uint32(a)), Hardened(p.Length), Hardened(p.Index)}, nil

	case AppBIP39:
		if p.WordCount < 12 || p.WordCount > 24 || p.WordCount%6 != 0 {
			return nil, InvalidWordCountError(p.WordCount)
		}
		if p.Language.Wordlist() == nil {
			return nil, InvalidLanguageError(p.Language)
		}
		if err := checkIndex(p.Index); err != nil {
			return nil, err
		}
		return Path{
			Hardened(uint32(a)),
			Hardened(uint32(p.Language)),
			Hardened(p.WordCount),
			Hardened(p.Index),
		}, nil
	}
	return nil, UnknownApplicationError(a)
}

// Result holds the output of DeriveApp. Exactly one field is set,
// depending on the application.
type Result struct {
	Application Application

	// Entropy is set for AppHex.
	Entropy []byte

	// WIF is set for AppWIF.
	WIF *btcutil.WIF

	// XPRV is set for AppXPRV.
	XPRV *hdkeychain.ExtendedKey

	// Mnemonic is set for AppBIP39.
	Mnemonic string

	// Password is set for AppPasswordBase64.
	Password string

	// DRNG is set for AppDRNG.
	DRNG io.Reader
}

// DeriveApp derives the output of app for p using the hdkeychain-backed
// KeyChain.
func DeriveApp(root *hdkeychain.ExtendedKey, app Application, p Params) (*Result, error) {
	return defaultDeriver.DeriveApp(root, app, p)
}

// DeriveApp validates p, derives the application entropy and decodes it
// into the application's output type.
func (d *Deriver) DeriveApp(root *hdkeychain.ExtendedKey, app Application, p Params) (*Result, error) {
	var (
		res = &Result{Application: app}
		err error
	)
	switch app {
	case AppDRNG:
		res.DRNG, err = d.DeriveDRNG(root, p.Index)
	case AppWIF:
		res.WIF, err = d.DeriveWIF(root, p.Index)
	case AppXPRV:
		res.XPRV, err = d.DeriveXPRV(root, p.Index)
	case AppBIP39:
		res.Mnemonic, err = d.DeriveMnemonic(root, p.Language, p.WordCount, p.Index)
	case AppHex:
		res.Entropy, err = d.DeriveHex(root, p.Length, p.Index)
	case AppPasswordBase64:
		res.Password, err = d.DerivePasswordBase64(root, p.Length, p.Index)
	default:
		return nil, UnknownApplicationError(app)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
