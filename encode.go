// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// DeriveWIF derives the compressed private key at index for the root's
// network using the hdkeychain-backed KeyChain.
func DeriveWIF(root *hdkeychain.ExtendedKey, index uint32) (*btcutil.WIF, error) {
	return defaultDeriver.DeriveWIF(root, index)
}

// DeriveXPRV derives the extended private key at index using the
// hdkeychain-backed KeyChain.
func DeriveXPRV(root *hdkeychain.ExtendedKey, index uint32) (*hdkeychain.ExtendedKey, error) {
	return defaultDeriver.DeriveXPRV(root, index)
}

// DeriveHex derives length bytes of entropy at index using the
// hdkeychain-backed KeyChain.
func DeriveHex(root *hdkeychain.ExtendedKey, length, index uint32) ([]byte, error) {
	return defaultDeriver.DeriveHex(root, length, index)
}

// DeriveMnemonic derives a BIP-39 mnemonic at index using the
// hdkeychain-backed KeyChain.
func DeriveMnemonic(root *hdkeychain.ExtendedKey, lang Language, wordCount, index uint32) (string, error) {
	return defaultDeriver.DeriveMnemonic(root, lang, wordCount, index)
}

// DerivePasswordBase64 derives a base64 password at index using the
// hdkeychain-backed KeyChain.
func DerivePasswordBase64(root *hdkeychain.ExtendedKey, length, index uint32) (string, error) {
	return defaultDeriver.DerivePasswordBase64(root, length, index)
}

// DeriveDRNG returns the BIP85-DRNG stream at index using the
// hdkeychain-backed KeyChain.
func DeriveDRNG(root *hdkeychain.ExtendedKey, index uint32) (io.Reader, error) {
	return defaultDeriver.DeriveDRNG(root, index)
}

// DeriveWIF uses the first 32 bytes of entropy as the private key. The key
// is always marked compressed and tagged with the root's network.
func (d *Deriver) DeriveWIF(root *hdkeychain.ExtendedKey, index uint32) (*btcutil.WIF, error) {
	p := Params{Index: index}
	if _, err := AppWIF.Path(p); err != nil {
		return nil, err
	}
	net, err := NetworkOf(root)
	if err != nil {
		return nil, err
	}

	entropy, err := d.deriveApp(root, AppWIF, p)
	if err != nil {
		return nil, err
	}

	priv, err := privKeyFromBytes(entropy[:32])
	if err != nil {
		return nil, err
	}
	wif, err := btcutil.NewWIF(priv, net, true)
	if err != nil {
		return nil, fmt.Errorf("could not encode private key: %w", err)
	}
	return wif, nil
}

// DeriveXPRV builds an extended private key from the entropy: bytes 0..32
// are the chain code and bytes 32..64 the private key. The key is presented
// as a new root: depth 0, zero parent fingerprint and child number 0.
func (d *Deriver) DeriveXPRV(root *hdkeychain.ExtendedKey, index uint32) (*hdkeychain.ExtendedKey, error) {
	p := Params{Index: index}
	if _, err := AppXPRV.Path(p); err != nil {
		return nil, err
	}
	net, err := NetworkOf(root)
	if err != nil {
		return nil, err
	}

	entropy, err := d.deriveApp(root, AppXPRV, p)
	if err != nil {
		return nil, err
	}

	chainCode := make([]byte, 32)
	copy(chainCode, entropy[:32])
	key := make([]byte, 32)
	copy(key, entropy[32:])
	if _, err := privKeyFromBytes(key); err != nil {
		return nil, err
	}

	parentFP := []byte{0x00, 0x00, 0x00, 0x00}
	return hdkeychain.NewExtendedKey(net.HDPrivateKeyID[:], key, chainCode, parentFP, 0, 0, true), nil
}

// DeriveHex returns the first length bytes of the entropy. length must be
// between 16 and 64.
func (d *Deriver) DeriveHex(root *hdkeychain.ExtendedKey, length, index uint32) ([]byte, error) {
	entropy, err := d.deriveApp(root, AppHex, Params{Length: length, Index: index})
	if err != nil {
		return nil, err
	}
	return entropy[:length], nil
}

// DeriveMnemonic encodes the first wordCount*4/3 bytes of the entropy as a
// BIP-39 mnemonic in lang. wordCount must be 12, 18 or 24.
func (d *Deriver) DeriveMnemonic(root *hdkeychain.ExtendedKey, lang Language, wordCount, index uint32) (string, error) {
	p := Params{Language: lang, WordCount: wordCount, Index: index}
	entropy, err := d.deriveApp(root, AppBIP39, p)
	if err != nil {
		return "", err
	}
	return entropyToMnemonic(entropy[:wordCount*4/3], lang)
}

// DerivePasswordBase64 encodes the entropy with padded standard base64 and
// keeps the first length characters. length must be between 20 and 86.
func (d *Deriver) DerivePasswordBase64(root *hdkeychain.ExtendedKey, length, index uint32) (string, error) {
	entropy, err := d.deriveApp(root, AppPasswordBase64, Params{Length: length, Index: index})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(entropy)[:length], nil
}

// DeriveDRNG seeds a BIP85-DRNG stream with the entropy at index.
func (d *Deriver) DeriveDRNG(root *hdkeychain.ExtendedKey, index uint32) (io.Reader, error) {
	entropy, err := d.deriveApp(root, AppDRNG, Params{Index: index})
	if err != nil {
		return nil, err
	}
	return NewDRNG(entropy), nil
}

// privKeyFromBytes rejects scalars outside [1, n-1] instead of letting
// btcec reduce them modulo the group order.
func privKeyFromBytes(b []byte) (*btcec.PrivateKey, error) {
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return nil, ErrUnusableKey
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}
