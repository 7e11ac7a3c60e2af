package main

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/complex-gh/bip85"
	"github.com/matryer/is"
)

const testRoot = "xprv9s21ZrQH143K2LBWUUQRFXhucrQqBpKdRRxNVq2zBqsx8HVqFk2uYo8kmbaLLHRdqtQpUm98uKfu3vca1LqdGhUtyoFnCNkfmXRyPXLjbKb"

// TestParseRoot_ExtendedKey tests an xprv surrounded by whitespace.
func TestParseRoot_ExtendedKey(t *testing.T) {
	is := is.New(t)

	root, err := parseRoot("  "+testRoot+"\n", "", "mainnet")
	is.NoErr(err)
	is.Equal(root.String(), testRoot)

	wif, err := bip85.DeriveWIF(root, 0)
	is.NoErr(err)
	is.Equal(wif.String(), "Kzyv4uF39d4Jrw2W7UryTHwZr1zQVNk4dAFyqE6BuMrMh1Za7uhp")
}

// TestParseRoot_PublicKey tests that an xpub is refused.
func TestParseRoot_PublicKey(t *testing.T) {
	is := is.New(t)

	root, err := parseRoot(testRoot, "", "mainnet")
	is.NoErr(err)
	pub, err := root.Neuter()
	is.NoErr(err)

	_, err = parseRoot(pub.String(), "", "mainnet")
	is.True(err != nil)
}

// TestParseRoot_Mnemonic tests mnemonic roots, passphrases and networks.
func TestParseRoot_Mnemonic(t *testing.T) {
	is := is.New(t)

	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	mainKey, err := parseRoot(mnemonic, "", "mainnet")
	is.NoErr(err)
	is.True(mainKey.IsPrivate())
	is.True(mainKey.IsForNet(&chaincfg.MainNetParams))
	is.True(strings.HasPrefix(mainKey.String(), "xprv"))

	spaced, err := parseRoot("abandon  abandon abandon abandon abandon abandon\nabandon abandon abandon abandon abandon about", "", "mainnet")
	is.NoErr(err)
	is.Equal(spaced.String(), mainKey.String())

	withPass, err := parseRoot(mnemonic, "TREZOR", "mainnet")
	is.NoErr(err)
	is.True(withPass.String() != mainKey.String())

	test, err := parseRoot(mnemonic, "", "testnet3")
	is.NoErr(err)
	is.True(strings.HasPrefix(test.String(), "tprv"))

	_, err = parseRoot(mnemonic, "", "moonnet")
	is.True(err != nil)
}

// TestParseRoot_Invalid tests garbage input.
func TestParseRoot_Invalid(t *testing.T) {
	is := is.New(t)

	for _, material := range []string{"", "   ", "not a key", "abandon abandon abandon"} {
		_, err := parseRoot(material, "", "mainnet")
		is.True(err != nil)
	}
}

// TestGetLanguage tests names, tags and numeric codes.
func TestGetLanguage(t *testing.T) {
	tests := map[string]bip85.Language{
		"en":       bip85.English,
		"English":  bip85.English,
		"ja":       bip85.Japanese,
		"japanese": bip85.Japanese,
		"ko":       bip85.Korean,
		"es-419":   bip85.Spanish,
		"zh-Hant":  bip85.ChineseTraditional,
		"zh":       bip85.ChineseSimplified,
		"french":   bip85.French,
		"it":       bip85.Italian,
		"cs":       bip85.Czech,
		"0":        bip85.English,
		"8":        bip85.Czech,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			is := is.New(t)
			got, ok := getLanguage(in)
			is.True(ok)
			is.Equal(got, want)
		})
	}

	is := is.New(t)
	_, ok := getLanguage("9")
	is.True(!ok)
	_, ok = getLanguage("klingon")
	is.True(!ok)
}

// TestNostrKeyPair tests the npub/nsec encoding of a derived key.
func TestNostrKeyPair(t *testing.T) {
	is := is.New(t)

	root, err := parseRoot(testRoot, "", "mainnet")
	is.NoErr(err)
	wif, err := bip85.DeriveWIF(root, 0)
	is.NoErr(err)

	npub, nsec, err := nostrKeyPair(wif.PrivKey.Serialize())
	is.NoErr(err)
	is.True(strings.HasPrefix(npub, "npub1"))
	is.True(strings.HasPrefix(nsec, "nsec1"))

	npub2, nsec2, err := nostrKeyPair(wif.PrivKey.Serialize())
	is.NoErr(err)
	is.Equal(npub, npub2)
	is.Equal(nsec, nsec2)
}
