// vectors prints the BIP-85 test vectors for a master key, by default the
// one published with BIP-85, so results can be compared with other
// implementations.
//
// Usage:
//
//	go run ./scripts/vectors
//	go run ./scripts/vectors xprv9s21ZrQH143K2LBW...
//
// Or with stdin:
//
//	echo "xprv..." | go run ./scripts/vectors
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/complex-gh/bip85"
)

const publishedRoot = "xprv9s21ZrQH143K2LBWUUQRFXhucrQqBpKdRRxNVq2zBqsx8HVqFk2uYo8kmbaLLHRdqtQpUm98uKfu3vca1LqdGhUtyoFnCNkfmXRyPXLjbKb"

func main() {
	material := publishedRoot
	if len(os.Args) > 1 {
		material = os.Args[1]
	} else if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			material = strings.TrimSpace(scanner.Text())
		}
	}

	root, err := hdkeychain.NewKeyFromString(material)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := printVectors(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVectors(root *hdkeychain.ExtendedKey) error {
	for _, path := range []bip85.Path{
		{bip85.Hardened(0), bip85.Hardened(0)},
		{bip85.Hardened(0), bip85.Hardened(1)},
	} {
		entropy, err := bip85.Derive(root, path)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s\n\n", path.Absolute(), hex.EncodeToString(entropy))
	}

	for _, words := range []uint32{12, 18, 24} {
		p := bip85.Params{WordCount: words}
		res, err := bip85.DeriveApp(root, bip85.AppBIP39, p)
		if err != nil {
			return err
		}
		path, _ := bip85.AppBIP39.Path(p)
		fmt.Printf("%s\n%s\n\n", path.Absolute(), res.Mnemonic)
	}

	for _, v := range []struct {
		app bip85.Application
		p   bip85.Params
	}{
		{bip85.AppWIF, bip85.Params{}},
		{bip85.AppXPRV, bip85.Params{}},
		{bip85.AppHex, bip85.Params{Length: 64}},
		{bip85.AppPasswordBase64, bip85.Params{Length: 21}},
	} {
		res, err := bip85.DeriveApp(root, v.app, v.p)
		if err != nil {
			return err
		}
		path, _ := v.app.Path(v.p)

		var out string
		switch v.app {
		case bip85.AppWIF:
			out = res.WIF.String()
		case bip85.AppXPRV:
			out = res.XPRV.String()
		case bip85.AppHex:
			out = hex.EncodeToString(res.Entropy)
		case bip85.AppPasswordBase64:
			out = res.Password
		}
		fmt.Printf("%s\n%s\n\n", path.Absolute(), out)
	}
	return nil
}
