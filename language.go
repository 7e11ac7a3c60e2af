// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language is the BIP-85 code of a BIP-39 wordlist. It is used as a
// hardened path component of the mnemonic application.
type Language uint32

// Language codes registered by BIP-85.
const (
	English Language = iota
	Japanese
	Korean
	Spanish
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Czech
)

var languageNames = map[Language]string{
	English:            "english",
	Japanese:           "japanese",
	Korean:             "korean",
	Spanish:            "spanish",
	ChineseSimplified:  "chinese-simplified",
	ChineseTraditional: "chinese-traditional",
	French:             "french",
	Italian:            "italian",
	Czech:              "czech",
}

// Wordlist returns the BIP-39 wordlist for the language, or nil if the code
// is not registered.
func (l Language) Wordlist() []string {
	switch l {
	case English:
		return wordlists.English
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	case ChineseSimplified:
		return wordlists.ChineseSimplified
	case ChineseTraditional:
		return wordlists.ChineseTraditional
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Czech:
		return wordlists.Czech
	}
	return nil
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language(%d)", uint32(l))
}

// go-bip39 keeps the active wordlist in package state.
var wordlistMu sync.Mutex

// entropyToMnemonic encodes entropy with the wordlist of lang, restoring
// whatever wordlist go-bip39 had installed before.
func entropyToMnemonic(entropy []byte, lang Language) (string, error) {
	list := lang.Wordlist()
	if list == nil {
		return "", InvalidLanguageError(lang)
	}

	wordlistMu.Lock()
	defer wordlistMu.Unlock()

	prev := bip39.GetWordList()
	bip39.SetWordList(list)
	defer bip39.SetWordList(prev)

	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("could not create a mnemonic set of words: %w", err)
	}
	return words, nil
}
