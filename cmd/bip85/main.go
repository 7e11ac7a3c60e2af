// Package main provides the bip85 CLI tool for deriving child secrets from a
// BIP-32 master key.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btclog"
	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/bip85"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	keyFile    string
	network    string
	passphrase string
	debugLevel string

	index     uint32
	hexLength uint32
	pwdLength uint32
	wordCount uint32
	language  string
	pathStr   string
	numBytes  int
	nostrKeys bool

	rootCmd = &cobra.Command{
		Use:   "bip85",
		Short: "Derive deterministic secrets from a BIP-32 master key (BIP-85)",
		Long: `Derive deterministic secrets from a BIP-32 master key (BIP-85).

The master key is read from --key-file, from a pipe on stdin, or from a
hidden prompt. It may be an extended private key (xprv/tprv) or a BIP-39
mnemonic, optionally combined with --passphrase.

SECURITY TIP: Never pass the master key as a command line argument. Pipe
it in or type it at the prompt so it is not saved in your shell history.`,
		Example: `  bip85 mnemonic --words 12
  bip85 mnemonic --words 24 --language japanese --index 3
  bip85 wif --index 0
  bip85 wif --nostr
  bip85 xprv --index 1
  bip85 hex --length 32
  bip85 password --length 21
  bip85 drng --bytes 128
  bip85 raw --path "0'/0'"
  cat master.txt | bip85 hex --length 64`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	mnemonicCmd = &cobra.Command{
		Use:     "mnemonic",
		Aliases: []string{"bip39"},
		Short:   "Derive a BIP-39 mnemonic (application 39')",
		Long: `Derive a BIP-39 mnemonic (application 39').

Valid word counts are 12, 18 and 24. Supported languages are English,
Japanese, Korean, Spanish, Chinese (simplified and traditional), French,
Italian and Czech.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			code, ok := getLanguage(language)
			if !ok {
				return fmt.Errorf("this language is not supported: %s", language)
			}
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				words, err := bip85.DeriveMnemonic(root, code, wordCount, index)
				if err != nil {
					return fmt.Errorf("could not derive %d-word mnemonic: %w", wordCount, err)
				}
				fmt.Println(words)
				return nil
			})
		},
	}

	wifCmd = &cobra.Command{
		Use:          "wif",
		Short:        "Derive a WIF private key (application 2')",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				wif, err := bip85.DeriveWIF(root, index)
				if err != nil {
					return fmt.Errorf("could not derive private key: %w", err)
				}
				fmt.Println(wif.String())

				if !nostrKeys {
					return nil
				}
				npub, nsec, err := nostrKeyPair(wif.PrivKey.Serialize())
				if err != nil {
					return err
				}
				fmt.Printf("%s (nostr public key aka \"nostr user\")\n", npub)
				fmt.Printf("%s (nostr secret key aka \"nostr pass\")\n", nsec)
				return nil
			})
		},
	}

	xprvCmd = &cobra.Command{
		Use:          "xprv",
		Short:        "Derive an extended private key (application 32')",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				xprv, err := bip85.DeriveXPRV(root, index)
				if err != nil {
					return fmt.Errorf("could not derive extended key: %w", err)
				}
				fmt.Println(xprv.String())
				return nil
			})
		},
	}

	hexCmd = &cobra.Command{
		Use:          "hex",
		Short:        "Derive 16 to 64 bytes of hex entropy (application 128169')",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				entropy, err := bip85.DeriveHex(root, hexLength, index)
				if err != nil {
					return fmt.Errorf("could not derive entropy: %w", err)
				}
				fmt.Println(hex.EncodeToString(entropy))
				return nil
			})
		},
	}

	passwordCmd = &cobra.Command{
		Use:          "password",
		Short:        "Derive a base64 password of 20 to 86 characters (application 707764')",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				pwd, err := bip85.DerivePasswordBase64(root, pwdLength, index)
				if err != nil {
					return fmt.Errorf("could not derive password: %w", err)
				}
				fmt.Println(pwd)
				return nil
			})
		},
	}

	drngCmd = &cobra.Command{
		Use:          "drng",
		Short:        "Read bytes from the BIP85-DRNG stream (application 0')",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if numBytes <= 0 {
				return fmt.Errorf("invalid byte count: %d", numBytes)
			}
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				drng, err := bip85.DeriveDRNG(root, index)
				if err != nil {
					return fmt.Errorf("could not seed DRNG: %w", err)
				}
				buf := make([]byte, numBytes)
				if _, err := io.ReadFull(drng, buf); err != nil {
					return fmt.Errorf("could not read DRNG: %w", err)
				}
				fmt.Println(hex.EncodeToString(buf))
				return nil
			})
		},
	}

	rawCmd = &cobra.Command{
		Use:   "raw",
		Short: "Derive the raw 64 bytes of entropy for a custom path",
		Long: `Derive the raw 64 bytes of entropy for a custom path.

The path is relative to the BIP-85 namespace 83696968', which may be
included or omitted. Hardened components are marked with ', h or H.`,
		Example:      `  bip85 raw --path "0'/0'"`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := bip85.ParsePath(pathStr)
			if err != nil {
				return fmt.Errorf("could not parse path: %w", err)
			}
			return withRoot(func(root *hdkeychain.ExtendedKey) error {
				entropy, err := bip85.Derive(root, path)
				if err != nil {
					return fmt.Errorf("could not derive %s: %w", path.Absolute(), err)
				}
				fmt.Println(hex.EncodeToString(entropy))
				return nil
			})
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for bip85.

To load completions:

Bash:
  $ source <(bip85 completion bash)

Zsh:
  $ bip85 completion zsh > "${fpath[1]}/_bip85"

Fish:
  $ bip85 completion fish | source

PowerShell:
  PS> bip85 completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&keyFile, "key-file", "f", "", "File holding the master xprv or mnemonic (\"-\" for stdin)")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "mainnet", "Network of a mnemonic master key (mainnet, testnet3, regtest, signet, simnet)")
	rootCmd.PersistentFlags().StringVar(&passphrase, "passphrase", "", "BIP-39 passphrase of a mnemonic master key")
	rootCmd.PersistentFlags().StringVar(&debugLevel, "debuglevel", "", "Log level for derivation paths written to stderr (trace, debug, info)")
	rootCmd.PersistentFlags().Uint32VarP(&index, "index", "i", 0, "Application index")

	mnemonicCmd.Flags().Uint32VarP(&wordCount, "words", "w", 24, "Word count (12, 18 or 24)") //nolint:mnd
	mnemonicCmd.Flags().StringVarP(&language, "language", "l", "en", "Language")
	hexCmd.Flags().Uint32Var(&hexLength, "length", 64, "Number of bytes (16 to 64)")           //nolint:mnd
	passwordCmd.Flags().Uint32Var(&pwdLength, "length", 21, "Number of characters (20 to 86)") //nolint:mnd
	drngCmd.Flags().IntVar(&numBytes, "bytes", 64, "Number of bytes to read")                  //nolint:mnd
	rawCmd.Flags().StringVarP(&pathStr, "path", "p", "", "Derivation path below m/83696968'")
	wifCmd.Flags().BoolVar(&nostrKeys, "nostr", false, "Also print the key as Nostr keys (npub/nsec)")
	_ = rawCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(mnemonicCmd, wifCmd, xprvCmd, hexCmd, passwordCmd, drngCmd, rawCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging wires a stderr logger into the library when --debuglevel is set.
func setupLogging(_ *cobra.Command, _ []string) error {
	if debugLevel == "" {
		return nil
	}
	level, ok := btclog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level: %s", debugLevel)
	}
	logger := btclog.NewBackend(os.Stderr).Logger(bip85.Subsystem)
	logger.SetLevel(level)
	bip85.UseLogger(logger)
	return nil
}

// withRoot reads and parses the master key, then runs fn. Errors are shown
// in a styled block on a terminal.
func withRoot(fn func(root *hdkeychain.ExtendedKey) error) error {
	material, err := readRootMaterial()
	if err != nil {
		return formatError(err)
	}
	root, err := parseRoot(material, passphrase, network)
	if err != nil {
		return formatError(err)
	}
	if err := fn(root); err != nil {
		return formatError(err)
	}
	return nil
}

// readRootMaterial returns the master key text from --key-file, a stdin pipe
// or a hidden prompt, in that order.
func readRootMaterial() (string, error) {
	f, err := openFileOrStdin(keyFile)
	if err != nil {
		return "", fmt.Errorf("could not read master key: %w", err)
	}
	if f == nil {
		bts, err := askRootMaterial()
		if err != nil {
			return "", err
		}
		return string(bts), nil
	}
	defer f.Close() //nolint:errcheck

	bts, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("could not read master key: %w", err)
	}
	return string(bts), nil
}

// openFileOrStdin returns nil when the master key has to be prompted for.
func openFileOrStdin(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	if path == "" {
		if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
			return os.Stdin, nil
		}
		return nil, nil
	}

	// G304: path is user-provided input, which is expected for a CLI tool
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	return f, nil
}

// parseRoot accepts an extended private key or a BIP-39 mnemonic. Mnemonic
// roots are turned into a master key for the named network.
func parseRoot(material, bip39Passphrase, networkName string) (*hdkeychain.ExtendedKey, error) {
	material = strings.TrimSpace(material)
	if material == "" {
		return nil, errors.New("no master key given")
	}

	if key, err := hdkeychain.NewKeyFromString(material); err == nil {
		if !key.IsPrivate() {
			return nil, errors.New("master key must be an extended private key, not a public one")
		}
		return key, nil
	}

	mnemonic := strings.Join(strings.Fields(material), " ")
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, bip39Passphrase)
	if err != nil {
		return nil, fmt.Errorf("master key is neither an extended private key nor a valid mnemonic: %w", err)
	}

	net, ok := bip85.NetworkByName(networkName)
	if !ok {
		return nil, fmt.Errorf("unknown network: %s", networkName)
	}
	key, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, fmt.Errorf("could not create master key from mnemonic: %w", err)
	}
	return key, nil
}

// nostrKeyPair encodes a 32-byte secp256k1 private key as npub/nsec.
func nostrKeyPair(privateKey []byte) (npub string, nsec string, err error) {
	privateKeyHex := hex.EncodeToString(privateKey)
	publicKeyHex, err := nostr.GetPublicKey(privateKeyHex)
	if err != nil {
		return "", "", fmt.Errorf("failed to compute nostr public key: %w", err)
	}

	npub, err = nip19.EncodePublicKey(publicKeyHex)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode public key: %w", err)
	}
	nsec, err = nip19.EncodePrivateKey(privateKeyHex)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode private key: %w", err)
	}
	return npub, nsec, nil
}

func askRootMaterial() ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	return readPassword("Enter the master xprv or mnemonic: ")
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read master key: %w", err)
	}
	return pass, nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError displays err in a styled block when stdout is a terminal and
// returns it so the command exits with a non-zero code.
func formatError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

var languages = map[lang.Tag]bip85.Language{
	lang.Chinese:              bip85.ChineseSimplified,
	lang.SimplifiedChinese:    bip85.ChineseSimplified,
	lang.TraditionalChinese:   bip85.ChineseTraditional,
	lang.Czech:                bip85.Czech,
	lang.AmericanEnglish:      bip85.English,
	lang.BritishEnglish:       bip85.English,
	lang.English:              bip85.English,
	lang.French:               bip85.French,
	lang.Italian:              bip85.Italian,
	lang.Japanese:             bip85.Japanese,
	lang.Korean:               bip85.Korean,
	lang.Spanish:              bip85.Spanish,
	lang.EuropeanSpanish:      bip85.Spanish,
	lang.LatinAmericanSpanish: bip85.Spanish,
}

// getLanguage resolves a language name, BCP 47 tag or BIP-85 language code.
func getLanguage(language string) (bip85.Language, bool) {
	if code, err := strconv.ParseUint(language, 10, 32); err == nil {
		l := bip85.Language(code)
		return l, l.Wordlist() != nil
	}

	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t := range languages {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return 0, false
	}
	if l, ok := languages[tag]; ok {
		return l, true
	}
	base, _ := tag.Base()
	l, ok := languages[lang.MustParse(base.String())]
	return l, ok
}
