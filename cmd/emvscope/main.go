package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/emvscope/emvscope"
	"github.com/emvscope/emvscope/decode"
	"github.com/emvscope/emvscope/hexmask"
	"github.com/emvscope/emvscope/tlv"
)

func main() {
	tlvMode := flag.Bool("tlv", false, "parse the input as a TLV blob (auto-detected dialect) and decode every known tag")
	tvrMode := flag.Bool("tvr", false, "decode the input as Terminal Verification Results")
	cvrMode := flag.Bool("cvr", false, "decode the input as Card Verification Results")
	tsiMode := flag.Bool("tsi", false, "decode the input as Transaction Status Information")
	cvmResultsMode := flag.Bool("cvm-results", false, "decode the input as CVM Results")
	cvmListMode := flag.Bool("cvm-list", false, "decode the input as a CVM List")
	serviceCodeMode := flag.Bool("service-code", false, "decode the input as a magnetic stripe service code")
	maskChar := flag.String("mask", "", "character marking a redacted hex digit (overrides config)")
	configPath := flag.String("config", "", "path to a TOML config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := initLogger(*verbose)

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad config")
		}
	}
	if *maskChar != "" {
		if utf8.RuneCountInString(*maskChar) != 1 {
			logger.Fatal().Str("mask", *maskChar).Msg("mask must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(*maskChar)
		cfg.MaskRune = r
	}

	data, err := readInput(flag.Args(), cfg.MaskRune)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad input")
	}
	logger.Debug().Int("bytes", len(data)).Str("hex", data.Hex()).Msg("input decoded")

	r := &renderer{w: os.Stdout, showSeverity: cfg.ShowSeverity}
	switch {
	case *tvrMode:
		err = renderTag(r, data, "95")
	case *cvrMode:
		err = renderCVR(r, data)
	case *tsiMode:
		err = renderTag(r, data, "9B")
	case *cvmResultsMode:
		err = renderTag(r, data, "9F34")
	case *cvmListMode:
		err = renderTag(r, data, "8E")
	case *serviceCodeMode:
		err = renderTag(r, data, "5F30")
	case *tlvMode:
		fallthrough
	default:
		// No mode flag takes the auto-detect path too.
		err = renderTLV(r, &logger, data)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("decode failed")
	}
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Logger()
	if verbose {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}

// readInput takes the hex text from the arguments, or from stdin when no
// argument is given.
func readInput(args []string, maskRune rune) (emvscope.Bytes, error) {
	text := strings.Join(args, " ")
	if text == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		text = string(raw)
	}
	return hexmask.Parse(text, maskRune)
}

// renderTag runs a single registry decoder against a bare value supplied
// without its TLV framing.
func renderTag(r *renderer, data emvscope.Bytes, tagHex string) error {
	tag := mustTag(tagHex)
	entry, _ := decode.Lookup(tag)
	bd, err := entry.Decode(data, decode.Context{})
	if err != nil {
		if emvscope.IsKind(err, emvscope.ErrUnrecognised) && entry.UnrecognisedName != "" {
			fmt.Fprintf(os.Stdout, "%s\n", entry.UnrecognisedName)
			return nil
		}
		return err
	}
	r.breakdown(bd, 0)
	return nil
}

// renderCVR decodes a bare Card Verification Results value, which has no
// tag of its own because it normally lives inside the IAD.
func renderCVR(r *renderer, data emvscope.Bytes) error {
	bd, err := decode.DecodeCVR(data)
	if err != nil {
		return err
	}
	r.breakdown(bd, 0)
	return nil
}

func renderTLV(r *renderer, logger *zerolog.Logger, data emvscope.Bytes) error {
	format, nodes, err := tlv.Detect(data, tlv.DetectOptions{KnownTag: decode.Known})
	if err != nil {
		return err
	}
	logger.Debug().Stringer("format", format).Int("nodes", len(nodes)).Msg("dialect detected")
	r.reports(decode.Process(nodes), 0)
	return nil
}

func mustTag(tagHex string) []byte {
	tag, err := hex.DecodeString(tagHex)
	if err != nil {
		panic(err)
	}
	return tag
}
