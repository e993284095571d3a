// Package unitparser turns a unit-expression string into an ordered list of
// ParsedUnit values, tokenizing a compound-unit expression grammar. It is
// the sole point where prefix/unit tie-break happens.
package unitparser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sambeau/unitconv/internal/lexer"
	"github.com/sambeau/unitconv/internal/prefixtab"
	"github.com/sambeau/unitconv/internal/qerrors"
	"github.com/sambeau/unitconv/internal/unittab"
)

// ParsedUnit is one tokenized sub-unit: an optional prefix, a unit name, and
// a non-zero integer exponent.
type ParsedUnit struct {
	Prefix string
	Unit   string
	Power  int
}

// Parse tokenizes and parses a unit-expression string into an ordered list
// of ParsedUnit. An empty string parses to an empty (dimensionless) list.
func Parse(input string) ([]ParsedUnit, error) {
	toks := tokenize(input)

	sides, err := splitOnSlash(toks)
	if err != nil {
		return nil, err
	}

	var out []ParsedUnit
	for sideIdx, side := range sides {
		units, err := parseSide(side)
		if err != nil {
			return nil, err
		}
		if sideIdx == 1 { // denominator: negate every power
			for i := range units {
				units[i].Power = -units[i].Power
			}
		}
		out = append(out, units...)
	}
	return out, nil
}

func tokenize(input string) []lexer.Token {
	l := lexer.New(input)
	var toks []lexer.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return toks
}

// splitOnSlash splits a token stream on SLASH into at most two sides
// (numerator, denominator). More than one SLASH is InvalidUnitString.
func splitOnSlash(toks []lexer.Token) ([][]lexer.Token, error) {
	var sides [][]lexer.Token
	var cur []lexer.Token
	for _, tok := range toks {
		if tok.Type == lexer.SLASH {
			sides = append(sides, cur)
			cur = nil
			continue
		}
		if tok.Type == lexer.EOF {
			continue
		}
		cur = append(cur, tok)
	}
	sides = append(sides, cur)
	if len(sides) > 2 {
		return nil, qerrors.New(qerrors.InvalidUnitString, "parse", "")
	}
	return sides, nil
}

// parseSide splits one side of the expression on DOT separators into
// sub-unit chunks, and parses each chunk as a single unit token. A side with
// no tokens at all (e.g. the numerator of "/s") is a valid empty side; a
// side with a DOT-separated empty chunk (e.g. "kg⋅⋅m") is not.
func parseSide(toks []lexer.Token) ([]ParsedUnit, error) {
	for len(toks) > 0 && toks[0].Type == lexer.DOT {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Type == lexer.DOT {
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return nil, nil
	}

	var chunks [][]lexer.Token
	var cur []lexer.Token
	for _, tok := range toks {
		if tok.Type == lexer.DOT {
			chunks = append(chunks, cur)
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	chunks = append(chunks, cur)

	var out []ParsedUnit
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			return nil, qerrors.New(qerrors.InvalidUnitString, "parse", "")
		}
		pu, err := parseChunk(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, pu)
	}
	return out, nil
}

// parseChunk parses a single "unit[^exp]" token run.
func parseChunk(toks []lexer.Token) (ParsedUnit, error) {
	if len(toks) == 0 || toks[0].Type != lexer.UNIT {
		return ParsedUnit{}, qerrors.New(qerrors.UnknownUnit, "parse", literalOf(toks))
	}
	name := toks[0].Literal
	power := 1
	rest := toks[1:]

	if len(rest) > 0 {
		if rest[0].Type != lexer.CARET {
			return ParsedUnit{}, qerrors.New(qerrors.InvalidUnitString, "parse", literalOf(toks))
		}
		if len(rest) < 2 || rest[1].Type != lexer.NUMBER {
			return ParsedUnit{}, qerrors.New(qerrors.InvalidExponent, "parse", name)
		}
		n, err := strconv.Atoi(rest[1].Literal)
		if err != nil {
			return ParsedUnit{}, qerrors.New(qerrors.InvalidExponent, "parse", rest[1].Literal)
		}
		if n == 0 {
			return ParsedUnit{}, qerrors.New(qerrors.InvalidExponent, "parse", rest[1].Literal)
		}
		power = n
		if len(rest) > 2 {
			return ParsedUnit{}, qerrors.New(qerrors.InvalidUnitString, "parse", literalOf(toks))
		}
	}

	prefix, unit, err := decomposeUnitName(name)
	if err != nil {
		return ParsedUnit{}, err
	}
	return ParsedUnit{Prefix: prefix, Unit: unit, Power: power}, nil
}

// decomposeUnitName applies the prefix/unit tie-break rule: exact match,
// then "_" custom, then 1-char metric prefix, then 2-char binary prefix.
func decomposeUnitName(name string) (prefix, unit string, err error) {
	if _, ok := unittab.Lookup(name); ok {
		return "", name, nil
	}
	if strings.HasPrefix(name, "_") && len(name) > 1 {
		return "", name, nil
	}

	if r, w := utf8.DecodeRuneInString(name); w > 0 && w < len(name) {
		p := string(r)
		rest := name[w:]
		if _, ok := prefixtab.LookupMetric(p); ok {
			if d, ok := unittab.Lookup(rest); ok && d.Prefixable {
				return p, rest, nil
			}
		}
	}

	if len(name) > 2 {
		r1, w1 := utf8.DecodeRuneInString(name)
		r2, w2 := utf8.DecodeRuneInString(name[w1:])
		p := string(r1) + string(r2)
		rest := name[w1+w2:]
		_ = r1
		_ = r2
		if _, ok := prefixtab.LookupBinary(p); ok {
			if d, ok := unittab.Lookup(rest); ok && d.BinaryPrefixable {
				return p, rest, nil
			}
		}
	}

	return "", "", qerrors.New(qerrors.UnknownUnit, "parse", name)
}

func literalOf(toks []lexer.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Literal)
	}
	return sb.String()
}
