// Package query parses library search strings into clauses and free text.
//
// A clause is key=value where key is one of type, universe, series, author,
// tag or tags, and value is bare or wrapped in single or double quotes.
package query

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	nt "upnext/entity"
)

var keys = map[string]string{
	nt.KeyType:     nt.KeyType,
	nt.KeyUniverse: nt.KeyUniverse,
	nt.KeySeries:   nt.KeySeries,
	nt.KeyAuthor:   nt.KeyAuthor,
	nt.KeyTag:      nt.KeyTag,
	"tags":         nt.KeyTag,
}

// Parse tokenizes raw in a single pass.
// Recognized clauses are lifted into the clause map, later keys overwriting
// earlier ones, and the remainder, trimmed, is kept as free text.
func Parse(raw string) (qry nt.Query) {

	qry.Clauses = map[string]string{}
	var rest strings.Builder

	start := 0
	for pos := 0; pos < len(raw); {
		if pos > 0 && !isSpace(raw[pos-1]) {
			pos++
			continue
		}

		key, value, end, ok := token(raw, pos)
		if !ok {
			pos++
			continue
		}

		rest.WriteString(raw[start:pos])
		qry.Clauses[key] = strings.ToLower(value)

		start = end
		pos = end
	}
	rest.WriteString(raw[start:])

	qry.FreeText = strings.TrimSpace(rest.String())
	return
}

// AppendClause adds key=value to the end of raw, quoting value only when it
// holds whitespace or starts with a quote and is not quoted already.
// When no quoting can carry value through Parse, raw is returned unchanged
// and ok is false.
func AppendClause(raw, key, value string) (out string, ok bool) {

	value, ok = clauseValue(strings.TrimSpace(value))
	if !ok {
		out = raw
		return
	}

	clause := key + "=" + value

	out = strings.TrimRightFunc(raw, unicode.IsSpace)
	if out == "" {
		out = clause
		return
	}
	out += " " + clause
	return
}

// Parser parses search strings, remembering recent results.
type Parser struct {
	cache *lru.Cache
}

// NewParser creates a parser caching up to size parses.
func NewParser(size int) (parser *Parser, err error) {

	cache, err := lru.New(size)
	if err != nil {
		err = errors.Wrapf(err, "failed to create query cache of size %d", size)
		return
	}

	parser = &Parser{cache: cache}
	return
}

// Parse returns the parsed query for raw.
// Returned queries are shared and must not be modified.
func (parser *Parser) Parse(raw string) nt.Query {

	if parser == nil || parser.cache == nil {
		return Parse(raw)
	}

	if cached, ok := parser.cache.Get(raw); ok {
		return cached.(nt.Query)
	}

	qry := Parse(raw)
	parser.cache.Add(raw, qry)
	return qry
}

// unexported

// token matches key=value at pos, returning the normalized key, unquoted value
// and the offset just past the token.
func token(raw string, pos int) (key, value string, end int, ok bool) {

	eq := strings.IndexByte(raw[pos:], '=')
	if eq < 1 {
		return
	}

	name := raw[pos : pos+eq]
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return
	}
	key, ok = keys[strings.ToLower(name)]
	if !ok {
		return
	}
	ok = false

	at := pos + eq + 1
	if at >= len(raw) {
		return
	}

	switch quote := raw[at]; quote {
	case '"', '\'':
		stop := strings.IndexByte(raw[at+1:], quote)
		if stop < 0 {
			return
		}
		value = raw[at+1 : at+1+stop]
		end = at + stop + 2
	default:
		end = at
		for end < len(raw) && !isSpace(raw[end]) {
			end++
		}
		if end == at {
			return
		}
		value = raw[at:end]
	}

	ok = true
	return
}

// clauseValue renders value so that token reads it back unchanged.
func clauseValue(value string) (string, bool) {

	switch {
	case value == "":
		return "", false
	case quoted(value) && !strings.ContainsRune(value[1:len(value)-1], rune(value[0])):
		return value, true
	case value[0] != '"' && value[0] != '\'' && strings.IndexFunc(value, unicode.IsSpace) < 0:
		return value, true
	case !strings.Contains(value, `"`):
		return `"` + value + `"`, true
	case !strings.Contains(value, "'"):
		return "'" + value + "'", true
	}
	return "", false
}

func quoted(value string) bool {

	if len(value) < 2 {
		return false
	}

	first, last := value[0], value[len(value)-1]
	return first == last && (first == '"' || first == '\'')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
