package nanorm

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder selects the positional parameter style of a target database.
//
// Common choices:
//   - PlaceholderQuestion   → "?"           (MySQL, SQLite, DuckDB)
//   - PlaceholderDollar     → "$1, $2, …"  (PostgreSQL)
//   - PlaceholderAtP        → "@p1, @p2…"  (SQL Server)
//   - PlaceholderColonNum   → ":1, :2, …"  (Oracle)
type Placeholder int

const (
	PlaceholderQuestion Placeholder = iota
	PlaceholderDollar
	PlaceholderAtP
	PlaceholderColonNum
)

// PlaceholderFor picks a Placeholder from a driver name string.
func PlaceholderFor(driverName string) Placeholder {
	switch strings.ToLower(driverName) {
	case "pgx", "postgres", "postgresql", "lib/pq", "pg":
		return PlaceholderDollar
	case "sqlserver", "mssql":
		return PlaceholderAtP
	case "godror", "oracle", "goracle":
		return PlaceholderColonNum
	default:
		return PlaceholderQuestion
	}
}

// Rebind resolves :name tokens in query against the named entries of p and
// rewrites the resulting ? placeholders to the style ph. It returns the
// rewritten text and the positional argument list to execute it with.
//
// Slice and array values expand to one placeholder per element; an empty
// slice becomes NULL (so `IN (NULL)` matches no rows on most engines).
// []byte stays scalar. The scanner safely skips string literals, quoted
// identifiers, line and block comments, PostgreSQL ::casts, and
// $tag$…$tag$ blocks.
//
// Rebind is applied automatically by the executor when [Dialect] is set;
// it is exported for callers that assemble statements themselves.
func Rebind(query string, ph Placeholder, p *Params) (string, []any, error) {
	if p == nil {
		p = &Params{}
	}
	bound, args, err := expandNamed(query, p)
	if err != nil {
		return "", nil, err
	}
	return rewritePlaceholders(bound, ph), args, nil
}

type nameToken struct {
	name  string
	start int
	end   int
}

// expandNamed replaces each :name token with ?-placeholders bound to the
// matching named parameter. Positional parameters keep their insertion
// order relative to the statement's pre-existing ? placeholders only when
// the text has no named tokens; mixing both styles in one statement is the
// caller's risk, as it is with every SQL tool.
func expandNamed(query string, p *Params) (string, []any, error) {
	toks, err := findNamedTokens(query)
	if err != nil {
		return "", nil, err
	}
	if len(toks) == 0 {
		return query, p.positional(), nil
	}

	var b strings.Builder
	b.Grow(len(query))
	args := make([]any, 0, len(toks))
	last := 0

	for _, t := range toks {
		b.WriteString(query[last:t.start])

		val, ok := p.lookup(t.name)
		if !ok {
			return "", nil, fmt.Errorf("nanorm: no value bound for :%s", t.name)
		}

		rv := reflect.ValueOf(val)
		if isSliceOrArray(rv) {
			n := rv.Len()
			if n == 0 {
				b.WriteString("NULL")
			} else {
				for i := 0; i < n; i++ {
					if i > 0 {
						b.WriteByte(',')
					}
					b.WriteByte('?')
					args = append(args, rv.Index(i).Interface())
				}
			}
		} else {
			b.WriteByte('?')
			args = append(args, val)
		}
		last = t.end
	}
	b.WriteString(query[last:])
	return b.String(), append(args, p.positional()...), nil
}

func findNamedTokens(query string) ([]nameToken, error) {
	var out []nameToken
	i := 0
	for i < len(query) {
		r, w := utf8.DecodeRuneInString(query[i:])
		switch r {
		case '\'':
			j, err := skipSingleQuoted(query, i+w)
			if err != nil {
				return nil, err
			}
			i = j
			continue
		case '"':
			j, err := skipDoubleQuoted(query, i+w)
			if err != nil {
				return nil, err
			}
			i = j
			continue
		case '`':
			j, err := skipBacktickQuoted(query, i+w)
			if err != nil {
				return nil, err
			}
			i = j
			continue
		case '-':
			if hasPrefix(query[i:], "--") {
				i = skipLineComment(query, i+2)
				continue
			}
		case '/':
			if hasPrefix(query[i:], "/*") {
				j, err := skipBlockComment(query, i+2)
				if err != nil {
					return nil, err
				}
				i = j
				continue
			}
		case '$':
			if j, ok, err := skipDollarQuoted(query, i); err != nil {
				return nil, err
			} else if ok {
				i = j
				continue
			}
		case ':':
			if hasPrefix(query[i:], "::") {
				i += 2 // skip PG cast
				continue
			}
			start := i
			name, end := parseIdent(query, i+1)
			if name != "" {
				out = append(out, nameToken{name: name, start: start, end: end})
				i = end
				continue
			}
		}
		i += w
	}
	return out, nil
}

func rewritePlaceholders(query string, ph Placeholder) string {
	if ph == PlaceholderQuestion {
		return query
	}
	out := make([]byte, 0, len(query)+16)
	i, arg := 0, 1

	for i < len(query) {
		r, w := utf8.DecodeRuneInString(query[i:])
		switch r {
		case '\'':
			j, _ := skipSingleQuoted(query, i+w)
			out = append(out, query[i:j]...)
			i = j
			continue
		case '"':
			j, _ := skipDoubleQuoted(query, i+w)
			out = append(out, query[i:j]...)
			i = j
			continue
		case '`':
			j, _ := skipBacktickQuoted(query, i+w)
			out = append(out, query[i:j]...)
			i = j
			continue
		case '-':
			if hasPrefix(query[i:], "--") {
				j := skipLineComment(query, i+2)
				out = append(out, query[i:j]...)
				i = j
				continue
			}
		case '/':
			if hasPrefix(query[i:], "/*") {
				j, _ := skipBlockComment(query, i+2)
				out = append(out, query[i:j]...)
				i = j
				continue
			}
		case '$':
			if j, ok, _ := skipDollarQuoted(query, i); ok {
				out = append(out, query[i:j]...)
				i = j
				continue
			}
		case '?':
			switch ph {
			case PlaceholderDollar:
				out = append(out, '$')
				out = strconv.AppendInt(out, int64(arg), 10)
			case PlaceholderAtP:
				out = append(out, '@', 'p')
				out = strconv.AppendInt(out, int64(arg), 10)
			case PlaceholderColonNum:
				out = append(out, ':')
				out = strconv.AppendInt(out, int64(arg), 10)
			default:
				out = append(out, '?')
			}
			arg++
			i += w
			continue
		}
		out = append(out, query[i:i+w]...)
		i += w
	}
	return string(out)
}

func skipSingleQuoted(s string, i int) (int, error) {
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		i += w
		if r == '\'' {
			if i < len(s) && s[i] == '\'' {
				i++
				continue
			}
			return i, nil
		}
	}
	return 0, fmt.Errorf("nanorm: unterminated single-quoted string")
}

func skipDoubleQuoted(s string, i int) (int, error) {
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		i += w
		if r == '"' {
			if i < len(s) && s[i] == '"' {
				i++
				continue
			}
			return i, nil
		}
	}
	return 0, fmt.Errorf("nanorm: unterminated double-quoted identifier")
}

func skipBacktickQuoted(s string, i int) (int, error) {
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		i += w
		if r == '`' {
			if i < len(s) && s[i] == '`' {
				i++
				continue
			}
			return i, nil
		}
	}
	return 0, fmt.Errorf("nanorm: unterminated backtick-quoted identifier")
}

func skipLineComment(s string, i int) int {
	for i < len(s) {
		if s[i] == '\n' {
			return i + 1
		}
		i++
	}
	return i
}

func skipBlockComment(s string, i int) (int, error) {
	for i < len(s)-1 {
		if s[i] == '*' && s[i+1] == '/' {
			return i + 2, nil
		}
		i++
	}
	return 0, fmt.Errorf("nanorm: unterminated block comment")
}

// skipDollarQuoted handles $$...$$ and $tag$...$tag$ (PostgreSQL).
func skipDollarQuoted(s string, i int) (int, bool, error) {
	if s[i] != '$' {
		return 0, false, nil
	}
	j := i + 1
	for j < len(s) && s[j] != '$' && isTagChar(rune(s[j])) {
		j++
	}
	if j >= len(s) || s[j] != '$' {
		return 0, false, nil
	}
	tag := s[i : j+1]
	k := j + 1
	idx := strings.Index(s[k:], tag)
	if idx < 0 {
		return 0, true, fmt.Errorf("nanorm: unterminated dollar-quoted string")
	}
	return k + idx + len(tag), true, nil
}

func isTagChar(r rune) bool      { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
func hasPrefix(s, p string) bool { return len(s) >= len(p) && s[:len(p)] == p }

func parseIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		i += w
	}
	if i == start {
		return "", i
	}
	return s[start:i], i
}

func isSliceOrArray(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8 // []byte → scalar
	case reflect.Array:
		return true
	default:
		return false
	}
}
