package bazel

import "fmt"

// value is a parsed literal: string, list, or dict. The region holds plain
// coordinates and URLs, so string escape sequences are not interpreted.
type value any

type list []value

// dict preserves source order; pinned license references are processed in
// declaration order.
type dict []entry

type entry struct {
	key value
	val value
}

// parser is a recursive-descent reader for the literal subset of Starlark
// allowed inside the sentinel region: NAME = <string|list|dict> bindings,
// '#' comments, and trailing commas. Function calls, arithmetic, and
// references are rejected, so manifest content is never executed.
type parser struct {
	src string
	pos int
}

func parseBindings(src string) (map[string]value, error) {
	p := &parser{src: src}
	out := make(map[string]value)
	for {
		p.skipSpace()
		if p.eof() {
			return out, nil
		}
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume('=') {
			return nil, p.errf("expected '=' after %s", name)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
}

func (p *parser) value() (value, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errf("unexpected end of region")
	}
	switch c := p.src[p.pos]; {
	case c == '[':
		return p.list()
	case c == '{':
		return p.dict()
	case c == '\'' || c == '"':
		return p.str()
	default:
		return nil, p.errf("unexpected character %q: only string, list, and dict literals are allowed", c)
	}
}

func (p *parser) list() (value, error) {
	p.pos++ // '['
	var out list
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errf("unterminated list")
		}
		if p.consume(']') {
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume(']') {
			return out, nil
		}
		return nil, p.errf("expected ',' or ']' in list")
	}
}

func (p *parser) dict() (value, error) {
	p.pos++ // '{'
	var out dict
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errf("unterminated dict")
		}
		if p.consume('}') {
			return out, nil
		}
		k, err := p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume(':') {
			return nil, p.errf("expected ':' after dict key")
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, entry{key: k, val: v})
		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume('}') {
			return out, nil
		}
		return nil, p.errf("expected ',' or '}' in dict")
	}
}

func (p *parser) str() (value, error) {
	quote := p.src[p.pos]
	p.pos++
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c == quote {
			s := p.src[start:p.pos]
			p.pos++
			return s, nil
		}
		if c == '\n' {
			break
		}
		p.pos++
	}
	return nil, p.errf("unterminated string")
}

func (p *parser) ident() (string, error) {
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c == '_' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' && p.pos > start {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", p.errf("expected a binding name")
	}
	return p.src[start:p.pos], nil
}

// skipSpace advances past whitespace and '#' comments.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '#':
			for !p.eof() && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) consume(c byte) bool {
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) errf(format string, args ...any) error {
	line := 1
	for _, c := range p.src[:p.pos] {
		if c == '\n' {
			line++
		}
	}
	return fmt.Errorf("artifacts region line %d: %s", line, fmt.Sprintf(format, args...))
}
