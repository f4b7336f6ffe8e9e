package html

import (
	"fmt"
	"strings"

	"github.com/zserge/o/internal/errors"
	"github.com/zserge/o/pkg/hooks"
	"github.com/zserge/o/pkg/vdom"
)

// Template parses tagged-template input into a single descriptor. It panics
// on malformed markup or when the input holds anything other than exactly
// one root node.
func Template(fragments []string, values ...any) *vdom.VNode {
	roots, err := ParseTemplate(fragments, values...)
	if err != nil {
		panic(err)
	}
	if len(roots) != 1 {
		panic(errors.Newf(errors.CategoryParse, "expected a single root node, got %d", len(roots)))
	}
	return roots[0]
}

// ParseTemplate parses tagged-template input into its root descriptors.
func ParseTemplate(fragments []string, values ...any) ([]*vdom.VNode, error) {
	p := newParser(fragments, values)
	roots, err := p.parseChildren("")
	if err != nil {
		return nil, err
	}
	nodes := make([]*vdom.VNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, asNode(root))
	}
	return nodes, nil
}

// Parse parses plain markup with no placeholders.
func Parse(markup string) ([]*vdom.VNode, error) {
	return ParseTemplate([]string{markup})
}

// MustParse parses plain markup into a single descriptor, panicking on
// malformed input.
func MustParse(markup string) *vdom.VNode {
	return Template([]string{markup})
}

// asNode converts a parsed child (descriptor or raw placeholder value) into
// a descriptor the way the builder would.
func asNode(v any) *vdom.VNode {
	if n, ok := v.(*vdom.VNode); ok {
		return n
	}
	return vdom.Text(v)
}

// parser is a recursive-descent parser over interleaved literal fragments
// and placeholder values. A placeholder is visible to the parser as a
// distinct token between two fragment positions.
type parser struct {
	fragments []string
	values    []any
	fi        int // index of the current fragment
	pos       int // byte offset within the current fragment
	line, col int
}

func newParser(fragments []string, values []any) *parser {
	if len(fragments) == 0 {
		fragments = []string{""}
	}
	return &parser{fragments: fragments, values: values, line: 1, col: 1}
}

// atValue reports whether the next token is a placeholder value.
func (p *parser) atValue() bool {
	return p.pos == len(p.fragments[p.fi]) && p.fi < len(p.values)
}

// takeValue consumes the placeholder between the current fragment and the
// next one.
func (p *parser) takeValue() any {
	v := p.values[p.fi]
	p.fi++
	p.pos = 0
	return v
}

// eof reports whether all input is consumed.
func (p *parser) eof() bool {
	if p.atValue() {
		return false
	}
	for p.pos == len(p.fragments[p.fi]) {
		if p.fi == len(p.fragments)-1 {
			return true
		}
		p.fi++
		p.pos = 0
	}
	return false
}

// peek returns the current literal byte. Callers must have checked eof and
// atValue first.
func (p *parser) peek() byte {
	return p.fragments[p.fi][p.pos]
}

// next consumes the current literal byte, tracking line and column.
func (p *parser) next() byte {
	c := p.fragments[p.fi][p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *parser) errf(format string, args ...any) error {
	return errors.Newf(errors.CategoryParse, format, args...).
		WithLocation("template", p.line, p.col)
}

// skipSpace consumes literal whitespace.
func (p *parser) skipSpace() {
	for !p.eof() && !p.atValue() && isSpace(p.peek()) {
		p.next()
	}
}

// parseChildren parses child content until EOF (parent == "") or until the
// parent's closing tag. Children are descriptors or raw placeholder values.
func (p *parser) parseChildren(parent string) ([]any, error) {
	var children []any
	for {
		if p.eof() {
			if parent != "" {
				return nil, p.errf("missing closing tag </%s>", parent).(*errors.Error).
					WithSuggestion(fmt.Sprintf("close the element with </%s> or make it self-closing", parent))
			}
			return children, nil
		}
		if p.atValue() {
			children = append(children, p.takeValue())
			continue
		}
		if p.peek() != '<' {
			text := p.parseText()
			// Indentation around markup lines is formatting, not content.
			if strings.ContainsRune(text, '\n') {
				text = strings.TrimSpace(text)
			}
			if strings.TrimSpace(text) != "" {
				children = append(children, text)
			}
			continue
		}
		// "<" at this point is either a closing tag or a nested element.
		if p.peekClosing() {
			name, err := p.parseClosingTag()
			if err != nil {
				return nil, err
			}
			if parent == "" {
				return nil, p.errf("unexpected closing tag </%s>", name)
			}
			if name != parent {
				return nil, p.errf("mismatched closing tag </%s>, expected </%s>", name, parent)
			}
			return children, nil
		}
		node, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
}

// parseText consumes literal text up to the next tag, placeholder, or EOF.
func (p *parser) parseText() string {
	var b strings.Builder
	for !p.eof() && !p.atValue() && p.peek() != '<' {
		b.WriteByte(p.next())
	}
	return b.String()
}

// peekClosing reports whether the parser sits on "</".
func (p *parser) peekClosing() bool {
	frag := p.fragments[p.fi]
	return p.pos+1 < len(frag) && frag[p.pos] == '<' && frag[p.pos+1] == '/'
}

// parseClosingTag consumes "</name>".
func (p *parser) parseClosingTag() (string, error) {
	p.next() // '<'
	p.next() // '/'
	name := p.parseName()
	if name == "" {
		return "", p.errf("missing tag name in closing tag")
	}
	p.skipSpace()
	if p.eof() || p.atValue() || p.peek() != '>' {
		return "", p.errf("missing > in closing tag </%s>", name)
	}
	p.next()
	return name, nil
}

// parseElement consumes one element: tag, attributes, and children unless
// the element is self-closing or void.
func (p *parser) parseElement() (*vdom.VNode, error) {
	p.next() // '<'

	var tag any
	var tagName string
	if p.atValue() {
		tag = p.takeValue()
		tagName = fmt.Sprintf("%v", tag)
	} else {
		tagName = p.parseName()
		if tagName == "" {
			return nil, p.errf("missing tag name").(*errors.Error).
				WithSuggestion("a tag is a name like <div> or a placeholder component")
		}
		tag = tagName
	}

	props := vdom.Props{}
	selfClosing := false
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errf("unterminated tag <%s>", tagName).(*errors.Error).
				WithSuggestion("add > to finish the opening tag")
		}
		if p.atValue() {
			// Placeholder in attribute position spreads a props map.
			v := p.takeValue()
			switch m := v.(type) {
			case vdom.Props:
				for k, val := range m {
					props[k] = val
				}
			case map[string]any:
				for k, val := range m {
					props[k] = val
				}
			default:
				return nil, p.errf("unexpected %T placeholder in attribute position", v)
			}
			continue
		}
		if p.peek() == '>' {
			p.next()
			break
		}
		if p.peek() == '/' {
			p.next()
			if p.eof() || p.atValue() || p.peek() != '>' {
				return nil, p.errf("expected > after / in <%s>", tagName)
			}
			p.next()
			selfClosing = true
			break
		}
		name := p.parseName()
		if name == "" {
			return nil, p.errf("malformed attribute in <%s>", tagName)
		}
		value, err := p.parseAttrValue(tagName)
		if err != nil {
			return nil, err
		}
		props[name] = value
	}

	var children []any
	if !selfClosing && !isVoid(tag) {
		var err error
		children, err = p.parseChildren(tagName)
		if err != nil {
			return nil, err
		}
	}

	return buildNode(tag, tagName, props, children)
}

// parseAttrValue parses the value after an attribute name. A bare name maps
// to true.
func (p *parser) parseAttrValue(tag string) (any, error) {
	if p.eof() || p.atValue() || p.peek() != '=' {
		return true, nil
	}
	p.next() // '='
	if p.atValue() {
		return p.takeValue(), nil
	}
	if p.eof() {
		return nil, p.errf("missing attribute value in <%s>", tag)
	}
	if c := p.peek(); c == '"' || c == '\'' {
		p.next()
		return p.parseQuoted(c, tag)
	}
	// Unquoted literal value.
	var b strings.Builder
	for !p.eof() && !p.atValue() && !isSpace(p.peek()) && p.peek() != '>' && p.peek() != '/' {
		b.WriteByte(p.next())
	}
	if b.Len() == 0 {
		return nil, p.errf("missing attribute value in <%s>", tag)
	}
	return b.String(), nil
}

// parseQuoted parses a quoted attribute value, concatenating literal runs
// and placeholders. A value that is exactly one placeholder keeps its
// dynamic type, so handlers and non-string values pass through intact.
func (p *parser) parseQuoted(quote byte, tag string) (any, error) {
	var parts []any
	var lit strings.Builder
	for {
		if p.atValue() {
			if lit.Len() > 0 {
				parts = append(parts, lit.String())
				lit.Reset()
			}
			parts = append(parts, p.takeValue())
			continue
		}
		if p.eof() {
			return nil, p.errf("unterminated attribute value in <%s>", tag).(*errors.Error).
				WithSuggestion(fmt.Sprintf("add a closing %c", quote))
		}
		c := p.next()
		if c == quote {
			break
		}
		lit.WriteByte(c)
	}
	if len(parts) == 0 {
		return lit.String(), nil
	}
	if lit.Len() > 0 {
		parts = append(parts, lit.String())
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(fmt.Sprint(part))
	}
	return b.String(), nil
}

// parseName consumes a tag or attribute name.
func (p *parser) parseName() string {
	var b strings.Builder
	for !p.eof() && !p.atValue() && isNameByte(p.peek()) {
		b.WriteByte(p.next())
	}
	return b.String()
}

// buildNode assembles the descriptor through the vdom builder so template
// output is shape-identical to explicit builder calls.
func buildNode(tag any, tagName string, props vdom.Props, children []any) (*vdom.VNode, error) {
	switch tag.(type) {
	case string, vdom.ComponentFunc, func(*hooks.Ctx, vdom.Props, []*vdom.VNode) *vdom.VNode:
	default:
		return nil, errors.Newf(errors.CategoryParse, "unsupported tag placeholder type %T", tag)
	}
	if len(props) == 0 {
		props = nil
	}
	return vdom.H(tag, props, children...), nil
}

func isVoid(tag any) bool {
	name, ok := tag.(string)
	return ok && vdom.IsVoidElement(name)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == ':'
}
