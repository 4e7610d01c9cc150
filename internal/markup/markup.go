// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package markup renders note markup to the plain text a reader would see,
// which is what the placeholder length of a locked note is based on.
package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements start a new line when rendered.
var blockElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Li:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Blockquote: true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
}

// PlainText returns the rendered text of content: tags dropped, entities
// unescaped, whitespace runs collapsed to one space, block elements
// separated by a line break and the result trimmed. Content that is not
// markup at all is returned trimmed with its whitespace collapsed.
func PlainText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// html.Parse only fails on reader errors, which a strings.Reader
		// never returns
		return strings.TrimSpace(content)
	}

	var b strings.Builder
	render(&b, doc)

	return strings.TrimSpace(b.String())
}

// PlaintextLength returns the number of characters in PlainText(content).
func PlaintextLength(content string) int {
	return utf8.RuneCountInString(PlainText(content))
}

func render(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		writeCollapsed(b, n.Data)
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
		if blockElements[n.DataAtom] {
			breakLine(b)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(b, c)
	}

	if n.Type == html.ElementNode && blockElements[n.DataAtom] {
		breakLine(b)
	}
}

func writeCollapsed(b *strings.Builder, text string) {
	for _, r := range text {
		if unicode.IsSpace(r) {
			if last, ok := lastRune(b); ok && (last == ' ' || last == '\n') {
				continue
			}
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
}

func breakLine(b *strings.Builder) {
	s := b.String()
	if s == "" || strings.HasSuffix(s, "\n") {
		return
	}
	// a space right before a break is not rendered
	if strings.HasSuffix(s, " ") {
		trimmed := strings.TrimRight(s, " ")
		b.Reset()
		b.WriteString(trimmed)
	}
	b.WriteByte('\n')
}

func lastRune(b *strings.Builder) (rune, bool) {
	s := b.String()
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}
