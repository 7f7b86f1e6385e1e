package pipeline

import (
	"fmt"
	"io"

	"github.com/ppiankov/typechart/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes a standalone page with one table per type
func (r *Renderer) RenderHTML(w io.Writer, report *model.Report) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := elem(atom.Html, "lang", "en")
	doc.AppendChild(root)

	head := elem(atom.Head)
	appendAll(head,
		elem(atom.Meta, "charset", "utf-8"),
		elem(atom.Link, "rel", "stylesheet", "href", r.stylesheet),
		withText(elem(atom.Title), report.Title),
	)

	list := elem(atom.Ul, "class", "type-charts-list")
	for _, c := range report.Charts {
		li := elem(atom.Li)
		li.AppendChild(r.chartTable(c))
		list.AppendChild(li)
	}

	main := elem(atom.Div, "class", "main")
	appendAll(main,
		list,
		withText(elem(atom.P, "class", "footnote"), "* immunity / double resistance"),
	)

	body := elem(atom.Body)
	appendAll(body, withText(elem(atom.H1), report.Title), main)
	appendAll(root, head, body)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (r *Renderer) chartTable(c *model.MatchupChart) *html.Node {
	class := c.Type.Class()
	t := elem(atom.Table, "class", class+"-table")

	label := withText(elem(atom.Span, "class", "caption"), c.Type.Label())
	container := elem(atom.Div, "class", "caption-container "+class)
	container.AppendChild(label)
	relative := elem(atom.Div, "class", "relative")
	relative.AppendChild(container)
	caption := elem(atom.Caption)
	caption.AppendChild(relative)

	colgroup := elem(atom.Colgroup)
	appendAll(colgroup,
		elem(atom.Col, "span", "2"),
		elem(atom.Col, "class", "resist"),
		elem(atom.Col, "class", "neutral"),
		elem(atom.Col, "class", "super-effective"),
	)

	top := elem(atom.Tr)
	appendAll(top,
		elem(atom.Td, "rowspan", "2", "colspan", "2", "class", class),
		withText(elem(atom.Th, "scope", "colgroup", "colspan", "3"), "Damage To"),
	)
	sub := elem(atom.Tr)
	for _, h := range gridHeadings {
		sub.AppendChild(withText(elem(atom.Th, "scope", "col"), h))
	}
	thead := elem(atom.Thead)
	appendAll(thead, top, sub)

	tbody := elem(atom.Tbody)
	g := grid(c)
	for row := range g {
		tr := elem(atom.Tr)
		if row == 0 {
			side := withText(elem(atom.Span, "class", "sideways-lr"), "Damage From")
			th := elem(atom.Th, "scope", "rowgroup", "rowspan", "3")
			th.AppendChild(side)
			tr.AppendChild(th)
		}
		tr.AppendChild(withText(elem(atom.Th, "scope", "row"), gridHeadings[row]))
		for col := range g[row] {
			tr.AppendChild(r.htmlCell(g[row][col]))
		}
		tbody.AppendChild(tr)
	}

	appendAll(t, caption, colgroup, thead, tbody)
	return t
}

func (r *Renderer) htmlCell(c cell) *html.Node {
	var td *html.Node
	if c.class != "" {
		td = elem(atom.Td, "class", c.class)
	} else {
		td = elem(atom.Td)
	}

	switch {
	case c.empty():
	case r.collapsed(c):
		td.AppendChild(withText(elem(atom.Span, "class", "nn-count"), fmt.Sprintf("[…%d…]", c.size())))
	default:
		ul := elem(atom.Ul, "class", "type-list")
		for _, t := range c.immune {
			span := withText(elem(atom.Span), t.Abbr())
			span.AppendChild(withText(elem(atom.Span, "class", "immune-symbol"), "*"))
			li := elem(atom.Li, "class", t.Class()+" immune")
			li.AppendChild(span)
			ul.AppendChild(li)
		}
		for _, t := range c.ordinary {
			li := elem(atom.Li, "class", t.Class())
			li.AppendChild(withText(elem(atom.Span), t.Abbr()))
			ul.AppendChild(li)
		}
		td.AppendChild(ul)
	}
	return td
}

// elem creates an element node; attrs are key/value pairs
func elem(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return n
}

func appendAll(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		parent.AppendChild(c)
	}
}
