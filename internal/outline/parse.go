package outline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse reads a summary document back. Every list item whose first block carries a link becomes a line,
// its depth given by how deeply the list is nested. Anything else in the document is ignored.
func Parse(src []byte) Document {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	var doc Document
	var visitList func(list *ast.List, depth int)
	visitList = func(list *ast.List, depth int) {
		for item := list.FirstChild(); item != nil; item = item.NextSibling() {
			for block := item.FirstChild(); block != nil; block = block.NextSibling() {
				if nested, ok := block.(*ast.List); ok {
					visitList(nested, depth+1)
					continue
				}
				if link := firstLink(block); link != nil {
					doc = append(doc, Line{Depth: depth, Title: string(link.Text(src)), Target: string(link.Destination)})
				}
			}
		}
	}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if list, ok := n.(*ast.List); ok {
			visitList(list, 0)
		}
	}
	return doc
}

func firstLink(block ast.Node) *ast.Link {
	for inline := block.FirstChild(); inline != nil; inline = inline.NextSibling() {
		if link, ok := inline.(*ast.Link); ok {
			return link
		}
	}
	return nil
}
