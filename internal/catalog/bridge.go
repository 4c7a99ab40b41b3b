// Package catalog extracts an addable product descriptor from a rendered
// product card. It is a presentation-to-data bridge: the descriptor holds
// whatever the card currently displays, not a catalog source of truth.
package catalog

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/techmart/storefront/internal/cart/domain"
)

// ExtractDescriptor reads a product card fragment and pulls out name,
// price, image, and category. Missing or unparseable pieces degrade to
// zero values; it never fails.
func ExtractDescriptor(r io.Reader) domain.ProductDescriptor {
	root, err := html.Parse(r)
	if err != nil {
		return domain.ProductDescriptor{}
	}

	var d domain.ProductDescriptor

	if info := findFirst(root, withClass("product-info")); info != nil {
		if h := findFirst(info, withTag("h4")); h != nil {
			d.Name = strings.TrimSpace(textOf(h))
		}
	}

	if p := findFirst(root, withClass("current-price")); p != nil {
		d.Price, _ = strconv.Atoi(digits(textOf(p)))
	}

	if wrap := findFirst(root, withClass("product-image")); wrap != nil {
		if img := findFirst(wrap, withTag("img")); img != nil {
			d.Image = attr(img, "src")
		}
	}

	card := findFirst(root, withClass("product-card"))
	if card == nil {
		card = findFirst(root, func(n *html.Node) bool {
			return n.Type == html.ElementNode && attr(n, "data-category") != ""
		})
	}
	if card != nil {
		d.Category = attr(card, "data-category")
	}

	return d
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func withTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func withClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
