package pageassist

import (
	"strings"

	"golang.org/x/net/html"
)

func isElement(n *html.Node, name string) bool {
	return n != nil && n.Type == html.ElementNode && strings.EqualFold(n.Data, name)
}

func attrValue(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	raw, ok := attrValue(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(raw) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	raw, _ := attrValue(n, "class")
	if raw == "" {
		setAttr(n, "class", class)
		return
	}
	setAttr(n, "class", raw+" "+class)
}

// findFirst walks the tree in document order and returns the first element
// for which match returns true.
func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && match(root) {
		return root
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}

func hasAncestor(n *html.Node, name string) bool {
	for p := n; p != nil; p = p.Parent {
		if isElement(p, name) {
			return true
		}
	}
	return false
}

func elementByID(root *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	return findFirst(root, func(n *html.Node) bool {
		v, ok := attrValue(n, "id")
		return ok && v == id
	})
}
