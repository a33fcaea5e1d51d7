package pipeline

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrPathRewrite indicates the rewriter could not be set up or a fragment
// could not be parsed.
var ErrPathRewrite = errors.New("path rewrite failed")

// PathRewriter rewrites relative img and link targets in markdown fragments
// so they resolve from the posts directory instead of the notebook directory.
//
// Rewrites:
//   - img[src]: relative paths to images next to the notebook
//   - a[href]: relative file paths (not anchors, not URLs)
//
// Leaves alone URLs, anchors, mailto links, absolute paths, and targets
// that would climb out of the notebook directory.
type PathRewriter struct {
	prefix string
}

// NewPathRewriter computes the web path from postsDir to sourceDir.
func NewPathRewriter(sourceDir, postsDir string) (*PathRewriter, error) {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}
	absPosts, err := filepath.Abs(postsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}
	rel, err := filepath.Rel(absPosts, absSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}
	return &PathRewriter{prefix: filepath.ToSlash(rel)}, nil
}

// Prefix returns the slash-separated path prepended to relative targets.
func (r *PathRewriter) Prefix() string {
	return r.prefix
}

// Rewrite returns the fragment with relative targets prefixed. Fragments with
// nothing to rewrite are returned byte-for-byte.
func (r *PathRewriter) Rewrite(fragment string) (string, error) {
	if r.prefix == "." || !mayContainTarget(fragment) {
		return fragment, nil
	}

	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}

	changed := false
	for _, n := range nodes {
		if r.rewriteNode(n) {
			changed = true
		}
	}
	if !changed {
		return fragment, nil
	}
	return renderFragment(nodes)
}

func mayContainTarget(fragment string) bool {
	lower := strings.ToLower(fragment)
	return strings.Contains(lower, "<img") || strings.Contains(lower, "<a")
}

// parseFragment parses content in a body context so no html/head/body
// wrappers are added.
func parseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

func renderFragment(nodes []*html.Node) (string, error) {
	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("%w: %v", ErrPathRewrite, err)
		}
	}
	return buf.String(), nil
}

func (r *PathRewriter) rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			changed = r.rewriteAttr(n, "src")
		case atom.A:
			changed = r.rewriteAttr(n, "href")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if r.rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

func (r *PathRewriter) rewriteAttr(n *html.Node, key string) bool {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}
		clean := path.Clean(attr.Val)
		if clean == ".." || strings.HasPrefix(clean, "../") {
			continue
		}
		n.Attr[i].Val = path.Join(r.prefix, clean)
		return true
	}
	return false
}

// isRelativePath returns true if the target should be rewritten.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	lower := strings.ToLower(p)
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#", "/"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	return !filepath.IsAbs(p)
}
