package xmlsmith

import (
	"strings"

	"github.com/xmlsmith/go-xmlsmith/entity"
)

// Select returns, in tree pre-order, every entity matching path.
//
// A path is a /-separated list of literal names matched right to left
// against a node and its ancestor chain: the node's own name must
// equal the last segment, its parent's the second-to-last, and so on.
// A node with fewer ancestors than the path has segments does not
// match. There are no wildcards.
func (d *Document) Select(path string) []entity.Entity {
	if d.root == nil {
		return nil
	}
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil
	}
	var res []entity.Entity
	d.root.Visit(func(e entity.Entity) bool {
		if matchPath(e, segments) {
			res = append(res, e)
		}
		return true
	})
	return res
}

func splitPath(path string) []string {
	var res []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			res = append(res, seg)
		}
	}
	return res
}

// matchPath walks the ancestor chain while consuming segments right to
// left.
func matchPath(e entity.Entity, segments []string) bool {
	cur := e
	for i := len(segments) - 1; i >= 0; i-- {
		if cur == nil {
			return false
		}
		if cur.Name() != segments[i] {
			return false
		}
		if p := cur.Parent(); p != nil {
			cur = p
		} else {
			cur = nil
		}
	}
	return true
}
