package gopro

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/frebib/gopro-ctl/gopro/api"
)

// MediaNode is one entry in the camera's media tree: a directory with
// ordered children, or a single file. The zero value is neither and is
// rejected by Flatten.
type MediaNode struct {
	Name     string
	Dir      bool
	Children []MediaNode
}

// File returns a file node.
func File(name string) MediaNode {
	return MediaNode{Name: name}
}

// Directory returns a directory node with the given children, in
// order.
func Directory(name string, children ...MediaNode) MediaNode {
	return MediaNode{Name: name, Dir: true, Children: children}
}

// MediaList fetches and decodes the camera's media listing.
func (c *Camera) MediaList(ctx context.Context) ([]MediaNode, error) {
	body, err := c.transport.Get(ctx, c.MediaListURL())
	if c.instr != nil {
		c.instr.MediaListed(err)
	}
	if err != nil {
		return nil, err
	}

	var list api.MediaList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMediaTree, err)
	}

	nodes := make([]MediaNode, 0, len(list.Media))
	for _, raw := range list.Media {
		node, err := nodeFromWire(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// MediaPaths fetches the media listing and flattens it into relative
// file paths.
func (c *Camera) MediaPaths(ctx context.Context) ([]string, error) {
	nodes, err := c.MediaList(ctx)
	if err != nil {
		return nil, err
	}
	return Flatten(nodes)
}

// MediaURLs fetches the media listing and maps every file to the
// absolute URL it is served from.
func (c *Camera) MediaURLs(ctx context.Context) ([]string, error) {
	paths, err := c.MediaPaths(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = c.MediaFileURL(p)
	}
	return urls, nil
}

// nodeFromWire converts a raw wire node into the directory/file
// variant. A node with a children field is a directory regardless of
// its name; a node with only a file name is a file; anything else
// makes the whole listing malformed.
func nodeFromWire(raw api.MediaNode) (MediaNode, error) {
	switch {
	case raw.Files != nil:
		name := ""
		if raw.Dir != nil {
			name = *raw.Dir
		}
		children := make([]MediaNode, 0, len(*raw.Files))
		for _, rc := range *raw.Files {
			child, err := nodeFromWire(rc)
			if err != nil {
				return MediaNode{}, err
			}
			children = append(children, child)
		}
		return MediaNode{Name: name, Dir: true, Children: children}, nil
	case raw.Name != nil:
		return MediaNode{Name: *raw.Name}, nil
	default:
		return MediaNode{}, fmt.Errorf("%w: node is neither a file nor a directory", ErrMalformedMediaTree)
	}
}

// Flatten walks the tree depth-first and returns one /-separated path
// per file, in the exact order nodes appear in each level's child
// sequence. Directories are entered immediately when encountered, so
// every file below a directory is emitted before the directory's next
// sibling. Duplicate names at different positions yield duplicate
// entries; nothing is deduplicated.
func Flatten(nodes []MediaNode) ([]string, error) {
	paths := []string{}

	var walk func(prefix string, nodes []MediaNode) error
	walk = func(prefix string, nodes []MediaNode) error {
		for _, n := range nodes {
			if n.Dir {
				if err := walk(prefix+"/"+n.Name, n.Children); err != nil {
					return err
				}
				continue
			}
			if n.Name == "" {
				return fmt.Errorf("%w: node is neither a file nor a directory", ErrMalformedMediaTree)
			}
			paths = append(paths, prefix+"/"+n.Name)
		}
		return nil
	}

	if err := walk("", nodes); err != nil {
		return nil, err
	}
	return paths, nil
}
