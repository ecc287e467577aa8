package entity

// BookmarkNode is a node of the host's bookmark tree.
// Folders have children and no URL; leaves have a URL.
type BookmarkNode struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	URL      string          `json:"url,omitempty"`
	Children []*BookmarkNode `json:"children,omitempty"`
}

// IsFolder returns true if the node carries no URL.
func (n *BookmarkNode) IsFolder() bool {
	return n.URL == ""
}

// Bookmark is a flattened bookmark entry (a tree node that has a URL).
type Bookmark struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FlattenBookmarks walks the tree depth-first and returns every node that has a URL,
// in document order. A node with both a URL and children is emitted before its children.
func FlattenBookmarks(nodes []*BookmarkNode) []Bookmark {
	out := make([]Bookmark, 0)
	return appendBookmarks(out, nodes)
}

func appendBookmarks(out []Bookmark, nodes []*BookmarkNode) []Bookmark {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.URL != "" {
			out = append(out, Bookmark{ID: node.ID, Title: node.Title, URL: node.URL})
		}
		if len(node.Children) > 0 {
			out = appendBookmarks(out, node.Children)
		}
	}
	return out
}
