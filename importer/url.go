package importer

import (
	"net/url"
	"strings"
)

// ExportURL rewrites a document link into one that serves the rendered HTML
// of the document instead of the interactive editor.
//
// Recognised shapes:
//
//	https://host/document/d/<id>/edit?...   -> https://host/document/d/<id>/export?format=html
//	https://host/document/d/<id>/export?... -> https://host/document/d/<id>/export?format=html
//	https://host/document/d/e/<id>/pub?...  -> https://host/document/d/e/<id>/pub
//
// Anything else is returned unchanged.
func ExportURL(docURL string) string {
	u, err := url.Parse(docURL)
	if err != nil || u.Host == "" {
		return docURL
	}

	segs := strings.Split(u.Path, "/")
	d := indexOf(segs, "d")
	if d < 0 || d+1 >= len(segs) || segs[d+1] == "" {
		return docURL
	}

	id := segs[d+1]
	out := url.URL{Scheme: u.Scheme, Host: u.Host}

	if id == "e" {
		if d+2 >= len(segs) || segs[d+2] == "" {
			return docURL
		}
		// Published documents already serve HTML.
		out.Path = "/document/d/e/" + segs[d+2] + "/pub"
		return out.String()
	}

	out.Path = "/document/d/" + id + "/export"
	out.RawQuery = "format=html"
	return out.String()
}

func indexOf(segs []string, want string) int {
	for i, s := range segs {
		if s == want {
			return i
		}
	}
	return -1
}
