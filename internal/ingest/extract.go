package ingest

import (
	"bytes"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// viewerFrameID is the id of the iframe embedding the real PDF on ABB
// library download pages.
const viewerFrameID = "mainFrame"

// pdfURLFromViewer parses an ABB library viewer page and returns the URL of
// the embedded PDF, resolved against pageURL when relative. Returns an
// extraction error when the expected iframe is absent or has no src.
func pdfURLFromViewer(pageHTML []byte, pageURL string) (string, error) {
	doc, err := html.Parse(bytes.NewReader(pageHTML))
	if err != nil {
		return "", extractErr("parse wrapper page HTML")
	}

	src := findViewerFrameSrc(doc)
	if src == "" {
		return "", extractErr("could not find PDF URL in wrapper page")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return src, nil
	}
	ref, err := url.Parse(src)
	if err != nil {
		return "", extractErr("could not find PDF URL in wrapper page")
	}

	return base.ResolveReference(ref).String(), nil
}

// findViewerFrameSrc walks the DOM for the viewer iframe's src attribute.
func findViewerFrameSrc(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Iframe {
		var id, src string
		for _, a := range n.Attr {
			switch a.Key {
			case "id":
				id = a.Val
			case "src":
				src = a.Val
			}
		}
		if id == viewerFrameID && src != "" {
			return src
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if src := findViewerFrameSrc(c); src != "" {
			return src
		}
	}
	return ""
}
