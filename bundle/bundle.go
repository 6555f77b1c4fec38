// Package bundle unpacks DDF XML documents from Microsoft's published CSP
// DDF ZIP bundles.
package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/AdamBaali/windows-mdm-commands/extract"
)

// XMLFiles returns every .xml entry of the ZIP as a document, in archive
// order. Non-XML entries are ignored. A corrupt archive or unreadable entry
// is an error; whether an entry parses as DDF is the caller's concern.
func XMLFiles(zipBytes []byte) ([]extract.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, errors.Wrap(err, "opening DDF bundle")
	}
	var docs []extract.Document
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "opening bundle entry %s", f.Name)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "reading bundle entry %s", f.Name)
		}
		docs = append(docs, extract.Document{Name: f.Name, Content: content})
	}
	return docs, nil
}
