package bundle

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func zipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestXMLFiles(t *testing.T) {
	a := assert.New(t)
	raw := zipBytes(t, map[string]string{
		"DDFv2/Reboot.xml":  "<MgmtTree/>",
		"DDFv2/Wipe.XML":    "<MgmtTree/>",
		"DDFv2/readme.txt":  "not xml",
		"DDFv2/Policy.json": "{}",
	})

	docs, err := XMLFiles(raw)
	a.NoError(err)
	a.Len(docs, 2)
	for _, doc := range docs {
		a.Contains([]string{"DDFv2/Reboot.xml", "DDFv2/Wipe.XML"}, doc.Name)
		a.Equal("<MgmtTree/>", string(doc.Content))
	}
}

func TestXMLFilesEmptyArchive(t *testing.T) {
	a := assert.New(t)
	docs, err := XMLFiles(zipBytes(t, nil))
	a.NoError(err)
	a.Empty(docs)
}

func TestXMLFilesCorruptArchive(t *testing.T) {
	a := assert.New(t)
	docs, err := XMLFiles([]byte("not a zip file"))
	a.Error(err)
	a.Nil(docs)
}
