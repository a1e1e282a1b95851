package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JiscSD/csw-simple-metadata/internal/testutil"
	"github.com/JiscSD/csw-simple-metadata/iso"
)

func loadDocument(t *testing.T, name string) *iso.Document {
	t.Helper()

	doc, err := iso.ParseBytes(testutil.Fixture(t, name))
	require.NoError(t, err)

	return doc
}

func mustIdentification(t *testing.T, doc *iso.Document) *iso.Element {
	t.Helper()

	ident, err := identification(doc)
	require.NoError(t, err)

	return ident
}

// reparse renders the document and parses it again so that assertions run
// against what would be sent to the catalogue.
func reparse(t *testing.T, doc *iso.Document) *iso.Document {
	t.Helper()

	blob, err := doc.Bytes()
	require.NoError(t, err)
	ret, err := iso.ParseBytes(blob)
	require.NoError(t, err)

	return ret
}
