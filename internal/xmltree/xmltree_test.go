package xmltree

import (
	"testing"

	"fjacquet/camt-extract/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08">
  <BkToCstmrStmt>
    <Stmt>
      <Id>STMT-1</Id>
      <Ntry>
        <Amt Ccy="CHF">12.50</Amt>
      </Ntry>
      <Ntry>
        <Amt Ccy="EUR">99.00</Amt>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestDecodeBuildsTree(t *testing.T) {
	root, err := DecodeBytes([]byte(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, "Document", root.Tag)
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:camt.053.001.08", root.Space)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "BkToCstmrStmt", root.Children[0].Tag)
}

func TestDecodeSkipsNamespaceDeclarations(t *testing.T) {
	root, err := DecodeBytes([]byte(sampleXML))
	require.NoError(t, err)

	// xmlns is reflected in Space, never stored as an attribute.
	assert.Empty(t, root.Attrs)
}

func TestDecodeRejectsMalformedXML(t *testing.T) {
	_, err := DecodeBytes([]byte("<Document><Stmt></Document>"))
	require.Error(t, err)

	var se *parsererror.StructuralError
	assert.ErrorAs(t, err, &se)
}

func TestDecodeRejectsEmptyInput(t *testing.T) {
	_, err := DecodeBytes([]byte(""))
	require.Error(t, err)

	var se *parsererror.StructuralError
	assert.ErrorAs(t, err, &se)
}

func TestFirstDescendant(t *testing.T) {
	root, err := DecodeBytes([]byte(sampleXML))
	require.NoError(t, err)

	id := root.FirstDescendant("Id")
	require.NotNil(t, id)
	assert.Equal(t, "STMT-1", id.Text)

	// First match in document order.
	amt := root.FirstDescendant("Amt")
	require.NotNil(t, amt)
	assert.Equal(t, "12.50", amt.Text)
	assert.Equal(t, "CHF", amt.Attr("Ccy"))

	assert.Nil(t, root.FirstDescendant("NoSuchTag"))
}

func TestFirstDescendantExcludesSelf(t *testing.T) {
	root, err := DecodeBytes([]byte(`<Dt><Dt>2024-01-31</Dt></Dt>`))
	require.NoError(t, err)

	inner := root.FirstDescendant("Dt")
	require.NotNil(t, inner)
	assert.Equal(t, "2024-01-31", inner.Text)
	assert.Nil(t, inner.FirstDescendant("Dt"))
}

func TestDescendantsOrder(t *testing.T) {
	root, err := DecodeBytes([]byte(sampleXML))
	require.NoError(t, err)

	amts := root.Descendants("Amt")
	require.Len(t, amts, 2)
	assert.Equal(t, "12.50", amts[0].Text)
	assert.Equal(t, "99.00", amts[1].Text)
}

func TestAttrOnNilNode(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.Attr("Ccy"))
	assert.Nil(t, n.FirstDescendant("Amt"))
	assert.Nil(t, n.Descendants("Amt"))
}
