package camtparser

import (
	"testing"

	"fjacquet/camt-extract/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractSingle(t *testing.T, details string) models.Transaction {
	t.Helper()
	p := mustParse(t, wrapStatement(minimalEntry("TX-1", "10.00", details)))
	txns, err := p.Transactions()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	return txns[0]
}

func TestUnstructuredRemittance(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls>
  <RmtInf>
    <Ustrd>a</Ustrd>
    <Ustrd>b</Ustrd>
    <Ustrd>c</Ustrd>
  </RmtInf>
</TxDtls></NtryDtls>`)

	assert.Equal(t, "a", tx[models.FieldRemittanceInformation])
	assert.Equal(t, "a b c", tx[models.FieldRemittanceInformationFull])
}

func TestSingleUnstructuredLine(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls>
  <RmtInf><Ustrd>Invoice 42</Ustrd></RmtInf>
</TxDtls></NtryDtls>`)

	assert.Equal(t, "Invoice 42", tx[models.FieldRemittanceInformation])
	assert.Equal(t, "Invoice 42", tx[models.FieldRemittanceInformationFull])
}

func TestBlankUnstructuredLinesAreSkippedInJoin(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls>
  <RmtInf>
    <Ustrd>first</Ustrd>
    <Ustrd>   </Ustrd>
    <Ustrd>last</Ustrd>
  </RmtInf>
</TxDtls></NtryDtls>`)

	assert.Equal(t, "first last", tx[models.FieldRemittanceInformationFull])
}

func TestStructuredRemittanceOverridesReference(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls>
  <RmtInf>
    <Ustrd>free text</Ustrd>
    <Strd>
      <CdtrRefInf><Ref>REF1</Ref></CdtrRefInf>
      <AddtlRmtInf>extra note</AddtlRmtInf>
    </Strd>
  </RmtInf>
</TxDtls></NtryDtls>`)

	assert.Equal(t, "REF1", tx[models.FieldRemittanceInformation])
	assert.Equal(t, "extra note", tx[models.FieldAdditionalRemittanceInformation])
	// The full-text field keeps tracking the unstructured lines.
	assert.Equal(t, "free text", tx[models.FieldRemittanceInformationFull])
}

func TestStructuredBlockWithoutReferenceDropsTheField(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls>
  <RmtInf>
    <Ustrd>free text</Ustrd>
    <Strd><AddtlRmtInf>note only</AddtlRmtInf></Strd>
  </RmtInf>
</TxDtls></NtryDtls>`)

	// The structured block wins even when its reference is absent.
	_, ok := tx[models.FieldRemittanceInformation]
	assert.False(t, ok)
	assert.Equal(t, "note only", tx[models.FieldAdditionalRemittanceInformation])
	assert.Equal(t, "free text", tx[models.FieldRemittanceInformationFull])
}

func TestStructuredRemittanceWithoutAdditionalInfo(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls>
  <RmtInf>
    <Strd><CdtrRefInf><Ref>RF18-5390-0754-7034</Ref></CdtrRefInf></Strd>
  </RmtInf>
</TxDtls></NtryDtls>`)

	assert.Equal(t, "RF18-5390-0754-7034", tx[models.FieldRemittanceInformation])
	_, ok := tx[models.FieldAdditionalRemittanceInformation]
	assert.False(t, ok)
}

func TestEmptyRemittanceBlockYieldsNoFields(t *testing.T) {
	tx := extractSingle(t, `<NtryDtls><TxDtls><RmtInf/></TxDtls></NtryDtls>`)

	for _, key := range []string{
		models.FieldRemittanceInformation,
		models.FieldRemittanceInformationFull,
		models.FieldAdditionalRemittanceInformation,
	} {
		_, ok := tx[key]
		assert.False(t, ok, "key %s must be absent", key)
	}
}
