package camt_test

import (
	"testing"

	"fjacquet/camt-extract/pkg/camt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08">
  <BkToCstmrStmt>
    <GrpHdr>
      <MsgId>MSG-FACADE</MsgId>
      <CreDtTm>2024-02-01T08:30:00Z</CreDtTm>
    </GrpHdr>
    <Stmt>
      <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id><Ccy>CHF</Ccy></Acct>
      <Ntry>
        <Amt Ccy="CHF">10.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2024-01-15</Dt></BookgDt>
        <ValDt><Dt>2024-01-16</Dt></ValDt>
        <AcctSvcrRef>TX-1</AcctSvcrRef>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestFacadeExtraction(t *testing.T) {
	p, err := camt.New([]byte(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "camt.053.001.08", p.Version())

	hdr, err := p.GroupHeader()
	require.NoError(t, err)
	assert.Equal(t, "MSG-FACADE", hdr.MessageID)

	txns, err := p.Transactions()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "TX-1", txns[0]["TransactionID"])

	summaries, err := p.Statements()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "CHF", summaries[0].Currency)
}
