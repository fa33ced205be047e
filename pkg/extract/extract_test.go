package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/domain"
)

func TestTextPlainFile(t *testing.T) {
	text, err := Text("terms.txt", []byte("  These terms govern your use of the service.  "))
	require.NoError(t, err)
	assert.Equal(t, "These terms govern your use of the service.", text)
}

func TestTextUnknownExtensionTreatedAsPlain(t *testing.T) {
	text, err := Text("agreement.contract", []byte("Payment is due monthly."))
	require.NoError(t, err)
	assert.Equal(t, "Payment is due monthly.", text)
}

func TestTextEmptyFile(t *testing.T) {
	_, err := Text("empty.txt", []byte("   \n\t "))
	assert.ErrorIs(t, err, domain.ErrNoText)
}

func TestTextInvalidUTF8(t *testing.T) {
	_, err := Text("binary.txt", []byte{0xff, 0xfe, 0x00, 0x41})
	assert.ErrorIs(t, err, domain.ErrNoText)
}

func TestTextBrokenPDF(t *testing.T) {
	_, err := Text("scan.pdf", []byte("not a pdf at all"))
	assert.ErrorIs(t, err, domain.ErrNoText)
}
