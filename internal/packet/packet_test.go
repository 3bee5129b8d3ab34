package packet

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	data, err := Bytes(content.MustLoad())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "%%EOF")
}

func TestWriteFailsOnBadQRInput(t *testing.T) {
	site := *content.MustLoad()
	site.Contact.InstagramURL = string(bytes.Repeat([]byte("x"), 5000))

	var buf bytes.Buffer
	err := Write(&buf, &site)
	assert.Error(t, err)
}

func TestQRCode(t *testing.T) {
	data, err := QRCode("https://www.instagram.com/eclipse_robotics/", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
