package api

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// newMultipartFile writes a single-file multipart body into buf and returns
// the Content-Type header value to use with it.
func newMultipartFile(t *testing.T, buf *bytes.Buffer, field, filename string, content []byte) string {
	t.Helper()

	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)

	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return mw.FormDataContentType()
}
