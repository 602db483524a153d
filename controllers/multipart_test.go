package controllers_test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// multipartWriter fills body with fields and one file part and returns the
// content type to send.
func multipartWriter(t *testing.T, body *bytes.Buffer, fields map[string]string, fileField, fileName string) string {
	t.Helper()
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile(fileField, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return w.FormDataContentType()
}
