/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package decorator

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const offerJSON = `{ "schema_id": "NcYxiDXkpYi6ov5FcYDi1e:2:gvt:1.0",  "cred_def_id":"NcYxiDXkpYi6ov5FcYDi1e:3:CL:1:tag" }`

func TestNewJSONAttachment(t *testing.T) {
	t.Run("base64 keeps string content verbatim", func(t *testing.T) {
		a, err := NewJSONAttachment("offer-0", offerJSON, EncodingBase64)
		require.NoError(t, err)
		require.Equal(t, "offer-0", a.ID)
		require.Equal(t, MimeTypeJSON, a.MimeType)
		require.Equal(t, base64.StdEncoding.EncodeToString([]byte(offerJSON)), a.Data.Base64)
		require.Nil(t, a.Data.JSON)

		content, err := a.Content()
		require.NoError(t, err)
		require.Equal(t, offerJSON, content)
	})

	t.Run("base64 is deterministic", func(t *testing.T) {
		a1, err := NewJSONAttachment("offer-0", offerJSON, EncodingBase64)
		require.NoError(t, err)
		a2, err := NewJSONAttachment("offer-0", offerJSON, EncodingBase64)
		require.NoError(t, err)
		require.Equal(t, a1, a2)
	})

	t.Run("object content is marshaled", func(t *testing.T) {
		a, err := NewJSONAttachment("offer-0", map[string]interface{}{"cred_def_id": "abc"}, EncodingBase64)
		require.NoError(t, err)

		content, err := a.Content()
		require.NoError(t, err)
		require.JSONEq(t, `{"cred_def_id":"abc"}`, content)
	})

	t.Run("inline json", func(t *testing.T) {
		a, err := NewJSONAttachment("offer-0", offerJSON, EncodingJSON)
		require.NoError(t, err)
		require.Empty(t, a.Data.Base64)
		require.Equal(t, EncodingJSON, a.Data.Encoding())

		content, err := a.Content()
		require.NoError(t, err)
		require.JSONEq(t, offerJSON, content)
	})

	t.Run("inline json survives the wire", func(t *testing.T) {
		a, err := NewJSONAttachment("offer-0", offerJSON, EncodingJSON)
		require.NoError(t, err)

		raw, err := json.Marshal(a)
		require.NoError(t, err)

		decoded := Attachment{}
		require.NoError(t, json.Unmarshal(raw, &decoded))

		content, err := decoded.Content()
		require.NoError(t, err)
		require.JSONEq(t, offerJSON, content)
	})

	t.Run("inline json rejects invalid text", func(t *testing.T) {
		_, err := NewJSONAttachment("offer-0", "{not json", EncodingJSON)
		require.True(t, errors.Is(err, ErrEncoding))
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		_, err := NewJSONAttachment("offer-0", offerJSON, AttachmentEncoding("base32"))
		require.True(t, errors.Is(err, ErrEncoding))
	})

	t.Run("unsupported values", func(t *testing.T) {
		for _, v := range []interface{}{nil, 42, true, []string{"a"}, func() {}} {
			_, err := NewJSONAttachment("offer-0", v, EncodingBase64)
			require.True(t, errors.Is(err, ErrEncoding), "value %v", v)
		}
	})
}

func TestAttachment_Content(t *testing.T) {
	t.Run("invalid utf-8", func(t *testing.T) {
		a := Attachment{Data: AttachmentData{Base64: base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe})}}

		_, err := a.Content()
		require.True(t, errors.Is(err, ErrDecode))
	})

	t.Run("corrupt base64", func(t *testing.T) {
		a := Attachment{Data: AttachmentData{Base64: "%%%"}}

		_, err := a.Content()
		require.True(t, errors.Is(err, ErrDecode))
	})
}

func TestFirstContent(t *testing.T) {
	t.Run("no attachments", func(t *testing.T) {
		_, err := FirstContent(nil)
		require.True(t, errors.Is(err, ErrDecode))
	})

	t.Run("first wins", func(t *testing.T) {
		first, err := NewJSONAttachment("a", `{"n":1}`, EncodingBase64)
		require.NoError(t, err)
		second, err := NewJSONAttachment("b", `{"n":2}`, EncodingBase64)
		require.NoError(t, err)

		content, err := FirstContent([]Attachment{first, second})
		require.NoError(t, err)
		require.Equal(t, `{"n":1}`, content)
	})
}
