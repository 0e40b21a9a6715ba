/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package decorator

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AttachmentEncoding is the transfer encoding of attachment data.
type AttachmentEncoding string

const (
	// EncodingBase64 stores the content as standard padded base64.
	EncodingBase64 AttachmentEncoding = "base64"
	// EncodingJSON embeds the content as an inline JSON value.
	EncodingJSON AttachmentEncoding = "json"
	// EncodingLinks refers to remote content. It is recognised but cannot be decoded.
	EncodingLinks AttachmentEncoding = "links"

	// DefaultEncoding is used when no encoding is chosen by the caller.
	DefaultEncoding = EncodingBase64

	// MimeTypeJSON is the mime-type of JSON attachments.
	MimeTypeJSON = "application/json"
)

// NewJSONAttachment wraps JSON content into an attachment under the given transfer encoding.
//
// A string content is taken as JSON text and is stored byte for byte when base64 encoding is used.
// Any other content must marshal to a JSON object.
func NewJSONAttachment(id string, content interface{}, encoding AttachmentEncoding) (Attachment, error) {
	raw, err := jsonText(content)
	if err != nil {
		return Attachment{}, err
	}

	data := AttachmentData{}

	switch encoding {
	case EncodingBase64:
		data.Base64 = base64.StdEncoding.EncodeToString(raw)
	case EncodingJSON:
		if !json.Valid(raw) {
			return Attachment{}, errors.Wrap(ErrEncoding, "content is not valid JSON text")
		}

		data.JSON = json.RawMessage(raw)
	default:
		return Attachment{}, errors.Wrapf(ErrEncoding, "unsupported attachment encoding %q", encoding)
	}

	return Attachment{
		ID:       id,
		MimeType: MimeTypeJSON,
		Data:     data,
	}, nil
}

func jsonText(content interface{}) ([]byte, error) {
	switch c := content.(type) {
	case string:
		return []byte(c), nil
	case json.RawMessage:
		return c, nil
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, errors.Wrapf(ErrEncoding, "marshal attachment content: %s", err)
	}

	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.Wrapf(ErrEncoding, "unsupported JSON value %s", raw)
	}

	return raw, nil
}

// Content extracts the attachment content as text.
func (a *Attachment) Content() (string, error) {
	raw, err := a.Data.Fetch()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", errors.Wrap(ErrDecode, "attachment content is not valid UTF-8")
	}

	return string(raw), nil
}

// FirstContent extracts the content of the first attachment of the list.
func FirstContent(attachments []Attachment) (string, error) {
	if len(attachments) == 0 {
		return "", errors.Wrap(ErrDecode, "attachment is not found")
	}

	return attachments[0].Content()
}
