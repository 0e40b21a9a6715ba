/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package decorator

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	// ErrEncoding is returned when content cannot be represented as an attachment.
	ErrEncoding = errors.New("attachment encoding error")
	// ErrDecode is returned when attachment data is absent, corrupt or uses an unsupported encoding.
	ErrDecode = errors.New("attachment decode error")
)

// Thread thread data.
type Thread struct {
	ID             string         `json:"thid,omitempty"`
	PID            string         `json:"pthid,omitempty"`
	SenderOrder    *uint32        `json:"sender_order,omitempty"`
	ReceivedOrders map[string]int `json:"received_orders,omitempty"`
}

// Attachment is intended to provide the possibility to include files, links or even JSON payload to the message.
// To find out more please visit https://github.com/hyperledger/aries-rfcs/tree/master/concepts/0017-attachments
type Attachment struct {
	// ID is a JSON-LD construct that uniquely identifies attached content within the scope of a given message.
	ID string `json:"@id,omitempty"`
	// Description is an optional human-readable description of the content.
	Description string `json:"description,omitempty"`
	// MimeType describes the MIME type of the attached content. Optional but recommended.
	MimeType string `json:"mime-type,omitempty"`
	// Data is a JSON object that gives access to the actual content of the attachment.
	Data AttachmentData `json:"data,omitempty"`
}

// AttachmentData contains attachment payload. Exactly one of its content fields is expected to be set,
// the field that is set acts as the transfer encoding tag of the attachment.
type AttachmentData struct {
	// Base64 encoded data, when representing arbitrary content inline instead of via links. Optional.
	Base64 string `json:"base64,omitempty"`
	// JSON is a directly embedded JSON data, when representing content inline instead of via links,
	// and when the content is natively conveyable as JSON. Optional.
	JSON interface{} `json:"json,omitempty"`
	// Links is a list of zero or more locations at which the content may be fetched. Optional.
	Links []string `json:"links,omitempty"`
}

// Encoding reports the transfer encoding tag of the stored data.
func (d *AttachmentData) Encoding() AttachmentEncoding {
	switch {
	case d.Base64 != "":
		return EncodingBase64
	case d.JSON != nil:
		return EncodingJSON
	case len(d.Links) != 0:
		return EncodingLinks
	default:
		return ""
	}
}

// Fetch this attachment's contents.
//
// Inline JSON held as json.RawMessage is returned as stored. Any other inline JSON value,
// such as one decoded from a received message, is returned in its compact serialization.
func (d *AttachmentData) Fetch() ([]byte, error) {
	switch d.Encoding() {
	case EncodingBase64:
		contents, err := base64.StdEncoding.DecodeString(d.Base64)
		if err != nil {
			return nil, errors.Wrapf(ErrDecode, "failed to base64 decode attachment contents: %s", err)
		}

		return contents, nil
	case EncodingJSON:
		if raw, ok := d.JSON.(json.RawMessage); ok {
			return append([]byte(nil), raw...), nil
		}

		contents, err := json.Marshal(d.JSON)
		if err != nil {
			return nil, errors.Wrapf(ErrDecode, "failed to marshal json attachment contents: %s", err)
		}

		return contents, nil
	case EncodingLinks:
		return nil, errors.Wrapf(ErrDecode, "unsupported attachment encoding %q", EncodingLinks)
	default:
		return nil, errors.Wrap(ErrDecode, "no contents in this attachment")
	}
}
