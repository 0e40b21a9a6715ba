/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// NewPreviewCredential returns an empty credential preview.
func NewPreviewCredential() PreviewCredential {
	return PreviewCredential{
		Type:       CredentialPreviewMsgTypeV1,
		Attributes: []Attribute{},
	}
}

// AddValue returns a copy of the preview with one more attribute appended.
func (p PreviewCredential) AddValue(name, value string, mimeType MimeType) (PreviewCredential, error) {
	attr := Attribute{Name: name, MimeType: mimeType, Value: value}

	if err := attr.Validate(); err != nil {
		return PreviewCredential{}, err
	}

	attrs := make([]Attribute, len(p.Attributes), len(p.Attributes)+1)
	copy(attrs, p.Attributes)

	p.Attributes = append(attrs, attr)

	return p, nil
}

// Validate checks the attribute value is representable under its mime-type.
func (a *Attribute) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: attribute name is empty", ErrValidation)
	}

	switch a.MimeType {
	case MimeTypePlain:
		if !utf8.ValidString(a.Value) {
			return fmt.Errorf("%w: attribute %q is not valid UTF-8 text", ErrValidation, a.Name)
		}
	case MimeTypeJSON:
		if !json.Valid([]byte(a.Value)) {
			return fmt.Errorf("%w: attribute %q is not valid JSON", ErrValidation, a.Name)
		}
	default:
		return fmt.Errorf("%w: attribute %q has unsupported mime-type %q", ErrValidation, a.Name, a.MimeType)
	}

	return nil
}
