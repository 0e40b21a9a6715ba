/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuecredential implements the offer-credential message of the issue-credential 1.0 protocol.
package issuecredential

import "github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/decorator"

const (
	// Name defines the protocol name.
	Name = "issue-credential"
	// SpecV1 defines the protocol spec V1.
	SpecV1 = "https://didcomm.org/issue-credential/1.0/"
	// OfferCredentialMsgTypeV1 defines the protocol offer-credential message type.
	OfferCredentialMsgTypeV1 = SpecV1 + "offer-credential"
	// CredentialPreviewMsgTypeV1 defines the protocol credential-preview inner object type.
	CredentialPreviewMsgTypeV1 = SpecV1 + "credential-preview"

	// OffersAttachID is the @id of the attachment carrying the libindy offer.
	OffersAttachID = "libindy-cred-offer-0"
)

// MimeType tells how the value of a preview attribute is interpreted.
type MimeType string

const (
	// MimeTypePlain is a plain text value.
	MimeTypePlain MimeType = "text/plain"
	// MimeTypeJSON is a value holding JSON text.
	MimeTypeJSON MimeType = "application/json"
)

// OfferCredential is a message sent by the Issuer to the potential Holder,
// describing the credential they intend to offer.
//
// OfferCredential values are never modified in place: the builder methods return
// a new value and leave the receiver untouched.
type OfferCredential struct {
	Type string `json:"@type,omitempty"`
	ID   string `json:"@id"`
	// Comment provides human readable information about this Credential Offer,
	// so the offer can be evaluated by human judgment.
	Comment string `json:"comment"`
	// CredentialPreview represents the credential data that Issuer is willing to issue.
	CredentialPreview PreviewCredential `json:"credential_preview"`
	// OffersAttach carries the underlying offer payload in its first attachment.
	OffersAttach []decorator.Attachment `json:"offers~attach"`
	Thread       *decorator.Thread      `json:"~thread,omitempty"`
}

// PreviewCredential is used to construct a preview of the data for the credential that is to be issued.
type PreviewCredential struct {
	Type       string      `json:"@type,omitempty"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute describes an attribute for a Preview Credential.
type Attribute struct {
	Name     string   `json:"name"`
	MimeType MimeType `json:"mime-type,omitempty"`
	Value    string   `json:"value"`
}
