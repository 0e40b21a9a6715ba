/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credoffer holds the issue-credential offer-credential message model and its
// conversion to and from the legacy CRED_OFFER schema spoken by older agents.
//
// Packages for end developer usage
//
// pkg/didcomm/protocol/issuecredential: The offer-credential message, its builder methods and the
// FromLegacy / ToLegacy conversions.
//
// pkg/didcomm/protocol/issuecredential/legacy: The legacy CRED_OFFER schema.
//
// pkg/didcomm/protocol/decorator: Attachment and thread decorators, attachment encoding and decoding.
//
// pkg/didcomm/common/service: DIDCommMsgMap, the envelope handed over to transport.
//
// Basic workflow
//
//  1. Build an offer with issuecredential.CreateOffer and its Set / Add methods.
//  2. Convert at the boundary with older agents using issuecredential.FromLegacy or issuecredential.ToLegacy.
//  3. Call ToDIDCommMsg to hand the offer over to transport.
package credoffer
