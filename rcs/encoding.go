package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"

	"golang.org/x/text/encoding/ianaindex"
)

// transcodeToUTF8 re-encodes a byte string decoded from a ,v literal
// (§4.B) under the assumption it was written in legacyEncoding rather
// than UTF-8. Old RCS files predate UTF-8 convention and commonly carry
// Latin-1 or similar author names and log messages; grounded on the
// teacher's own use of golang.org/x/text/encoding/ianaindex to handle
// non-UTF-8 legacy text (reposurgeon.go imports it for mailbox input).
// An empty legacyEncoding is a no-op: the content is assumed UTF-8.
func transcodeToUTF8(content, legacyEncoding string) (string, error) {
	if legacyEncoding == "" {
		return content, nil
	}
	enc, err := ianaindex.IANA.Encoding(legacyEncoding)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unknown input encoding %q: %v", legacyEncoding, err)
	}
	out, err := enc.NewDecoder().String(content)
	if err != nil {
		return "", fmt.Errorf("transcoding from %q: %v", legacyEncoding, err)
	}
	return out, nil
}
