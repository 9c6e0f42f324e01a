package osc

import (
	"encoding/base64"
	"strings"
)

// parseClipboard handles OSC 52 clipboard payloads of the form
// "selection;data".
//
// The selection identifier passes through verbatim; an empty selection is a
// valid, distinct target and is not defaulted. The data field is normally
// base64, but some upstream sources hand over pre-decoded text, so a failed
// decode falls back to the raw string rather than rejecting the payload.
func parseClipboard(payload string) []Action {
	selection, data, found := strings.Cut(payload, ";")
	if !found {
		return nil
	}

	// "?" asks to read the clipboard back. Never honored: the reply would
	// hand clipboard contents to whatever program emitted the sequence.
	if data == "?" {
		return nil
	}

	if data == "" {
		return []Action{{Kind: ActionClipboardCopy, Selection: selection}}
	}

	text := data
	if decoded, err := base64.StdEncoding.DecodeString(data); err == nil {
		text = string(decoded)
	} else if decoded, err := base64.RawStdEncoding.DecodeString(data); err == nil {
		// Some emitters strip the padding.
		text = string(decoded)
	}

	return []Action{{Kind: ActionClipboardCopy, Selection: selection, Data: text}}
}
