package main

import (
	"log"

	"golang.design/x/clipboard"
)

// systemClipboard moves level JSON through the OS clipboard. It degrades to
// a no-op when the platform clipboard is unavailable.
type systemClipboard struct {
	ok bool
}

func newSystemClipboard() *systemClipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return &systemClipboard{}
	}
	return &systemClipboard{ok: true}
}

func (c *systemClipboard) Read() []byte {
	if c == nil || !c.ok {
		return nil
	}
	return clipboard.Read(clipboard.FmtText)
}

func (c *systemClipboard) Write(data []byte) bool {
	if c == nil || !c.ok {
		return false
	}
	clipboard.Write(clipboard.FmtText, data)
	return true
}
