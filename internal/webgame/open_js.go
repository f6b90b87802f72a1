//go:build js

package webgame

import (
	"errors"
	"syscall/js"
)

// openURL opens url in a new browser context.
func openURL(url string) error {
	if w := js.Global().Call("open", url, "_blank"); w.IsNull() || w.IsUndefined() {
		return errors.New("popup blocked")
	}
	return nil
}

// pageURL returns the address of the page hosting the game.
func pageURL() string {
	return js.Global().Get("location").Get("href").String()
}
