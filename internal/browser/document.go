//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"
)

// Document resolves mount points by element id.
//
// Listeners registered through it stay attached for the life of the page, so
// their js.Func values are never released.
type Document struct {
	doc js.Value
}

// NewDocument wraps the global document.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// Language returns the lang attribute of the root element.
func (d *Document) Language() string {
	lang := d.doc.Get("documentElement").Get("lang")
	if lang.Type() != js.TypeString {
		return ""
	}
	return lang.String()
}

func (d *Document) element(id string) (js.Value, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("element #%s not found", id)
	}
	return el, nil
}

// ReplaceChildren swaps the element's children for the parsed html.
func (d *Document) ReplaceChildren(id, html string) error {
	el, err := d.element(id)
	if err != nil {
		return err
	}
	el.Set("innerHTML", html)
	return nil
}

// SetText replaces the element's text content.
func (d *Document) SetText(id, text string) error {
	el, err := d.element(id)
	if err != nil {
		return err
	}
	el.Set("textContent", text)
	return nil
}

// Focus moves input focus to the element.
func (d *Document) Focus(id string) error {
	el, err := d.element(id)
	if err != nil {
		return err
	}
	el.Call("focus")
	return nil
}

// OnInput calls fn with the element's value after every input event.
func (d *Document) OnInput(id string, fn func(value string)) error {
	el, err := d.element(id)
	if err != nil {
		return err
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		value := ""
		if len(args) > 0 {
			if v := args[0].Get("target").Get("value"); v.Type() == js.TypeString {
				value = v.String()
			}
		}
		fn(value)
		return nil
	})
	el.Call("addEventListener", "input", cb)
	return nil
}

// OnDelegatedClick listens for clicks inside the element and calls fn with
// the attr value of the closest clicked descendant carrying attr.
func (d *Document) OnDelegatedClick(id, attr string, fn func(value string)) error {
	el, err := d.element(id)
	if err != nil {
		return err
	}
	selector := "[" + attr + "]"
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		target := args[0].Get("target")
		if target.Get("closest").Type() != js.TypeFunction {
			return nil
		}
		match := target.Call("closest", selector)
		if match.IsNull() || !el.Call("contains", match).Bool() {
			return nil
		}
		fn(match.Call("getAttribute", attr).String())
		return nil
	})
	el.Call("addEventListener", "click", cb)
	return nil
}
