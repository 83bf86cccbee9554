// Package hypermedia builds Mason documents.
//
// A Document keeps its namespaces and controls in insertion order so that
// responses are stable byte for byte, which the response cache relies on.
package hypermedia

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

const (
	// MediaType is the content type of every document this package renders.
	MediaType = "application/vnd.mason+json"

	Namespace     = "geometa"
	LinkRelations = "/geometa/link-relations#"

	ProfileUser     = "/profiles/user/"
	ProfileInsight  = "/profiles/insight/"
	ProfileFeedback = "/profiles/feedback/"
	ProfileError    = "/profiles/error-profile/"
)

// Control is a Mason hypermedia control.
type Control struct {
	Href           string  `json:"href"`
	IsHrefTemplate bool    `json:"isHrefTemplate,omitempty"`
	Title          string  `json:"title,omitempty"`
	Method         string  `json:"method,omitempty"`
	Encoding       string  `json:"encoding,omitempty"`
	Schema         *Schema `json:"schema,omitempty"`
}

// ErrorBody is the Mason @error element.
type ErrorBody struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages"`
}

type namespace struct {
	Name string `json:"name"`
}

type entry[T any] struct {
	name  string
	value T
}

// Document is a Mason document under construction. The zero value is not
// usable; call New.
type Document struct {
	typ        string
	data       interface{}
	items      []*Document
	namespaces []entry[namespace]
	controls   []entry[Control]
	err        *ErrorBody
}

// New starts a document of the given @type.
func New(typ string) *Document {
	return &Document{typ: typ}
}

// Type returns the @type of the document.
func (d *Document) Type() string { return d.typ }

// WithData sets the struct whose JSON fields become the document's data
// properties. v must encode as a JSON object.
func (d *Document) WithData(v interface{}) *Document {
	d.data = v
	return d
}

// Data returns the value set by WithData.
func (d *Document) Data() interface{} { return d.data }

// AddNamespace declares a link relation namespace.
func (d *Document) AddNamespace(prefix, uri string) *Document {
	for i := range d.namespaces {
		if d.namespaces[i].name == prefix {
			d.namespaces[i].value.Name = uri
			return d
		}
	}
	d.namespaces = append(d.namespaces, entry[namespace]{prefix, namespace{Name: uri}})
	return d
}

// AddControl appends a control. A control with the same name is replaced in place.
func (d *Document) AddControl(name string, ctrl Control) *Document {
	for i := range d.controls {
		if d.controls[i].name == name {
			d.controls[i].value = ctrl
			return d
		}
	}
	d.controls = append(d.controls, entry[Control]{name, ctrl})
	return d
}

// Link adds a plain navigation control.
func (d *Document) Link(name, href string) *Document {
	return d.AddControl(name, Control{Href: href})
}

// Get adds a titled GET control.
func (d *Document) Get(name, title, href string) *Document {
	return d.AddControl(name, Control{Href: href, Method: http.MethodGet, Title: title})
}

// Post adds a POST control taking a JSON body described by schema.
func (d *Document) Post(name, title, href string, schema *Schema) *Document {
	return d.AddControl(name, Control{
		Href: href, Method: http.MethodPost, Encoding: "json", Title: title, Schema: schema,
	})
}

// Edit adds the standard PUT control.
func (d *Document) Edit(title, href string, schema *Schema) *Document {
	return d.AddControl("edit", Control{
		Href: href, Method: http.MethodPut, Encoding: "json", Title: title, Schema: schema,
	})
}

// Delete adds the standard DELETE control.
func (d *Document) Delete(title, href string) *Document {
	return d.AddControl("delete", Control{Href: href, Method: http.MethodDelete, Title: title})
}

// Control returns the named control.
func (d *Document) Control(name string) (Control, bool) {
	for _, c := range d.controls {
		if c.name == name {
			return c.value, true
		}
	}
	return Control{}, false
}

// ControlNames lists control names in order.
func (d *Document) ControlNames() []string {
	names := make([]string, len(d.controls))
	for i, c := range d.controls {
		names[i] = c.name
	}
	return names
}

// AddItem appends an embedded document to the items array.
func (d *Document) AddItem(item *Document) *Document {
	d.items = append(d.items, item)
	return d
}

// WithItems makes the document a collection, so items renders even when empty.
func (d *Document) WithItems() *Document {
	if d.items == nil {
		d.items = []*Document{}
	}
	return d
}

// Items returns the embedded item documents.
func (d *Document) Items() []*Document { return d.items }

// SetError sets the @error element.
func (d *Document) SetError(message string, messages ...string) *Document {
	if messages == nil {
		messages = []string{}
	}
	d.err = &ErrorBody{Message: message, Messages: messages}
	return d
}

// ErrorElement returns the @error element, if any.
func (d *Document) ErrorElement() *ErrorBody { return d.err }

// MarshalJSON renders @type, the data properties, items, @namespaces,
// @controls and @error in that order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	w := objectWriter{buf: &buf}

	if d.typ != "" {
		if err := w.field("@type", d.typ); err != nil {
			return nil, err
		}
	}
	if d.data != nil {
		if err := w.inline(d.data); err != nil {
			return nil, err
		}
	}
	if d.items != nil {
		if err := w.field("items", d.items); err != nil {
			return nil, err
		}
	}
	if len(d.namespaces) > 0 {
		w.key("@namespaces")
		if err := writeOrdered(&buf, d.namespaces); err != nil {
			return nil, err
		}
	}
	if len(d.controls) > 0 {
		w.key("@controls")
		if err := writeOrdered(&buf, d.controls); err != nil {
			return nil, err
		}
	}
	if d.err != nil {
		if err := w.field("@error", d.err); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type objectWriter struct {
	buf   *bytes.Buffer
	count int
}

func (w *objectWriter) key(name string) {
	if w.count > 0 {
		w.buf.WriteByte(',')
	}
	w.count++
	k, _ := json.Marshal(name)
	w.buf.Write(k)
	w.buf.WriteByte(':')
}

func (w *objectWriter) field(name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	w.key(name)
	w.buf.Write(raw)
	return nil
}

// inline splices the members of a JSON object into the enclosing object.
func (w *objectWriter) inline(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return fmt.Errorf("data of type %T is not a JSON object", v)
	}
	members := bytes.TrimSpace(raw[1 : len(raw)-1])
	if len(members) == 0 {
		return nil
	}
	if w.count > 0 {
		w.buf.WriteByte(',')
	}
	w.count++
	w.buf.Write(members)
	return nil
}

func writeOrdered[T any](buf *bytes.Buffer, entries []entry[T]) error {
	w := objectWriter{buf: buf}
	buf.WriteByte('{')
	for _, e := range entries {
		if err := w.field(e.name, e.value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// Marshal encodes the document.
func Marshal(d *Document) ([]byte, error) {
	return json.Marshal(d)
}

// Write sends the document with the Mason media type.
func Write(c echo.Context, status int, d *Document) error {
	body, err := Marshal(d)
	if err != nil {
		return err
	}
	return c.Blob(status, MediaType, body)
}
