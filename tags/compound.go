package tags

import (
	"fmt"

	"github.com/npillmayer/markup/dom"
)

// HTML creates a document root, see dom.NewDocument.
func HTML(items ...dom.Item) *dom.Element {
	return dom.NewDocument(items...)
}

// LabelFor creates a <label> for the form control with the given id.
func LabelFor(id string, items ...dom.Item) *dom.Element {
	return Label(append([]dom.Item{dom.Attr("for", id)}, items...)...)
}

// SelectWithItems creates a <select> element. Strings are wrapped into
// <option> elements, elements are appended as they are.
func SelectWithItems(items ...any) (*dom.Element, error) {
	sel := Select()
	for _, item := range items {
		switch it := item.(type) {
		case string:
			sel.Add(Option(dom.Text(it)))
		case *dom.Element:
			sel.Add(it)
		default:
			return nil, invalidItem("select", item)
		}
	}
	return sel, nil
}

// FormWithFields creates a <form> element holding the given fields, which
// must be elements or strings.
func FormWithFields(fields ...any) (*dom.Element, error) {
	form := Form()
	for _, field := range fields {
		switch f := field.(type) {
		case string:
			form.Add(dom.Text(f))
		case *dom.Element:
			form.Add(f)
		default:
			return nil, invalidItem("form", field)
		}
	}
	return form, nil
}

func invalidItem(tag string, item any) error {
	tracer().Errorf("invalid %s item of type %T", tag, item)
	return fmt.Errorf("%w: invalid %s item %v (type %T), expected an element or a string",
		dom.ErrValidation, tag, item, item)
}
