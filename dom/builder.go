package dom

// With runs build on child and attaches child to e when build returns.
// child is attached even if build fails or panics; the error of build is
// returned, a panic is re-raised after attachment.
//
//     err := page.With(dom.El("ul"), func(ul *dom.Element) error {
//         for _, item := range items {
//             ul.Add(dom.El("li", dom.Text(item)))
//         }
//         return nil
//     })
//
func (e *Element) With(child *Element, build func(*Element) error) error {
	if child == nil {
		return nil
	}
	defer e.Add(child)
	return build(child)
}
