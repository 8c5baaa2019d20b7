package model

// Layer holds an ordered list of elements on a page. Elements appended
// to a layer are owned by it.
type Layer struct {
	name     string
	visible  bool
	elements []Element
}

// NewLayer creates an empty, visible layer.
func NewLayer() *Layer {
	return &Layer{visible: true}
}

// Name returns the layer's name. It may be empty.
func (l *Layer) Name() string {
	return l.name
}

// SetName sets the layer's name.
func (l *Layer) SetName(name string) {
	l.name = name
}

// Visible reports whether the layer is shown.
func (l *Layer) Visible() bool {
	return l.visible
}

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(v bool) {
	l.visible = v
}

// Append adds an element at the end of the layer's element order,
// transferring ownership to the layer.
func (l *Layer) Append(e Element) {
	l.elements = append(l.elements, e)
}

// ElementCount returns the number of elements on the layer.
func (l *Layer) ElementCount() int {
	return len(l.elements)
}

// Element returns the i-th element of the layer.
func (l *Layer) Element(i int) Element {
	return l.elements[i]
}

// IsAnnotated reports whether the layer holds any elements.
func (l *Layer) IsAnnotated() bool {
	return len(l.elements) > 0
}
