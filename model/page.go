package model

// Page represents a single document page with its layers. Every page
// starts with one empty layer, which is also the selected one.
type Page struct {
	width          float64
	height         float64
	backgroundName string
	layers         []*Layer
	selected       int
}

// NewPage creates a page of the given size with a single empty layer.
func NewPage(width, height float64) *Page {
	return &Page{
		width:  width,
		height: height,
		layers: []*Layer{NewLayer()},
	}
}

// Width returns the page width.
func (p *Page) Width() float64 {
	return p.width
}

// Height returns the page height.
func (p *Page) Height() float64 {
	return p.height
}

// SetSize changes the page dimensions. Non-positive values leave the
// corresponding dimension unchanged.
func (p *Page) SetSize(width, height float64) {
	if width > 0 {
		p.width = width
	}
	if height > 0 {
		p.height = height
	}
}

// BackgroundName returns the name of the page background.
func (p *Page) BackgroundName() string {
	return p.backgroundName
}

// SetBackgroundName names the page background.
func (p *Page) SetBackgroundName(name string) {
	p.backgroundName = name
}

// AddLayer appends a new empty layer and returns it.
func (p *Page) AddLayer() *Layer {
	l := NewLayer()
	p.layers = append(p.layers, l)
	return l
}

// LayerCount returns the number of layers on the page.
func (p *Page) LayerCount() int {
	return len(p.layers)
}

// Layer returns the i-th layer of the page (0-indexed).
func (p *Page) Layer(i int) *Layer {
	return p.layers[i]
}

// SelectedLayer returns the layer new elements are committed to.
func (p *Page) SelectedLayer() *Layer {
	return p.layers[p.selected]
}

// SelectedLayerIndex returns the index of the selected layer.
func (p *Page) SelectedLayerIndex() int {
	return p.selected
}

// SelectLayer changes the layer selection. Out-of-range indices are
// clamped to the valid range.
func (p *Page) SelectLayer(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(p.layers) {
		i = len(p.layers) - 1
	}
	p.selected = i
}

// IsAnnotated reports whether any layer of the page holds elements.
func (p *Page) IsAnnotated() bool {
	for _, l := range p.layers {
		if l.IsAnnotated() {
			return true
		}
	}
	return false
}
