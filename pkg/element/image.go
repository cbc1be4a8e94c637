package element

// Image is a self-closing <img> element. The src and alt attributes are
// always emitted; alt defaults to the empty string when never set.
type Image struct {
	Src   string
	Alt   string
	Attrs []Attr
}

// NewImage creates an image node with the given source path.
func NewImage(src string) *Image {
	return &Image{Src: src}
}

// WithAlt sets the alt text.
func (i *Image) WithAlt(alt string) *Image {
	i.Alt = alt
	return i
}

// WithAttr sets an additional attribute. The last write for a given
// name wins; extra attributes render after src and alt in the order
// they were first set.
func (i *Image) WithAttr(key, value string) *Image {
	i.Attrs = setAttr(i.Attrs, key, value)
	return i
}

func (*Image) element() {}
