package tools

// Override carries the style attributes a script explicitly supplied
// with a stroke request. Every field is independently optional: absence
// is tracked, not defaulted, because an unset field and an explicitly
// provided zero must resolve differently.
type Override struct {
	// Tool is the requested tool kind name. Empty means absent.
	Tool string

	HasWidth bool
	Width    float64

	HasColor bool
	Color    uint32

	HasFill bool
	Fill    int

	HasLineStyle bool
	LineStyle    string
}
