// Package template defines the static catalog of document templates. The
// catalog is fixed at process start; templates are never created or destroyed
// at runtime.
package template

// Variant names one of the ten spatial arrangements a document can use.
type Variant string

const (
	VariantLeftTag     Variant = "leftTag"
	VariantTopBar      Variant = "topBar"
	VariantSidebar     Variant = "sidebar"
	VariantSplitHeader Variant = "splitHeader"
	VariantChip        Variant = "chip"
	VariantBigTotal    Variant = "bigTotal"
	VariantMonoFrame   Variant = "monoFrame"
	VariantAngled      Variant = "angled"
	VariantStamp       Variant = "stamp"
	VariantGridLines   Variant = "gridLines"
)

// Template describes one catalog entry: identity, display metadata, a
// three-colour palette and the layout variant it renders with.
type Template struct {
	ID          string
	DisplayName string
	VibeLabel   string
	// Palette holds exactly three hex colours, darkest accent first. The
	// first entry is the default accent colour for new drafts.
	Palette       [3]string
	LayoutVariant Variant
}

// Accent returns the template's default accent colour.
func (t Template) Accent() string {
	return t.Palette[0]
}
