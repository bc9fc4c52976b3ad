package template

import "fmt"

// catalog lists the ten templates in display order. Each layout variant is
// used by exactly one template.
var catalog = []Template{
	{ID: "minimal", DisplayName: "Minimal", VibeLabel: "Sobrio", Palette: [3]string{"#0f172a", "#1f2937", "#334155"}, LayoutVariant: VariantLeftTag},
	{ID: "classic", DisplayName: "Clásica", VibeLabel: "Formal", Palette: [3]string{"#4338ca", "#3730a3", "#312e81"}, LayoutVariant: VariantTopBar},
	{ID: "modern", DisplayName: "Moderna", VibeLabel: "Actual", Palette: [3]string{"#059669", "#047857", "#065f46"}, LayoutVariant: VariantSidebar},
	{ID: "elegant", DisplayName: "Elegante", VibeLabel: "Premium", Palette: [3]string{"#e11d48", "#be123c", "#9f1239"}, LayoutVariant: VariantSplitHeader},
	{ID: "tech", DisplayName: "Tech", VibeLabel: "Start-up", Palette: [3]string{"#0891b2", "#0e7490", "#155e75"}, LayoutVariant: VariantChip},
	{ID: "bold", DisplayName: "Bold", VibeLabel: "Destacado", Palette: [3]string{"#f59e0b", "#d97706", "#b45309"}, LayoutVariant: VariantBigTotal},
	{ID: "mono", DisplayName: "Monocromo", VibeLabel: "Minimal extremo", Palette: [3]string{"#0a0a0a", "#262626", "#525252"}, LayoutVariant: VariantMonoFrame},
	{ID: "art", DisplayName: "Artístico", VibeLabel: "Creativo", Palette: [3]string{"#c026d3", "#a21caf", "#86198f"}, LayoutVariant: VariantAngled},
	{ID: "paper", DisplayName: "Papel", VibeLabel: "Clásico moderno", Palette: [3]string{"#65a30d", "#4d7c0f", "#3f6212"}, LayoutVariant: VariantStamp},
	{ID: "blueprint", DisplayName: "Blueprint", VibeLabel: "Ingeniería", Palette: [3]string{"#1d4ed8", "#1e40af", "#1e3a8a"}, LayoutVariant: VariantGridLines},
}

var byID = func() map[string]Template {
	index := make(map[string]Template, len(catalog))
	for _, t := range catalog {
		if _, dup := index[t.ID]; dup {
			panic(fmt.Sprintf("template catalog: duplicate id %q", t.ID))
		}
		index[t.ID] = t
	}
	return index
}()

// ErrNotFound is returned when a template id is not in the catalog.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("template '%s' not found in catalog", e.ID)
}

// All returns the templates in display order. The returned slice is a copy.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Get retrieves a template by id.
func Get(id string) (Template, error) {
	t, ok := byID[id]
	if !ok {
		return Template{}, ErrNotFound{ID: id}
	}
	return t, nil
}

// MustGet retrieves a template by id and panics if it is unknown. Template
// ids only ever originate from the catalog itself, so a miss is a programming
// error, not a runtime condition.
func MustGet(id string) Template {
	t, err := Get(id)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the template new drafts start with.
func Default() Template {
	return catalog[0]
}
