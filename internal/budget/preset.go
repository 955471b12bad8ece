package budget

// Preset is a reusable allocation plan for new wallets.
type Preset struct {
	ID          string     `json:"id" example:"preset-50-30-20"`                                             // ID of the preset
	Name        string     `json:"name" example:"50/30/20 Rule"`                                             // Name of the preset
	Description string     `json:"description" example:"50% for needs, 30% for wants, and 20% for savings."` // Description of the preset
	Categories  []Category `json:"categories"`                                                               // The categories a wallet created from this preset gets
	Builtin     bool       `json:"builtin" example:"true"`                                                   // Is this a preset that is always available?
}

var builtinPresets = []Preset{
	{
		ID:          "preset-50-30-20",
		Name:        "50/30/20 Rule",
		Description: "A simple budgeting method: 50% for needs, 30% for wants, and 20% for savings and debt repayment.",
		Categories: []Category{
			{Name: "Needs", Percentage: 50, Color: "#3B82F6"},
			{Name: "Wants", Percentage: 30, Color: "#8B5CF6"},
			{Name: "Savings", Percentage: 20, Color: "#10B981"},
		},
		Builtin: true,
	},
	{
		ID:          "preset-zero-based",
		Name:        "Zero-Based Budget",
		Description: "Every dollar has a job. Allocate all income across detailed categories for precise control.",
		Categories: []Category{
			{Name: "Housing", Percentage: 25, Color: "#3B82F6"},
			{Name: "Transportation", Percentage: 15, Color: "#8B5CF6"},
			{Name: "Food", Percentage: 15, Color: "#10B981"},
			{Name: "Utilities", Percentage: 10, Color: "#F59E0B"},
			{Name: "Insurance", Percentage: 10, Color: "#EF4444"},
			{Name: "Savings", Percentage: 10, Color: "#06B6D4"},
			{Name: "Personal", Percentage: 10, Color: "#EC4899"},
			{Name: "Entertainment", Percentage: 5, Color: "#6366F1"},
		},
		Builtin: true,
	},
	{
		ID:          "preset-envelope",
		Name:        "Envelope System",
		Description: "A simplified approach dividing money into three main envelopes for easy management.",
		Categories: []Category{
			{Name: "Essentials", Percentage: 60, Color: "#3B82F6"},
			{Name: "Financial Goals", Percentage: 20, Color: "#10B981"},
			{Name: "Lifestyle", Percentage: 20, Color: "#8B5CF6"},
		},
		Builtin: true,
	},
}

// Presets returns the built-in presets. The returned slice is a copy and
// can be modified by the caller.
func Presets() []Preset {
	presets := make([]Preset, 0, len(builtinPresets))
	for _, p := range builtinPresets {
		presets = append(presets, p.clone())
	}

	return presets
}

// BuiltinPreset returns the built-in preset with the given ID.
func BuiltinPreset(id string) (Preset, bool) {
	for _, p := range builtinPresets {
		if p.ID == id {
			return p.clone(), true
		}
	}

	return Preset{}, false
}

func (p Preset) clone() Preset {
	p.Categories = append([]Category(nil), p.Categories...)
	return p
}
