package config

// Manifest is the on-disk shape of anvil.yaml.
type Manifest struct {
	Project    string         `yaml:"project"`
	LangStd    string         `yaml:"lang_std"`
	Compiler   string         `yaml:"compiler"`
	Includes   []string       `yaml:"includes"`
	Targets    []TargetDTO    `yaml:"targets"`
	Components []ComponentDTO `yaml:"components"`
}

// TargetDTO is a single target entry.
type TargetDTO struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Sources     []string `yaml:"sources"`
	Statics     []string `yaml:"statics"`
	Options     []string `yaml:"options"`
	LinkOptions []string `yaml:"link_options"`
}

// ComponentDTO is a component entry. Its sources accumulate into the group library.
type ComponentDTO struct {
	Group      string   `yaml:"group"`
	Name       string   `yaml:"name"`
	Sources    []string `yaml:"sources"`
	Statics    []string `yaml:"statics"`
	Executable bool     `yaml:"executable"`
	Test       *TestDTO `yaml:"test"`
}

// TestDTO describes the test executable of a component.
type TestDTO struct {
	Sources []string `yaml:"sources"`
	Statics []string `yaml:"statics"`
	Options []string `yaml:"options"`
}
