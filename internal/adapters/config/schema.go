package config

// Simfile represents the structure of the optional hposim YAML
// configuration file. Absent keys keep their default values.
type Simfile struct {
	Iterations   int    `yaml:"iterations"`
	Seed         int64  `yaml:"seed"`
	Policy       string `yaml:"policy"`
	Workers      int    `yaml:"workers"`
	MinGroupSize int    `yaml:"min_group_size"`
}
