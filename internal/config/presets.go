package config

// Presets vary the damping of the default 1 kg, 10 N/m oscillator.
// Critical damping for those values is c = 2*sqrt(10).
var Presets = map[string]*Config{
	"baseline":    DefaultConfig(),
	"underdamped": withPhysics(PhysicsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 0.2}),
	"critical":    withPhysics(PhysicsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 6.324555320336759}),
	"overdamped":  withPhysics(PhysicsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 15.0}),
}

func withPhysics(p PhysicsConfig) *Config {
	cfg := DefaultConfig()
	cfg.Physics = p
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
