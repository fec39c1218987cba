package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named seeding profile loaded from a YAML file. Presets let a
// team share reproducible dataset shapes (demo, load-test, near-empty)
// without recompiling.
type Preset struct {
	Name            string  `yaml:"name"`
	Users           int     `yaml:"users"`
	Posts           int     `yaml:"posts"`
	FollowDensity   float64 `yaml:"follow_density"`
	CommentsPerPost int     `yaml:"comments_per_post"`
	LikesPerPost    int     `yaml:"likes_per_post"`
	Clean           bool    `yaml:"clean"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads a YAML preset file and returns the presets keyed by name.
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing preset file: %w", err)
	}

	presets := make(map[string]Preset, len(pf.Presets))
	for _, p := range pf.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name in %s", path)
		}
		presets[p.Name] = p
	}
	return presets, nil
}

// Options converts the preset into seeder options, carrying over knobs the
// preset does not cover from base.
func (p Preset) Options(base Options) Options {
	opts := base
	opts.NumUsers = p.Users
	opts.NumPosts = p.Posts
	opts.ShouldClean = p.Clean
	opts.FollowDensity = p.FollowDensity
	opts.CommentsPerPost = p.CommentsPerPost
	opts.LikesPerPost = p.LikesPerPost
	return opts
}
