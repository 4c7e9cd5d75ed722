package profiles

// Section weights for profile strength. They sum to 100; a section
// contributes its full weight when non-empty and nothing otherwise.
var strengthWeights = []struct {
	weight  int
	present func(p *Profile) bool
}{
	{15, func(p *Profile) bool { return p.About != "" }},
	{25, func(p *Profile) bool { return len(p.Experience) > 0 }},
	{15, func(p *Profile) bool { return len(p.Education) > 0 }},
	{15, func(p *Profile) bool { return len(p.Skills) > 0 }},
	{10, func(p *Profile) bool { return len(p.Projects) > 0 }},
	{10, func(p *Profile) bool { return len(p.Certifications) > 0 }},
	{5, func(p *Profile) bool { return len(p.Awards) > 0 }},
	{5, func(p *Profile) bool { return len(p.Recommendations) > 0 }},
}

// strength scores section completeness on a 0..100 scale.
func strength(p *Profile) int {
	total := 0
	for _, s := range strengthWeights {
		if s.present(p) {
			total += s.weight
		}
	}
	return total
}
