package profiles

import "encoding/json"

// List is a profile section that tolerates sloppy model output: a JSON
// array decodes as-is, null or absence becomes empty, and a scalar or
// object is wrapped as a single element. It always marshals as an array.
type List []any

// UnmarshalJSON coerces non-array values into a list.
func (l *List) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var single any
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == nil {
		*l = List{}
		return nil
	}
	*l = List{single}
	return nil
}

// MarshalJSON emits an empty array instead of null.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]any(l))
}

// Profile is a LinkedIn-style profile synthesized from resume text.
type Profile struct {
	Name            string `json:"name"`
	Headline        string `json:"headline"`
	Location        string `json:"location"`
	About           string `json:"about"`
	Experience      List   `json:"experience"`
	Education       List   `json:"education"`
	Projects        List   `json:"projects"`
	Certifications  List   `json:"certifications"`
	Skills          List   `json:"skills"`
	Awards          List   `json:"awards"`
	Recommendations List   `json:"recommendations"`
	ProfilePicture  string `json:"profile_picture"`
	ProfileStrength int    `json:"profile_strength"`
}

// normalize ensures every list section is non-nil so responses always
// carry arrays.
func (p *Profile) normalize() {
	for _, section := range []*List{
		&p.Experience,
		&p.Education,
		&p.Projects,
		&p.Certifications,
		&p.Skills,
		&p.Awards,
		&p.Recommendations,
	} {
		if *section == nil {
			*section = List{}
		}
	}
}
