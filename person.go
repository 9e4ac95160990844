package langex

import "strings"

// Person is a single profile extracted from a listing item.
type Person struct {
	Name     string   `json:"name"`
	City     *string  `json:"city"`
	Country  string   `json:"country"`
	Speaks   []string `json:"speaks"`
	LooksFor []string `json:"looks_for"`
	URL      string   `json:"url"`
}

// NewPerson builds a Person from extracted fields.
// Text fields are trimmed and an empty city is treated as absent.
// Nil language lists are normalized to empty slices so they encode as [].
// Returns EINVALID if a required field is empty.
func NewPerson(name, city, country string, speaks, looksFor []string, url string) (*Person, error) {
	p := &Person{
		Name:     strings.TrimSpace(name),
		Country:  strings.TrimSpace(country),
		Speaks:   speaks,
		LooksFor: looksFor,
		URL:      strings.TrimSpace(url),
	}
	if city = strings.TrimSpace(city); city != "" {
		p.City = &city
	}
	if p.Speaks == nil {
		p.Speaks = []string{}
	}
	if p.LooksFor == nil {
		p.LooksFor = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate returns an error if the person is missing a required field.
func (p *Person) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "person name required")
	}
	if p.Country == "" {
		return Errorf(EINVALID, "person country required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "person url required")
	}
	return nil
}
