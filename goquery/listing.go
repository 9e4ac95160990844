package goquery

import (
	"github.com/fwojciec/langex"
)

// The single container holding every listing item on a page.
const (
	ListingTag   = "article"
	ListingClass = "entry"
)

// Ensure PageExtractor implements langex.PageExtractor at compile time.
var _ langex.PageExtractor = (*PageExtractor)(nil)

// PageExtractor extracts persons from listing pages.
type PageExtractor struct{}

// NewPageExtractor creates a new PageExtractor.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{}
}

// ExtractPage locates the listing container and extracts each of its
// element children. Items that do not match the layout are reported as
// rejections and never affect their siblings.
func (x *PageExtractor) ExtractPage(html []byte) (*langex.PageResult, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}

	containers := doc.Root().FindAll(ListingTag, ListingClass)
	if len(containers) != 1 {
		return nil, langex.Errorf(langex.EINVALID, "expected 1 listing container, got %d", len(containers))
	}

	items := containers[0].Children()
	result := &langex.PageResult{
		Items:   len(items),
		Persons: make([]*langex.Person, 0, len(items)),
	}
	for i, item := range items {
		p, rej := ExtractPerson(item)
		if rej != nil {
			rej.Item = i
			result.Rejections = append(result.Rejections, *rej)
			continue
		}
		result.Persons = append(result.Persons, p)
	}
	return result, nil
}
