package goquery

import (
	"strings"

	"github.com/fwojciec/langex"
)

// Listing item layout. The positions are dictated by the site's markup:
//
//	item
//	├── image block
//	└── text block
//	    ├── name block      exactly one link: name and profile URL
//	    ├── location block  one link (country) or two (city, country)
//	    ├── language block  table row with speaks | level | looks-for columns
//	    └── description
const (
	itemParts     = 2
	textParts     = 4
	languageCols  = 3
	speaksCol     = 0
	looksForCol   = 2
	maxPlaceLinks = 2
)

// ExtractPerson applies the listing item layout to item.
// When the item does not match, it returns a nil person and the rejection
// describing the first failed check. The rejection's Item field is left zero.
func ExtractPerson(item Element) (*langex.Person, *langex.Rejection) {
	parts := item.Children()
	if len(parts) != itemParts {
		return nil, reject(langex.RejectTopLevelParts, len(parts))
	}
	text := parts[1]

	blocks := text.Children()
	if len(blocks) != textParts {
		return nil, reject(langex.RejectTextBlockParts, len(blocks))
	}
	// blocks[3] holds the free-text description, which is not exported.
	nameBlock, locationBlock, languageBlock := blocks[0], blocks[1], blocks[2]

	nameLinks := nameBlock.FindAll("a", "")
	if len(nameLinks) != 1 {
		return nil, reject(langex.RejectNameLinks, len(nameLinks))
	}
	name := nameLinks[0].Text()
	href, _ := nameLinks[0].Attr("href")

	var city, country string
	placeLinks := locationBlock.FindAll("a", "")
	switch len(placeLinks) {
	case 1:
		country = placeLinks[0].Text()
	case maxPlaceLinks:
		city, country = placeLinks[0].Text(), placeLinks[1].Text()
	default:
		return nil, reject(langex.RejectLocationLinks, len(placeLinks))
	}

	var cols []Element
	if row, ok := languageBlock.FirstDescendant("tr"); ok {
		cols = row.ChildrenByTag("td")
	}
	if len(cols) != languageCols {
		return nil, reject(langex.RejectLanguageColumns, len(cols))
	}

	p, err := langex.NewPerson(name, city, country, linkTexts(cols[speaksCol]), linkTexts(cols[looksForCol]), href)
	if err != nil {
		return nil, reject(langex.RejectMissingField, 0)
	}
	return p, nil
}

func reject(reason string, got int) *langex.Rejection {
	return &langex.Rejection{Reason: reason, Got: got}
}

// linkTexts returns the trimmed text of every link under e in document order.
func linkTexts(e Element) []string {
	links := e.FindAll("a", "")
	texts := make([]string, 0, len(links))
	for _, a := range links {
		texts = append(texts, strings.TrimSpace(a.Text()))
	}
	return texts
}
