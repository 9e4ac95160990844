package goquery_test

import (
	"fmt"
	"strings"
)

// listing describes one listing item rendered the way the site renders it.
type listing struct {
	Name     string
	Href     string
	Places   []string
	Speaks   []string
	Level    string
	LooksFor []string
}

func anchors(prefix string, texts []string) string {
	var b strings.Builder
	for i, text := range texts {
		fmt.Fprintf(&b, `<a href="/%s/%d">%s</a> `, prefix, i, text)
	}
	return b.String()
}

func (l listing) nameBlock() string {
	return fmt.Sprintf(`<div class="name"><a href="%s">%s</a></div>`, l.Href, l.Name)
}

func (l listing) locationBlock() string {
	return `<div class="location">` + anchors("place", l.Places) + `</div>`
}

func (l listing) languageBlock() string {
	return fmt.Sprintf(`<div class="languages"><table><tr>
	<td>%s</td>
	<td>%s</td>
	<td>%s</td>
</tr></table></div>`, anchors("speaks", l.Speaks), l.Level, anchors("learns", l.LooksFor))
}

// HTML renders the item with a custom text block.
func (l listing) withText(text string) string {
	return fmt.Sprintf(`<div class="item">
	<div class="photo"><img src="/img/%s.jpg"></div>
	%s
</div>`, l.Name, text)
}

func (l listing) HTML() string {
	return l.withText(`<div class="info">
		` + l.nameBlock() + `
		` + l.locationBlock() + `
		` + l.languageBlock() + `
		<div class="description">Hi, I want to practice.</div>
	</div>`)
}

func page(items ...string) string {
	return `<!DOCTYPE html>
<html>
<head><title>Online</title></head>
<body>
<article class="entry">
` + strings.Join(items, "\n") + `
</article>
</body>
</html>`
}

func anna() listing {
	return listing{
		Name:     "Anna",
		Href:     "/profile/anna",
		Places:   []string{"Berlin", "Germany"},
		Speaks:   []string{"German", " English "},
		Level:    "native",
		LooksFor: []string{"Spanish"},
	}
}

func bruno() listing {
	return listing{
		Name:     "Bruno",
		Href:     "/profile/bruno",
		Places:   []string{"Brazil"},
		Speaks:   []string{"Portuguese"},
		Level:    "fluent",
		LooksFor: []string{"French", "Italian"},
	}
}
