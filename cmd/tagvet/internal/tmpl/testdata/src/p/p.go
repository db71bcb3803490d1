package p

import (
	htmpl "html/template"
	"text/template"
)

const header = `<header><h1>{{.Title}}</h1>`

var (
	_ = htmpl.Must(htmpl.New("ok").Parse(`<div><span>{{.}}</span><br></div>`))
	_ = htmpl.Must(htmpl.New("comment").Parse(`<div><!-- </div> --></div>`))
	_ = htmpl.Must(htmpl.New("a").Parse(`<div><p></p>`))      // want "unbalanced: div"
	_ = htmpl.Must(htmpl.New("b").Parse(`<div><span></div>`))   // want "unmatched close token: div closing span" "unbalanced: div"
	_ = htmpl.Must(htmpl.New("c").Parse(`<div></div></div>`))   // want "extraneous close token: div"
	_ = htmpl.Must(htmpl.New("d").Parse(header + `</header>`))
	_ = template.Must(template.New("e").Parse(header))          // want "unbalanced: header"
	_ = template.Must(template.New("f").Parse(`<ul><li></UL>`)) // want "unmatched close token: ul closing li" "unbalanced: ul"
)

func dynamic(s string) {
	template.Must(template.New("g").Parse(s))
}
