package v

import "html/template"

var (
	_ = template.Must(template.New("ok").Parse(`<p>one<br>two<br/>three</p>`))
	_ = template.Must(template.New("br").Parse(`<p>one<br></br>two</p>`)) // want `void element closed: </br> \(line 1\)`
	_ = template.Must(template.New("img").Parse("<div>\n<img src=x></img>\n</div>")) // want `void element closed: </img> \(line 2\)`
)
