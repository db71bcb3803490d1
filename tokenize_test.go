package tagcheck

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func open(pos int, name, attrs string) Token {
	return Token{Position: pos, Name: name, Attrs: attrs}
}

func closing(pos int, name string) Token {
	return Token{Position: pos, Name: name, Closing: true}
}

var nolocation = cmpopts.IgnoreFields(Token{}, "Raw", "Offset", "Line")

func TestPatternTokens(t *testing.T) {
	cases := []struct {
		doc  string
		want []Token
	}{
		{`<div><span></span></div>`, []Token{open(0, "div", ""), open(1, "span", ""), closing(2, "span"), closing(3, "div")}},
		{`<DIV Class="big"></Div>`, []Token{open(0, "div", ` Class="big"`), closing(1, "div")}},
		{`text only, 5 < 6 and 7 > 2`, nil},
		{`<!DOCTYPE html><html></html>`, []Token{open(0, "html", ""), closing(1, "html")}},
		{`<p><!-- <div> </p> --></p>`, []Token{open(0, "p", ""), closing(1, "p")}},
		{`<p><!-- <div> never closed`, []Token{open(0, "p", "")}},
		{`<br><br />`, []Token{open(0, "br", ""), open(1, "br", " /")}},
		{`<br/><h1>`, []Token{open(0, "h1", "")}},
		{`<my-elem></my-elem>`, nil},
		{`<a title=">" href="/">`, []Token{open(0, "a", ` title="`)}},
		{`</ div>< p>`, nil},
	}

	for _, c := range cases {
		got := slices.Collect(PatternTokenizer{}.Tokens(c.doc))
		if !cmp.Equal(got, c.want, nolocation, cmpopts.EquateEmpty()) {
			t.Errorf("in %s: %s", c.doc, cmp.Diff(c.want, got, nolocation, cmpopts.EquateEmpty()))
		}
	}
}

func TestHTML5Tokens(t *testing.T) {
	cases := []struct {
		doc  string
		want []Token
	}{
		{`<div><span></span></div>`, []Token{open(0, "div", ""), open(1, "span", ""), closing(2, "span"), closing(3, "div")}},
		{`<DIV Class="big"></Div>`, []Token{open(0, "div", ` Class="big"`), closing(1, "div")}},
		{`<p><!-- <div> </p> --></p>`, []Token{open(0, "p", ""), closing(1, "p")}},
		{`<a title=">" href="/">`, []Token{open(0, "a", ` title=">" href="/"`)}},
		{`<script>if (a<b) { x = "</p>" }</script>`, []Token{open(0, "script", ""), closing(1, "script")}},
		{`<svg><path/></svg>`, []Token{open(0, "svg", ""), {Position: 1, Name: "path", SelfClosing: true}, closing(2, "svg")}},
		{`<my-elem></my-elem>`, []Token{open(0, "my-elem", ""), closing(1, "my-elem")}},
	}

	for _, c := range cases {
		got := slices.Collect(HTML5Tokenizer{}.Tokens(c.doc))
		if !cmp.Equal(got, c.want, nolocation, cmpopts.EquateEmpty()) {
			t.Errorf("in %s: %s", c.doc, cmp.Diff(c.want, got, nolocation, cmpopts.EquateEmpty()))
		}
	}
}

func TestTokenLocation(t *testing.T) {
	doc := "<html>\n  <body>\n\n<p>hi</p></body>\n</html>"
	type loc struct{ Offset, Line int }
	want := []loc{{0, 1}, {9, 2}, {17, 4}, {22, 4}, {26, 4}, {34, 5}}

	for name, tz := range Tokenizers {
		var got []loc
		for tk := range tz.Tokens(doc) {
			got = append(got, loc{tk.Offset, tk.Line})
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s tokenizer: %s", name, diff)
		}
	}
}

func TestTokenRaw(t *testing.T) {
	doc := "<P>one</P ><A Href=\"/\">"
	want := []string{"<P>", "</P >", `<A Href="/">`}
	for name, tz := range Tokenizers {
		var got []string
		for tk := range tz.Tokens(doc) {
			got = append(got, tk.Raw)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s tokenizer: %s", name, diff)
		}
	}
}

func TestTokensRestart(t *testing.T) {
	doc := `<ul><li>one<li>two</ul>`
	for name, tz := range Tokenizers {
		seq := tz.Tokens(doc)
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		if len(first) != 4 {
			t.Errorf("%s tokenizer: got %d tokens, want 4", name, len(first))
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s tokenizer is not restartable: %s", name, diff)
		}

		for range seq {
			break // early stop must not panic
		}
	}
}
