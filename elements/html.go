package elements

// Tag builder functions, ported from react-elements/src/html.rs. Each is a
// thin NewElement(tag) call so callers chain attribute/child builders
// directly: Div().Class("card").Child(H1().Text("Hi")).
func Html() Element     { return NewElement("html") }
func Head_() Element    { return NewElement("head") }
func Title() Element    { return NewElement("title") }
func Body() Element     { return NewElement("body") }
func Meta() Element     { return NewElement("meta") }
func Link() Element     { return NewElement("link") }
func Script() Element   { return NewElement("script") }
func Style() Element    { return NewElement("style") }
func Div() Element      { return NewElement("div") }
func Span() Element     { return NewElement("span") }
func P() Element        { return NewElement("p") }
func H1() Element       { return NewElement("h1") }
func H2() Element       { return NewElement("h2") }
func H3() Element       { return NewElement("h3") }
func H4() Element       { return NewElement("h4") }
func H5() Element       { return NewElement("h5") }
func H6() Element       { return NewElement("h6") }
func A() Element        { return NewElement("a") }
func Button() Element   { return NewElement("button") }
func Input() Element    { return NewElement("input") }
func Textarea() Element { return NewElement("textarea") }
func Form() Element     { return NewElement("form") }
func Label() Element    { return NewElement("label") }
func Ul() Element       { return NewElement("ul") }
func Ol() Element       { return NewElement("ol") }
func Li() Element       { return NewElement("li") }
func Nav() Element      { return NewElement("nav") }
func Header() Element   { return NewElement("header") }
func Footer() Element   { return NewElement("footer") }
func Main() Element     { return NewElement("main") }
func Section() Element  { return NewElement("section") }
func Article() Element  { return NewElement("article") }
func Aside() Element    { return NewElement("aside") }
func Img() Element      { return NewElement("img") }
func Video() Element    { return NewElement("video") }
func Audio() Element    { return NewElement("audio") }
func Table() Element    { return NewElement("table") }
func Thead() Element    { return NewElement("thead") }
func Tbody() Element    { return NewElement("tbody") }
func Tr() Element       { return NewElement("tr") }
func Th() Element       { return NewElement("th") }
func Td() Element       { return NewElement("td") }
func Br() Element       { return NewElement("br") }
func Hr() Element       { return NewElement("hr") }
func Strong() Element   { return NewElement("strong") }
func Em() Element       { return NewElement("em") }
func Code() Element     { return NewElement("code") }
func Pre() Element      { return NewElement("pre") }
func Select() Element   { return NewElement("select") }
func Option() Element   { return NewElement("option") }
