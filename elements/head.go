package elements

// Head is document metadata, supplemented from
// react-elements/src/head.rs (named by §3's Node sum as `Head(metadata)`
// but not otherwise elaborated by the distilled spec).
type Head struct {
	Title string
	Metas []MetaTag
	Links []LinkTag
}

type MetaTag struct {
	Name    string
	Content string
}

type LinkTag struct {
	Rel  string
	Href string
}

func NewHead() Head { return Head{} }

func (h Head) WithTitle(title string) Head {
	h.Title = title
	return h
}

func (h Head) WithMeta(name, content string) Head {
	h.Metas = append(slicesClone(h.Metas), MetaTag{Name: name, Content: content})
	return h
}

func (h Head) WithDescription(desc string) Head       { return h.WithMeta("description", desc) }
func (h Head) WithKeywords(keywords string) Head       { return h.WithMeta("keywords", keywords) }
func (h Head) WithOGTitle(title string) Head           { return h.WithMeta("og:title", title) }
func (h Head) WithOGDescription(desc string) Head      { return h.WithMeta("og:description", desc) }
func (h Head) WithOGImage(url string) Head             { return h.WithMeta("og:image", url) }

func (h Head) WithStylesheet(href string) Head {
	h.Links = append(slicesClone(h.Links), LinkTag{Rel: "stylesheet", Href: href})
	return h
}
