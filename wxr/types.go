// Package wxr reads WordPress eXtended RSS (WXR) export documents and
// turns them into a model that the site generator and the media
// downloader can consume.
package wxr

import "encoding/xml"

// Schema of the export document itself.  WXR is an RSS channel with
// WordPress, Dublin Core and excerpt namespace extensions; the
// namespace-qualified tags below match the 1.2 export format.
type document struct {
	XMLName xml.Name `xml:"rss"`
	Channel *channel `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Creator       string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Content       string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	Excerpt       string `xml:"http://wordpress.org/export/1.2/excerpt/ encoded"`
	PubDate       string `xml:"pubDate"`
	PostName      string `xml:"http://wordpress.org/export/1.2/ post_name"`
	PostType      string `xml:"http://wordpress.org/export/1.2/ post_type"`
	Status        string `xml:"http://wordpress.org/export/1.2/ status"`
	AttachmentURL string `xml:"http://wordpress.org/export/1.2/ attachment_url"`
}

// Site is the channel metadata, read once per export.
type Site struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ContentItem is a page or post.  Date is kept as the opaque string the
// export carries; Status is compared verbatim against "publish" by the
// renderer.
type ContentItem struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Link    string `json:"link"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Type    string `json:"type"`
}

// Attachment is a media file reference.  Filename may be empty when the
// source URL has no path component; consumers must skip such entries.
type Attachment struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Export is the full parse result, and also the exact shape of
// site-data.json.
type Export struct {
	Site        Site          `json:"site"`
	Pages       []ContentItem `json:"pages"`
	Posts       []ContentItem `json:"posts"`
	Attachments []Attachment  `json:"attachments"`
}
