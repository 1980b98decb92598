// Package view renders bridge URLs in templ templates.
//
//	<a href={ view.Href(factory.RenderURL("/app/views/next.xhtml", viewID)) }>Next</a>
//
//	@view.Link(factory.ActionURL("portlet:action?op=save", viewID), "Save")
//
// Hrefs are rendered unescaped; templ escapes attribute values itself.
package view
