// Package inspect explains how the bridge classifies and rewrites URLs.
//
// Analyze evaluates a single URL against a reference portal. Server exposes
// the same analysis over HTTP:
//
//	GET /analyze?url=/app/views/a.xhtml?x=1&view=/views/a.xhtml&context=/app
//	GET /health/live
//	GET /health/ready
//
// Query parameters of /analyze:
//
//	url      raw URL to analyze (required, may be empty)
//	view     current view id
//	context  context path of the request
//	kind     action, render or resource (default render)
//	portlet  portlet id used to namespace container parameters
//	base     page URL of the reference portal
//	public   public render parameter as name=value, repeatable
//	private  private render parameter as name=value, repeatable
//	secure   boolean token requesting a secure URL
package inspect
