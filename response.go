package ogcard

import "github.com/eringen/ogcard/render"

// Cache policies for the two URL shapes. A versioned URL embeds the metadata
// fingerprint, so any content change yields a different URL and the response
// can be cached forever. An unversioned URL is not self-describing and must
// be revalidated on every use.
const (
	cacheImmutable  = "public, max-age=31536000, immutable"
	cacheRevalidate = "public, max-age=0, must-revalidate"
)

// Response is a fully assembled image payload: body plus the headers the
// HTTP layer writes verbatim. Building one has no side effects.
type Response struct {
	Body         []byte
	ContentType  string
	CacheControl string
}

// BuildResponse pairs rendered image bytes with the cache policy matching
// the request's URL shape.
func BuildResponse(body []byte, versioned bool) Response {
	cc := cacheRevalidate
	if versioned {
		cc = cacheImmutable
	}
	return Response{
		Body:         body,
		ContentType:  render.ContentType,
		CacheControl: cc,
	}
}
