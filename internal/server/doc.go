// Package server exposes the resume parser over HTTP.
//
// The server accepts a single document per request on POST /parse_resume
// as the multipart field "file", parses it, and answers with the parsed
// record as JSON. Errors are always answered as {"error": "..."}.
//
//	srv, err := server.New(parser, server.WithAddress("127.0.0.1:5000"))
//	if err != nil {
//	    return err
//	}
//	return srv.Start(ctx)
//
// GET /health reports whether the skill catalog and the annotation model
// are usable. Both degrade individual fields rather than the whole
// response, so the endpoint answers 200 in either case.
package server
