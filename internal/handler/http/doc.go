// Package http implements the HTTP transport layer of the import bridge.
//
// It exposes the multipart intake on "/", a health probe and the build
// version. Request tracing, access logging, CORS headers and gzip request
// decoding are handled here before requests are delegated to the service
// layer.
package http
