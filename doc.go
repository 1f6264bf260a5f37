// Package transcat ties the transport catalogue together: it loads the
// JSON input document into the catalogue, builds the router and the map
// renderer from the document's settings, and answers stat requests either
// in batch (oneshot) or over HTTP.
package transcat
