// Package mapembed mounts rendered map fragments and their assets on a
// net/http mux. A host application registers the component under a base path
// and gets three routes: GET {base}/maps/{id} returning the HTML fragment for
// a stored map definition, plus {base}/assets/ and {base}/runtime/ serving
// the embedded stylesheet and behavior scripts the fragments reference.
package mapembed
