// Package workflows holds the Pulse GitHub Actions workflow documents.
//
// The five documents are embedded at build time from templates/ and are
// treated as opaque payloads by the emitter. Title and Jobs parse a document
// only for display; nothing here validates or rewrites the content.
//
//	for _, doc := range workflows.All() {
//		fmt.Println(doc.Name, len(doc.Content))
//	}
package workflows
