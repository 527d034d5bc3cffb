// Package notebook is the Composition Root for the notebook library.
//
// It binds a document store (where notes live) to a presenter (how search
// results are rendered) behind a small facade, core.Notebook.
//
// A note is a record with a title, a content body and an ordered list of tags.
// Searching returns every note whose title or content contains the query, or
// whose tags hold an element equal to the query. Matching is case-sensitive.
//
// Stores:
//
//   - **json** (default): a single JSON collection file, re-read on every call.
//   - **sqlite**: an embedded SQLite database (pure Go driver).
//
// Presenters:
//
//   - **terminal**: Title/Content/Tags text blocks.
//   - **json**: pretty-printed, key-sorted JSON array.
//   - **yaml**: YAML sequence.
//
// Usage:
//
//	nb, err := notebook.New("./notes.json",
//		notebook.WithFormat("json"),
//		notebook.WithLogger(logger),
//	)
//	defer nb.Close()
//
//	err = nb.Add(ctx, "Books to Read", "Gang of Four", "books")
//	out, err := nb.Search(ctx, "books")
package notebook
