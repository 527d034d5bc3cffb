package notebook_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/notebook"
)

// Example_basic demonstrates how to open a notebook, add a note and search for it.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "notebook-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	nb, err := notebook.New(filepath.Join(tmpDir, "notes.json"))
	if err != nil {
		log.Fatal(err)
	}
	defer nb.Close()

	ctx := context.Background()

	if err := nb.Add(ctx, "Books to Read", "Gang of Four, Clean Architecture", "books"); err != nil {
		log.Fatal(err)
	}

	out, err := nb.Search(ctx, "Gang")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(out)
	// Output:
	// Title: Books to Read
	// Content:
	// 	Gang of Four, Clean Architecture
	// Tags: books
}

// Example_json renders the same search as a JSON array.
func Example_json() {
	tmpDir, err := os.MkdirTemp("", "notebook-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	nb, err := notebook.New(filepath.Join(tmpDir, "notes.json"), notebook.WithFormat("json"))
	if err != nil {
		log.Fatal(err)
	}
	defer nb.Close()

	ctx := context.Background()
	_ = nb.Add(ctx, "History Books", "The Color of Law", "books")

	out, err := nb.Search(ctx, "books")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output:
	// [
	//     {
	//         "content": "The Color of Law",
	//         "tags": [
	//             "books"
	//         ],
	//         "title": "History Books"
	//     }
	// ]
}
