// Command unigram-ingest adds training documents to a SQLite corpus.
// Input can be plain-text files or a URL, whose HTML is stripped to
// visible text before tokenization.
//
// Usage:
//
//	unigram-ingest -db corpus.db file1.txt file2.txt
//	unigram-ingest -db corpus.db -url https://example.com/article
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cognicore/unigram/internal/htmltext"
	"github.com/cognicore/unigram/pkg/unigram/corpus"
	"github.com/cognicore/unigram/pkg/unigram/corpus/sqlite"
	"github.com/cognicore/unigram/pkg/unigram/ingest"
)

func main() {
	dbPath := flag.String("db", "corpus.db", "path to the SQLite corpus database")
	url := flag.String("url", "", "URL to fetch and ingest")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP fetch timeout")
	flag.Parse()

	files := flag.Args()
	if *url == "" && len(files) == 0 {
		log.Fatal("Nothing to ingest: pass text files or -url")
	}

	ctx := context.Background()
	store, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("Open corpus %s: %v", *dbPath, err)
	}
	defer store.Close()

	tokenizer := ingest.NewTokenizer(nil)
	added := 0

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Read %s: %v", path, err)
		}
		if err := addDocument(ctx, store, tokenizer, path, string(data)); err != nil {
			log.Fatalf("Ingest %s: %v", path, err)
		}
		added++
	}

	if *url != "" {
		text, err := fetchText(ctx, *url, *timeout)
		if err != nil {
			log.Fatalf("Fetch %s: %v", *url, err)
		}
		if err := addDocument(ctx, store, tokenizer, *url, text); err != nil {
			log.Fatalf("Ingest %s: %v", *url, err)
		}
		added++
	}

	total, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("Count: %v", err)
	}
	fmt.Printf("Added %d documents (%d total in %s)\n", added, total, *dbPath)
}

func addDocument(ctx context.Context, store corpus.Store, tok *ingest.Tokenizer, source, text string) error {
	tokens := tok.Tokenize(text)
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens in %s", source)
	}
	id, err := store.AddDocument(ctx, corpus.Document{
		Source: source,
		Tokens: tokens,
	})
	if err != nil {
		return err
	}
	log.Printf("Ingested %s as %s (%d tokens)", source, id, len(tokens))
	return nil
}

func fetchText(ctx context.Context, url string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return htmltext.ExtractString(string(body))
}
