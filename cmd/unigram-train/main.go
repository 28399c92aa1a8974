// Command unigram-train fits a smoothed maximum-likelihood unigram model
// on a stored corpus and reports held-out quality.
//
// Usage:
//
//	unigram-train -config train.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/unigram/pkg/unigram/config"
	"github.com/cognicore/unigram/pkg/unigram/corpus"
	"github.com/cognicore/unigram/pkg/unigram/corpus/sqlite"
	"github.com/cognicore/unigram/pkg/unigram/estimator"
	"github.com/cognicore/unigram/pkg/unigram/eval"
	"github.com/cognicore/unigram/pkg/unigram/ingest"
	"github.com/cognicore/unigram/pkg/unigram/vocab"
)

func main() {
	configPath := flag.String("config", "train.yaml", "path to the training configuration")
	flag.Parse()

	cfg, err := config.LoadTrain(*configPath)
	if err != nil {
		log.Fatalf("Load config %s: %v", *configPath, err)
	}

	ctx := context.Background()
	store, err := sqlite.Open(ctx, cfg.CorpusDB)
	if err != nil {
		log.Fatalf("Open corpus %s: %v", cfg.CorpusDB, err)
	}
	defer store.Close()

	docs, err := store.Documents(ctx)
	if err != nil {
		log.Fatalf("Read corpus: %v", err)
	}
	if len(docs) == 0 {
		log.Fatalf("Corpus %s is empty; run unigram-ingest first", cfg.CorpusDB)
	}

	trainDocs, heldout := split(docs, cfg.HeldoutFraction)
	trainTokens := flatten(trainDocs, cfg.Stopwords)
	log.Printf("Corpus: %d documents (%d train, %d held out), %d training tokens",
		len(docs), len(trainDocs), len(heldout), len(trainTokens))

	v, builtFromTrain, err := loadVocabulary(cfg, trainTokens)
	if err != nil {
		log.Fatalf("Build vocabulary: %v", err)
	}
	log.Printf("Vocabulary: %d words", v.Size())

	est, err := estimator.NewMLEstimator(v, cfg.EpsilonUnseen)
	if err != nil {
		log.Fatalf("Create estimator: %v", err)
	}
	if err := est.Fit(trainTokens); err != nil {
		log.Fatalf("Fit: %v", err)
	}
	log.Printf("Fitted: %d tokens, %d vocabulary words unseen", est.TotalCount(), est.UnseenCount())

	if len(heldout) == 0 {
		fmt.Println("No held-out documents; training only.")
		return
	}

	// A vocabulary built from the training split cannot cover held-out
	// words; drop them instead of failing the whole evaluation.
	if builtFromTrain {
		heldout = dropUnknown(heldout, v)
		if len(heldout) == 0 {
			log.Fatal("All held-out documents were out of vocabulary")
		}
	}

	results, summary, err := eval.Documents(est, heldout)
	if err != nil {
		log.Fatalf("Evaluate: %v", err)
	}

	for _, r := range results {
		fmt.Printf("%-26s %-30s tokens=%-6d logprob=%8.4f perplexity=%.2f\n",
			r.DocID, r.Source, r.Tokens, r.LogProb, r.Perplexity)
	}
	fmt.Printf("\nHeld-out: %d docs, %d tokens, avg logprob %.4f, perplexity %.2f\n",
		summary.Docs, summary.Tokens, summary.MeanLogProb, summary.Perplexity)
}

// split partitions documents, holding out the trailing fraction.
func split(docs []corpus.Document, fraction float64) (train, heldout []corpus.Document) {
	n := int(float64(len(docs)) * (1 - fraction))
	if n < 1 {
		n = 1
	}
	if n > len(docs) {
		n = len(docs)
	}
	return docs[:n], docs[n:]
}

// flatten concatenates document tokens, applying the stopword list.
func flatten(docs []corpus.Document, stopwords []string) []string {
	tok := ingest.NewTokenizer(stopwords)
	var out []string
	for _, d := range docs {
		out = append(out, tok.Filter(d.Tokens)...)
	}
	return out
}

// loadVocabulary loads the configured vocabulary file, or derives one
// from the training tokens when no file is configured.
func loadVocabulary(cfg *config.Train, trainTokens []string) (*vocab.Vocabulary, bool, error) {
	if cfg.VocabPath != "" {
		v, err := vocab.LoadFromYAML(cfg.VocabPath)
		return v, false, err
	}
	return vocab.FromTokens(trainTokens), true, nil
}

// dropUnknown removes out-of-vocabulary tokens from held-out documents
// and discards documents left empty.
func dropUnknown(docs []corpus.Document, v *vocab.Vocabulary) []corpus.Document {
	var out []corpus.Document
	dropped := 0
	for _, d := range docs {
		var kept []string
		for _, t := range d.Tokens {
			if v.Contains(t) {
				kept = append(kept, t)
			} else {
				dropped++
			}
		}
		if len(kept) > 0 {
			d.Tokens = kept
			out = append(out, d)
		}
	}
	if dropped > 0 {
		log.Printf("Dropped %d out-of-vocabulary held-out tokens", dropped)
	}
	return out
}
