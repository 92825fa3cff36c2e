package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/frequency"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/scorer"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/stopwords"
)

// Pipeline runs the full TF-IDF computation: per-document normalization,
// stopword filtering, stemming and TF counting, then the corpus-wide
// DF/IDF step, then per-document scoring. The per-document phase runs in
// parallel; DF/IDF is a barrier that requires every document to finish
// first, and the IDF table is read-only from then on.
type Pipeline struct {
	tokenizer domain.Tokenizer
	stemmer   domain.Stemmer
	stopwords stopwords.Set
	weighting scorer.Weighting
	logBase   float64
	logger    *logrus.Entry
}

// Result holds everything the pipeline derives for one run.
type Result struct {
	Documents []domain.TokenizedDocument
	Rankings  []domain.RankedTerms
	IDF       map[string]float64
}

// New assembles a Pipeline from its components. The stopword set is
// loaded once per run and treated as immutable.
func New(tokenizer domain.Tokenizer, stemmer domain.Stemmer, stops stopwords.Set, weighting scorer.Weighting, logBase float64, logger *logrus.Entry) *Pipeline {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Pipeline{
		tokenizer: tokenizer,
		stemmer:   stemmer,
		stopwords: stops,
		weighting: weighting,
		logBase:   logBase,
		logger:    logger,
	}
}

// Preprocess runs one document through normalization, stopword filtering
// and stemming, returning its token sequence.
func (p *Pipeline) Preprocess(doc domain.Document) domain.TokenizedDocument {
	tokens := p.tokenizer.Tokenize(doc.Content)
	tokens = p.stopwords.Filter(tokens)
	stemmed := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		stemmed = append(stemmed, p.stemmer.Stem(tok))
	}
	return domain.TokenizedDocument{ID: doc.ID, Tokens: stemmed}
}

// Run processes the whole corpus and returns per-document ranked term
// lists in input order. An empty corpus is an error; a document that ends
// up with zero tokens yields an empty ranking, not an error.
func (p *Pipeline) Run(ctx context.Context, docs []domain.Document) (*Result, error) {
	if len(docs) == 0 {
		return nil, frequency.ErrEmptyCorpus
	}

	// Phase 1: per-document preprocessing and TF. Documents are
	// independent here, so fan out across them.
	tokenized := make([]domain.TokenizedDocument, len(docs))
	tfs := make([]map[string]int, len(docs))
	g, _ := errgroup.WithContext(ctx)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			td := p.Preprocess(doc)
			tokenized[i] = td
			tfs[i] = frequency.TermFrequency(td.Tokens)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preprocess corpus: %w", err)
	}

	// Phase 2: corpus statistics. Every document is final at this point.
	df := frequency.DocumentFrequency(tokenized)
	idf, err := frequency.IDF(df, len(docs), p.logBase)
	if err != nil {
		return nil, err
	}
	p.logger.WithFields(logrus.Fields{
		"documents":  len(docs),
		"vocabulary": len(df),
	}).Info("corpus statistics computed")

	// Phase 3: scoring against the published, read-only IDF table.
	rankings := make([]domain.RankedTerms, len(docs))
	for i := range docs {
		rankings[i] = domain.RankedTerms{
			DocumentID: tokenized[i].ID,
			Terms:      scorer.Score(tfs[i], idf, p.weighting),
		}
	}
	return &Result{Documents: tokenized, Rankings: rankings, IDF: idf}, nil
}
