package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"exsum/internal/domain"
	"exsum/internal/parser"
	"exsum/internal/ranking"
	"exsum/internal/summarizer"
)

// ErrNoDocument is returned by the stateful operations before Ingest succeeds.
var ErrNoDocument = errors.New("no document ingested")

// SummaryService reads documents, parses them and hands them to the summarizer.
// The ingested document and its scores are kept for repeated queries.
type SummaryService struct {
	parser     domain.Parser
	summarizer *summarizer.Summarizer
	logger     *slog.Logger

	path     string
	document []domain.Sentence
	scores   *summarizer.Scores
}

// NewSummaryService wires a parser and a summarizer. A nil logger discards output.
func NewSummaryService(p domain.Parser, sum *summarizer.Summarizer, logger *slog.Logger) *SummaryService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SummaryService{parser: p, summarizer: sum, logger: logger.With("component", "service")}
}

// SummarizeFile parses the file at path and returns its summary without
// touching the ingested document.
func (s *SummaryService) SummarizeFile(path string, topN int, reorder bool) ([]domain.Sentence, error) {
	document, err := s.parseFile(path)
	if err != nil {
		return nil, err
	}
	summary, err := s.summarizer.Summarize(document, topN, reorder)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", path, err)
	}
	s.logger.Info("summarized", "path", path, "sentences", len(document), "selected", len(summary))
	return summary, nil
}

// Ingest parses the file at path and makes it the current document.
// It returns the number of sentences found.
func (s *SummaryService) Ingest(path string) (int, error) {
	document, err := s.parseFile(path)
	if err != nil {
		return 0, err
	}
	scores, err := s.summarizer.Score(document)
	if err != nil {
		return 0, fmt.Errorf("score %s: %w", path, err)
	}
	s.path = path
	s.document = document
	s.scores = scores
	s.logger.Info("ingested", "path", path, "sentences", len(document))
	return len(document), nil
}

// Path is the file behind the current document.
func (s *SummaryService) Path() string { return s.path }

// Summarize selects topN sentences of the current document.
func (s *SummaryService) Summarize(topN int, reorder bool) ([]domain.Sentence, error) {
	scores, err := s.Breakdown()
	if err != nil {
		return nil, err
	}
	if topN <= 0 || scores == nil {
		return nil, nil
	}
	return summarizer.SelectTop(scores.Sentences, scores.Total, topN, reorder)
}

// Breakdown returns the per-feature scores of the current document. The
// result is nil for a document without sentences.
func (s *SummaryService) Breakdown() (*summarizer.Scores, error) {
	if s.path == "" {
		return nil, ErrNoDocument
	}
	return s.scores, nil
}

// TopWords ranks the content lemmas of the current document.
func (s *SummaryService) TopWords(n int) ([]ranking.WordFrequency, error) {
	if s.path == "" {
		return nil, ErrNoDocument
	}
	p := summarizer.Preprocess(s.document)
	if p == nil {
		return nil, nil
	}
	return ranking.Rank(p.Frequency, n), nil
}

func (s *SummaryService) parseFile(path string) ([]domain.Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	if parser.NeedsTitlePrep(s.parser) {
		text = parser.PrepareTitle(text)
	}
	document, err := s.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.logger.Debug("parsed", "path", path, "parser", s.parser.Name(), "sentences", len(document))
	return document, nil
}
