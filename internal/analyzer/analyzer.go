package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/annotate"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/score"
	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer wires the extractor and scoring engine together. It is safe for
// concurrent use: per-analysis state is request-scoped, and the shared
// synonym map has its own read-write discipline.
type Analyzer struct {
	extractor *extract.Extractor
	engine    *score.Engine
	syns      *synonyms.Map
	maxBytes  int64
}

// New creates an Analyzer from configuration and a shared synonym map,
// using the given annotator. Pass annotate.NewProseAnnotator() outside tests.
func New(cfg *config.Config, syns *synonyms.Map, annotator annotate.Annotator) *Analyzer {
	return &Analyzer{
		extractor: extract.New(annotator, syns, cfg.StopPhrases),
		engine:    score.NewEngine(syns, cfg.TierTable()),
		syns:      syns,
		maxBytes:  cfg.MaxDocumentBytes(),
	}
}

// Synonyms exposes the shared synonym map for the learner surface.
func (a *Analyzer) Synonyms() *synonyms.Map {
	return a.syns
}

// ExtractTerms runs only the extraction stage for one document. Used by the
// extract debugging command.
func (a *Analyzer) ExtractTerms(name, text string) (types.TermSet, error) {
	if err := a.checkSize(name, text); err != nil {
		return nil, err
	}
	terms, err := a.extractor.Terms(text)
	if err != nil {
		return nil, &DocumentError{Document: name, Message: "term extraction failed", Cause: err}
	}
	return terms, nil
}

// Analyze compares a resume against a job description. Extraction of the two
// documents runs concurrently; scoring is synchronous and request-scoped.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jdText string) (*types.ScoreResult, error) {
	if err := a.checkSize("resume", resumeText); err != nil {
		return nil, err
	}
	if err := a.checkSize("job description", jdText); err != nil {
		return nil, err
	}

	var resumeTerms, jdTerms types.TermSet
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		terms, err := a.extractor.Terms(resumeText)
		if err != nil {
			return &DocumentError{Document: "resume", Message: "term extraction failed", Cause: err}
		}
		resumeTerms = terms
		return nil
	})
	g.Go(func() error {
		terms, err := a.extractor.Terms(jdText)
		if err != nil {
			return &DocumentError{Document: "job description", Message: "term extraction failed", Cause: err}
		}
		jdTerms = terms
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := a.engine.Score(jdTerms, resumeTerms, resumeText)
	result.AnalysisID = uuid.NewString()
	return result, nil
}

func (a *Analyzer) checkSize(name, text string) error {
	if int64(len(text)) > a.maxBytes {
		return &DocumentError{
			Document: name,
			Message:  fmt.Sprintf("document exceeds %d byte limit (%d bytes)", a.maxBytes, len(text)),
		}
	}
	return nil
}
