package usecase

import (
	"insight-srv/internal/analysis"
	"insight-srv/internal/analysis/lexicon"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	lex *lexicon.Lexicon
}

// New creates a new analysis UseCase implementation. The lexicon is
// immutable after construction, so one instance is safe to share across
// concurrent analyses.
func New(l log.Logger, lex *lexicon.Lexicon) analysis.UseCase {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &implUseCase{
		l:   l,
		lex: lex,
	}
}
