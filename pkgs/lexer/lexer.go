package lexer

import (
	"github.com/mattheww/lexeywan/pkgs/charseq"
	"github.com/mattheww/lexeywan/pkgs/lexerrors"
)

// Config holds the options that control one run of the lexer pipeline.
type Config struct {
	edition  Edition
	cleaning CleaningMode
	lowering Lowering
}

// Option configures a Config. Apply via Analyse's variadic opts.
type Option func(*Config)

// WithEdition selects which grammar nonterminals and cleaning behaviours
// are active. Defaults to DefaultEdition.
func WithEdition(e Edition) Option {
	return func(c *Config) { c.edition = e }
}

// WithCleaning selects which pre-tokenisation source transformations run.
// Defaults to CleanNone.
func WithCleaning(mode CleaningMode) Option {
	return func(c *Config) { c.cleaning = mode }
}

// WithLowering selects whether doc-comments are rewritten into synthetic
// attribute token sequences after processing. Defaults to NoLowering.
func WithLowering(l Lowering) Option {
	return func(c *Config) { c.lowering = l }
}

func newConfig(opts ...Option) Config {
	c := Config{edition: DefaultEdition, cleaning: CleanNone, lowering: NoLowering}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Analysis is the full output of one Analyse run: the fine-grained token
// sequence (after any doc-comment lowering), the coarse-grained forest
// built from it, and that forest's regularised form.
type Analysis struct {
	FineTokens []FineToken
	Coarse     Forest[CoarseToken]
	Regular    []RegularToken
}

// Analyse runs the complete pipeline over input: cleaning, tokenisation,
// per-token processing, optional doc-comment lowering, tree construction,
// and coarsening. It corresponds to the writeup's end-to-end analysis
// function, returning a single Verdict covering the whole pipeline: a
// rejection at any stage makes the whole analysis a rejection, and
// likewise for a model error.
func Analyse(input charseq.CharSeq, opts ...Option) lexerrors.Verdict[Analysis] {
	config := newConfig(opts...)

	cleanedVerdict := Clean(input, config.edition, config.cleaning)
	cleaned, ok := cleanedVerdict.Value()
	if !ok {
		return lexerrors.Rejects[Analysis](cleanedVerdict.Reasons()...)
	}

	runes := cleaned.Runes()
	matchResult, err := MatchAll(runes, config.edition)
	if err != nil {
		return lexerrors.ModelErrors[Analysis](err.Error())
	}

	fineTokens := make([]FineToken, 0, len(matchResult.Matches))
	for _, m := range matchResult.Matches {
		verdict := Process(m, config.edition)
		token, ok := verdict.Value()
		if !ok {
			if verdict.IsModelError() {
				return lexerrors.ModelErrors[Analysis](verdict.Reasons()...)
			}
			return lexerrors.Rejects[Analysis](verdict.Reasons()...)
		}
		fineTokens = append(fineTokens, token)
	}
	if !matchResult.ConsumedEntireInput {
		return lexerrors.Rejects[Analysis]("no token matches at the remaining input")
	}

	if config.lowering == LowerDocComments {
		fineTokens = ApplyDocCommentLowering(fineTokens, config.edition)
	}

	forestVerdict := ConstructForest[FineToken](fineTokens)
	forest, ok := forestVerdict.Value()
	if !ok {
		return lexerrors.Rejects[Analysis](forestVerdict.Reasons()...)
	}

	coarse := Coarsen(forest)
	regular := RegulariseForest(coarse)

	return lexerrors.Accepts(Analysis{
		FineTokens: fineTokens,
		Coarse:     coarse,
		Regular:    regular,
	})
}
