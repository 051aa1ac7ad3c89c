package main

import (
	"fmt"

	"github.com/mattheww/lexeywan/pkgs/lexer"
)

// scenario is one entry in the embedded literal-input corpus the `test`
// subcommand runs: spec.md §8's end-to-end table plus its boundary-case
// list. Each carries its own check rather than a single expected-output
// shape, since an accepting scenario and a rejecting one need different
// assertions.
type scenario struct {
	name     string
	src      string
	opts     []lexer.Option
	check    func(lexer.Analysis) error
	reject   bool // true if the scenario must be a Reject (not ModelError)
	xfail    bool // known-broken: skipped unless --xfail is given
	boundary bool // belongs to the boundary-case subset --short selects
}

func wantFineCount(n int) func(lexer.Analysis) error {
	return func(a lexer.Analysis) error {
		if len(a.FineTokens) != n {
			return fmt.Errorf("got %d fine tokens, want %d", len(a.FineTokens), n)
		}
		return nil
	}
}

func wantRegularCount(n int) func(lexer.Analysis) error {
	return func(a lexer.Analysis) error {
		if len(a.Regular) != n {
			return fmt.Errorf("got %d regularised tokens, want %d", len(a.Regular), n)
		}
		return nil
	}
}

func corpus() []scenario {
	var scenarios []scenario

	// spec.md §8 end-to-end scenarios.
	scenarios = append(scenarios,
		scenario{
			name: "ident-plus-ident",
			src:  "a + b",
			check: func(a lexer.Analysis) error {
				if err := wantRegularCount(3)(a); err != nil {
					return err
				}
				for _, tok := range a.Regular {
					if tok.Spacing == lexer.SpacingJoint {
						return fmt.Errorf("expected every token alone, got a joint one")
					}
				}
				return nil
			},
		},
		scenario{
			name: "plus-equals-gluing",
			src:  "x += 1_000u32",
			check: func(a lexer.Analysis) error {
				if err := wantRegularCount(3)(a); err != nil {
					return err
				}
				if a.Regular[2].Data.Kind != lexer.RegularIntegerLiteral {
					return fmt.Errorf("third token = %v, want RegularIntegerLiteral", a.Regular[2].Data.Kind)
				}
				if got := a.Regular[2].Data.Suffix.String(); got != "u32" {
					return fmt.Errorf("integer suffix = %q, want %q", got, "u32")
				}
				return nil
			},
		},
		scenario{
			name: "raw-string-backslash-n",
			src:  `r"\n"`,
			check: func(a lexer.Analysis) error {
				if err := wantFineCount(1)(a); err != nil {
					return err
				}
				if got := a.FineTokens[0].Data.RepresentedString.String(); got != `\n` {
					return fmt.Errorf("represented string = %q, want %q", got, `\n`)
				}
				return nil
			},
		},
		scenario{
			name: "string-unicode-escape",
			src:  `"\u{1F600}"`,
			check: func(a lexer.Analysis) error {
				if err := wantFineCount(1)(a); err != nil {
					return err
				}
				runes := a.FineTokens[0].Data.RepresentedString.Runes()
				if len(runes) != 1 || runes[0] != 0x1F600 {
					return fmt.Errorf("represented string = %v, want a single U+1F600", runes)
				}
				return nil
			},
		},
		scenario{
			name: "outer-doc-comment",
			src:  "///doc\nfn",
			check: func(a lexer.Analysis) error {
				if len(a.FineTokens) < 2 {
					return fmt.Errorf("got %d fine tokens, want at least 2", len(a.FineTokens))
				}
				first := a.FineTokens[0]
				if first.Data.Kind != lexer.FineLineComment || first.Data.CommentStyle != lexer.OuterDoc {
					return fmt.Errorf("first token = %v/%v, want outer-doc line comment", first.Data.Kind, first.Data.CommentStyle)
				}
				if got := first.Data.Body.String(); got != "doc" {
					return fmt.Errorf("comment body = %q, want %q", got, "doc")
				}
				return nil
			},
		},
		scenario{
			name: "outer-doc-comment-lowered",
			src:  "///doc\nfn",
			opts: []lexer.Option{lexer.WithLowering(lexer.LowerDocComments)},
			check: func(a lexer.Analysis) error {
				if len(a.FineTokens) == 0 || a.FineTokens[0].Data.Kind != lexer.FinePunctuation || a.FineTokens[0].Data.Mark != '#' {
					return fmt.Errorf("lowered output does not start with a synthetic '#' token")
				}
				return nil
			},
		},
		scenario{
			name: "shebang-is-an-inner-attribute",
			src:  "#![feature]",
			opts: []lexer.Option{lexer.WithCleaning(lexer.CleanShebang)},
			check: func(a lexer.Analysis) error {
				return wantFineCount(5)(a) // '#' '!' '[' ident ']'
			},
		},
	)

	// Boundary cases.
	scenarios = append(scenarios,
		scenario{
			name:     "empty-input",
			src:      "",
			check:    wantFineCount(0),
			boundary: true,
		},
		scenario{
			name:     "lone-bom",
			src:      string(rune(0xFEFF)),
			check:    wantFineCount(0),
			boundary: true,
		},
		scenario{
			name:     "crlf-only-file",
			src:      "\r\n\r\n",
			check:    wantFineCount(1),
			boundary: true,
		},
		scenario{
			name:     "shebang-then-whitespace-comment-bracket-not-stripped",
			src:      "#! /* c */[x]\n",
			opts:     []lexer.Option{lexer.WithCleaning(lexer.CleanShebang)},
			boundary: true,
			check: func(a lexer.Analysis) error {
				if len(a.FineTokens) == 0 || a.FineTokens[0].Data.Kind != lexer.FinePunctuation || a.FineTokens[0].Data.Mark != '#' {
					return fmt.Errorf("shebang line was stripped when it should have been kept")
				}
				return nil
			},
		},
		scenario{
			name:     "raw-string-255-hashes-accepted",
			src:      `r` + repeatHash(255) + `"body"` + repeatHash(255),
			check:    wantFineCount(1),
			boundary: true,
		},
		scenario{
			name:     "raw-string-256-hashes-rejected",
			src:      `r` + repeatHash(256) + `"body"` + repeatHash(256),
			reject:   true,
			boundary: true,
		},
		scenario{
			name:     "char-literal-surrogate-rejected",
			src:      `'\u{D800}'`,
			reject:   true,
			boundary: true,
		},
		scenario{
			name:     "byte-string-unicode-escape-rejected",
			src:      `b"\u{41}"`,
			reject:   true,
			boundary: true,
		},
		scenario{
			name:     "c-string-embedded-nul-rejected",
			src:      `c"a\0b"`,
			reject:   true,
			boundary: true,
		},
		scenario{
			// A final-dot float shape refuses to match when the dot is
			// immediately followed by another '.', '_', or XID-start: that
			// leaves the integer "1" and three punctuation marks, which
			// coarsening glues into the "..." range-inclusive operator.
			name:     "final-dot-float-disqualified-by-following-dot",
			src:      "1...",
			boundary: true,
			check: func(a lexer.Analysis) error {
				if len(a.Regular) != 2 {
					return fmt.Errorf("got %d regularised tokens, want 2 (integer, punctuation)", len(a.Regular))
				}
				if a.Regular[0].Data.Kind != lexer.RegularIntegerLiteral {
					return fmt.Errorf("first token = %v, want RegularIntegerLiteral", a.Regular[0].Data.Kind)
				}
				if a.Regular[1].Data.Kind != lexer.RegularPunctuation {
					return fmt.Errorf("second token = %v, want RegularPunctuation", a.Regular[1].Data.Kind)
				}
				return nil
			},
		},
		scenario{
			name:     "raw-lifetime-2015-lexes-as-three-tokens",
			src:      "'r#foo",
			opts:     []lexer.Option{lexer.WithEdition(lexer.E2015)},
			check:    wantFineCount(3), // 'r , # , foo  -- lifetime 'r, punct #, ident foo
			boundary: true,
		},
		scenario{
			name:     "raw-lifetime-2021-lexes-as-one-token",
			src:      "'r#foo",
			opts:     []lexer.Option{lexer.WithEdition(lexer.E2021)},
			check:    wantFineCount(1),
			boundary: true,
		},
	)

	return scenarios
}

func repeatHash(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '#'
	}
	return string(b)
}
