package lexer

import (
	"testing"

	"github.com/mattheww/lexeywan/pkgs/charseq"
)

func TestCleanRemovesBOM(t *testing.T) {
	input := charseq.New([]rune{byteOrderMark, 'a'})
	got := Clean(input, DefaultEdition, CleanNone)
	cleaned, ok := got.Value()
	if !ok {
		t.Fatalf("Clean rejected: %v", got.Reasons())
	}
	if cleaned.String() != "a" {
		t.Fatalf("Clean(BOM+a) = %q, want %q", cleaned.String(), "a")
	}
}

func TestCleanNormalisesCRLF(t *testing.T) {
	got := Clean(charseq.FromString("a\r\nb\rc"), DefaultEdition, CleanNone)
	cleaned, ok := got.Value()
	if !ok {
		t.Fatalf("Clean rejected: %v", got.Reasons())
	}
	if cleaned.String() != "a\nb\rc" {
		t.Fatalf("Clean(CRLF) = %q, want %q", cleaned.String(), "a\nb\rc")
	}
}

func TestCleanShebangRemovesLeadingShebangLine(t *testing.T) {
	got := Clean(charseq.FromString("#!/usr/bin/env run\nfn main() {}"), DefaultEdition, CleanShebang)
	cleaned, ok := got.Value()
	if !ok {
		t.Fatalf("Clean rejected: %v", got.Reasons())
	}
	if cleaned.String() != "\nfn main() {}" {
		t.Fatalf("Clean(shebang) = %q", cleaned.String())
	}
}

func TestCleanShebangLeavesInnerAttributeAlone(t *testing.T) {
	got := Clean(charseq.FromString("#![allow(dead_code)]"), DefaultEdition, CleanShebang)
	cleaned, ok := got.Value()
	if !ok {
		t.Fatalf("Clean rejected: %v", got.Reasons())
	}
	if cleaned.String() != "#![allow(dead_code)]" {
		t.Fatalf("Clean(inner attribute) = %q, want input unchanged", cleaned.String())
	}
}

func TestCleanFrontmatterIsRemoved(t *testing.T) {
	src := "---\nsome front matter\n---\nfn main() {}"
	got := Clean(charseq.FromString(src), DefaultEdition, CleanShebangAndFrontmatter)
	cleaned, ok := got.Value()
	if !ok {
		t.Fatalf("Clean rejected: %v", got.Reasons())
	}
	if cleaned.String() != "fn main() {}" {
		t.Fatalf("Clean(frontmatter) = %q, want %q", cleaned.String(), "fn main() {}")
	}
}

func TestCleanMalformedFrontmatterIsRejected(t *testing.T) {
	src := "---\nno closing fence"
	got := Clean(charseq.FromString(src), DefaultEdition, CleanShebangAndFrontmatter)
	if !got.IsReject() {
		t.Fatalf("expected malformed (unclosed) frontmatter to be rejected")
	}
}

func TestCleanForMacroInputOnlyNormalisesCRLF(t *testing.T) {
	got := CleanForMacroInput(charseq.FromString("a\r\nb"), DefaultEdition)
	if got.String() != "a\nb" {
		t.Fatalf("CleanForMacroInput = %q, want %q", got.String(), "a\nb")
	}
}
