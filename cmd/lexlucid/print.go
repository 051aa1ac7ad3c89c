package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattheww/lexeywan/pkgs/charseq"
	"github.com/mattheww/lexeywan/pkgs/lexer"
)

func printFineTokens(out io.Writer, tokens []lexer.FineToken) {
	for i, tok := range tokens {
		fmt.Fprintf(out, "%4d  %-12s %s\n", i, tok.Data.Kind, describeFineToken(tok))
	}
}

func describeFineToken(tok lexer.FineToken) string {
	d := tok.Data
	switch d.Kind {
	case lexer.FinePunctuation:
		return fmt.Sprintf("%q", d.Mark)
	case lexer.FineIdent, lexer.FineRawIdent:
		return d.RepresentedIdent.DebugString()
	case lexer.FineLifetimeOrLabel, lexer.FineRawLifetimeOrLabel:
		return "'" + d.Name.DebugString()
	case lexer.FineLineComment, lexer.FineBlockComment:
		return fmt.Sprintf("%s %s", d.CommentStyle, d.Body.DebugString())
	case lexer.FineCharLiteral:
		return fmt.Sprintf("%q%s", d.RepresentedCharacter, suffixSuffix(d.Suffix))
	case lexer.FineByteLiteral:
		return fmt.Sprintf("0x%02x%s", d.RepresentedByte, suffixSuffix(d.Suffix))
	case lexer.FineStringLiteral, lexer.FineRawStringLiteral:
		return d.RepresentedString.DebugString() + suffixSuffix(d.Suffix)
	case lexer.FineByteStringLiteral, lexer.FineRawByteStringLiteral, lexer.FineCStringLiteral, lexer.FineRawCStringLiteral:
		return fmt.Sprintf("%v%s", d.RepresentedBytes, suffixSuffix(d.Suffix))
	case lexer.FineIntegerLiteral:
		return fmt.Sprintf("%s %s%s", d.Base, d.Digits.String(), suffixSuffix(d.Suffix))
	case lexer.FineFloatLiteral:
		return d.FloatBody.String() + suffixSuffix(d.Suffix)
	default:
		if !tok.Origin.IsSynthetic() {
			return tok.Origin.Extent().DebugString()
		}
		return ""
	}
}

func suffixSuffix(suffix charseq.CharSeq) string {
	if suffix.IsEmpty() {
		return ""
	}
	return " suffix=" + suffix.String()
}

func printCoarseForest(out io.Writer, forest lexer.Forest[lexer.CoarseToken], depth int) {
	indent := strings.Repeat("  ", depth)
	for _, tree := range forest.Contents {
		if tree.IsGroup {
			fmt.Fprintf(out, "%sgroup %c%c\n", indent, tree.Kind.OpenChar(), tree.Kind.CloseChar())
			printCoarseForest(out, tree.Group, depth+1)
			continue
		}
		tok := tree.Token
		fmt.Fprintf(out, "%s%-22s %-6s %s\n", indent, tok.Data.Kind, tok.Spacing, describeCoarseToken(tok))
	}
}

func describeCoarseToken(tok lexer.CoarseToken) string {
	d := tok.Data
	switch d.Kind {
	case lexer.CoarsePunctuation:
		return string(d.Marks)
	case lexer.CoarseIdent, lexer.CoarseRawIdent:
		return d.RepresentedIdent.DebugString()
	case lexer.CoarseLifetimeOrLabel, lexer.CoarseRawLifetimeOrLabel:
		return "'" + d.Name.DebugString()
	case lexer.CoarseLineComment, lexer.CoarseBlockComment:
		return fmt.Sprintf("%s %s", d.DocStyle, d.Body.DebugString())
	case lexer.CoarseStringLiteral, lexer.CoarseRawStringLiteral:
		return d.RepresentedString.DebugString()
	default:
		if !tok.Origin.IsSynthetic() {
			return tok.Origin.Extent().DebugString()
		}
		return ""
	}
}

func printRegularTokens(out io.Writer, tokens []lexer.RegularToken) {
	for i, tok := range tokens {
		fmt.Fprintf(out, "%4d  %-28s %-6s %s\n", i, tok.Data.Kind, tok.Spacing, tok.Extent.DebugString())
	}
}
