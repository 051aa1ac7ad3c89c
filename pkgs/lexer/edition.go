package lexer

// Edition selects which grammar nonterminals are active and which
// cleaning behaviours apply. E2024 is the default.
type Edition int

const (
	E2015 Edition = iota
	E2021
	E2024
)

// DefaultEdition is the edition used when none is specified.
const DefaultEdition = E2024

func (e Edition) String() string {
	switch e {
	case E2015:
		return "2015"
	case E2021:
		return "2021"
	case E2024:
		return "2024"
	default:
		return "unknown-edition"
	}
}

// ParseEdition parses the --edition flag value.
func ParseEdition(s string) (Edition, bool) {
	switch s {
	case "2015":
		return E2015, true
	case "2021":
		return E2021, true
	case "2024":
		return E2024, true
	default:
		return 0, false
	}
}

// AtLeast reports whether e is the same edition as or later than other.
func (e Edition) AtLeast(other Edition) bool { return e >= other }

// CleaningMode selects which pre-tokenisation source transformations run.
type CleaningMode int

const (
	// CleanNone applies only BOM removal and CRLF normalisation.
	CleanNone CleaningMode = iota
	// CleanShebang additionally strips a leading shebang line.
	CleanShebang
	// CleanShebangAndFrontmatter additionally strips frontmatter.
	CleanShebangAndFrontmatter
)

func (m CleaningMode) String() string {
	switch m {
	case CleanNone:
		return "none"
	case CleanShebang:
		return "shebang"
	case CleanShebangAndFrontmatter:
		return "shebang-and-frontmatter"
	default:
		return "unknown-cleaning-mode"
	}
}

// ParseCleaningMode parses the --cleaning flag value.
func ParseCleaningMode(s string) (CleaningMode, bool) {
	switch s {
	case "none":
		return CleanNone, true
	case "shebang":
		return CleanShebang, true
	case "shebang-and-frontmatter":
		return CleanShebangAndFrontmatter, true
	default:
		return 0, false
	}
}

// Lowering selects whether doc-comments are rewritten into synthetic
// attribute token sequences after processing.
type Lowering int

const (
	NoLowering Lowering = iota
	LowerDocComments
)
