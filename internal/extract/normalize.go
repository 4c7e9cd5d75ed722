package extract

import (
	"regexp"
	"strings"
)

// PDF extractors routinely glue words together across style runs. These
// rules re-insert the separators the layout implied. Order matters: the
// whitespace collapse must run last.
var (
	reLowerUpper   = regexp.MustCompile(`([a-z])([A-Z])`)
	reAcronymWord  = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	rePeriodUpper  = regexp.MustCompile(`\.([A-Z])`)
	reCommaLetter  = regexp.MustCompile(`,([A-Za-z])`)
	rePipe         = regexp.MustCompile(`\|`)
	reLetterAtSign = regexp.MustCompile(`([a-zA-Z])@`)
)

// Normalize applies deterministic cleanup to extracted resume text so the
// model sees word boundaries the PDF lost. It is idempotent.
func Normalize(text string) string {
	text = reLowerUpper.ReplaceAllString(text, "$1 $2")
	text = reAcronymWord.ReplaceAllString(text, "$1 $2")
	text = rePeriodUpper.ReplaceAllString(text, ". $1")
	text = reCommaLetter.ReplaceAllString(text, ", $1")
	text = rePipe.ReplaceAllString(text, " | ")
	text = reLetterAtSign.ReplaceAllString(text, "$1 @")
	return strings.Join(strings.Fields(text), " ")
}
