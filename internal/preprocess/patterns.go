package preprocess

import (
	"regexp"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/text"
)

// Token patterns found in Brazilian price-list product descriptions:
// dosage strengths, pharmaceutical forms, and packaging recipients.
var (
	doseRe      = regexp.MustCompile(`(?i)(\d+,)?\d+\s?(mg|g|ml|ui)(/\d?(mg|g|ml))?`)
	formRe      = regexp.MustCompile(`(?i)\b(sach\w*|po|tab|cap|comp|cpr|susp|sol|inj|amp|xpe)\b`)
	recipientRe = regexp.MustCompile(`(?i)\b(bg|canet\w*|fa|fr|cx|env|pt)\b`)
)

// ExtractPatterns pulls the first dose, form, and recipient token out of a
// product name and returns them together with the name stripped of every
// such match and re-collapsed.
func ExtractPatterns(name string) models.PatternFields {
	f := models.PatternFields{
		Dose:      text.Clean(doseRe.FindString(name)),
		Form:      text.Clean(formRe.FindString(name)),
		Recipient: text.Clean(recipientRe.FindString(name)),
	}
	stripped := doseRe.ReplaceAllString(name, " ")
	stripped = formRe.ReplaceAllString(stripped, " ")
	stripped = recipientRe.ReplaceAllString(stripped, " ")
	f.CleanedName = text.Clean(stripped)
	return f
}
