package analysis

import "github.com/parun-tech/resume-checker/pkg/nlp"

// ErrValidation is a user-facing validation failure.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

const (
	ErrJobDescriptionEmpty ErrValidation = "Job description is too short or empty."
	ErrResumeMissing       ErrValidation = "No resume file uploaded"
)

// MatchResult is the outcome of comparing a resume against a job description.
type MatchResult struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
}

// ValidateJobDescription rejects a job description without keywords.
func ValidateJobDescription(jd nlp.KeywordSet) error {
	if jd.Len() == 0 {
		return ErrJobDescriptionEmpty
	}
	return nil
}

// Compare splits the job description keywords into those present in the
// resume and those missing from it. Both lists follow the order in which the
// keywords first appear in the job description.
func Compare(resume, jd nlp.KeywordSet) (MatchResult, error) {
	if err := ValidateJobDescription(jd); err != nil {
		return MatchResult{}, err
	}
	matched := make([]string, 0, jd.Len())
	missing := make([]string, 0, jd.Len())
	for _, k := range jd.Keywords() {
		if resume.Contains(k) {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}
	return MatchResult{
		Score:           Score(len(matched), jd.Len()),
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}, nil
}

// Score returns 100*matched/total rounded half up. total must be positive.
func Score(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*matched + total) / (2 * total)
}
