package types

const InappropriateWordsReason = "content contains inappropriate words"

// Report is the verdict produced for one piece of content.
type Report struct {
	WordCount     int     `json:"word_count"`
	CharCount     int     `json:"char_count"`
	HasBadWords   bool    `json:"has_bad_words"`
	Sentiment     float64 `json:"sentiment"`
	IsAppropriate bool    `json:"is_appropriate"`
}

// EmptyReport is the verdict for absent or empty content.
func EmptyReport() Report {
	return Report{IsAppropriate: true}
}

// Reason explains a negative verdict. It is empty for appropriate content.
func (r Report) Reason() string {
	if r.HasBadWords {
		return InappropriateWordsReason
	}
	return ""
}

type ErrorReport struct {
	Error         string `json:"error"`
	IsAppropriate bool   `json:"is_appropriate"`
}

func NewErrorReport(msg string) ErrorReport {
	return ErrorReport{Error: msg}
}
