package ingestion

import (
	"net/url"
	"strings"
)

// JobBoard is a hosted applicant-tracking site with a known page layout.
type JobBoard string

// Job boards recognized by DetectJobBoard.
const (
	BoardGreenhouse JobBoard = "greenhouse"
	BoardLever      JobBoard = "lever"
	BoardWorkday    JobBoard = "workday"
	BoardUnknown    JobBoard = "unknown"
)

var boardHosts = []struct {
	suffix string
	board  JobBoard
}{
	{"greenhouse.io", BoardGreenhouse},
	{"lever.co", BoardLever},
	{"myworkdayjobs.com", BoardWorkday},
	{"workday.com", BoardWorkday},
}

// DetectJobBoard identifies the job board hosting rawURL.
func DetectJobBoard(rawURL string) JobBoard {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return BoardUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, h := range boardHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.board
		}
	}
	return BoardUnknown
}

// boardContentSelectors returns the posting-body selectors for board, most
// specific first, followed by the generic JobPostingSelectors.
func boardContentSelectors(board JobBoard) []string {
	var specific []string
	switch board {
	case BoardGreenhouse:
		specific = []string{".job__description.body", ".job__description", ".job-post-container"}
	case BoardLever:
		specific = []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description"}
	case BoardWorkday:
		specific = []string{"[data-automation-id='jobDescription']", ".gwt-HTML"}
	}
	return append(specific, JobPostingSelectors...)
}

// boardNoiseSelectors returns application forms, EEO blocks and share widgets
// to strip before the posting text is read.
func boardNoiseSelectors(board JobBoard) []string {
	noise := []string{
		"form",
		".application-form",
		".apply-button-container",
		".eeo-statement",
		".voluntary-disclosure",
		".social-share",
		".cookie-consent",
	}
	switch board {
	case BoardGreenhouse:
		noise = append(noise, ".application--wrapper", ".voluntary-self-id", "#usa_self_id_section")
	case BoardLever:
		noise = append(noise, ".apply-section", ".posting-apply")
	case BoardWorkday:
		noise = append(noise, "[data-automation-id='applyButton']")
	}
	return noise
}
