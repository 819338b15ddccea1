package fetch

import (
	"net/url"
	"strings"
)

// Platform is a job board whose pages get tailored selectors.
type Platform string

// Known platforms.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

type platformRules struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platforms = []platformRules{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", ".voluntary-self-id-wrapper", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".gwt-HTML", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
	},
}

// commonNoise is removed on every job board: application forms, EEO
// disclosures, share buttons and consent banners.
var commonNoise = []string{
	"form", "#application-form", ".application-form", ".apply-button-container",
	"[data-testid='application-form']",
	".voluntary-disclosure", ".eeo-statement", ".eeo-section", "[data-testid='eeo']",
	".legal-disclosure", ".self-identification",
	".social-share", ".share-buttons", ".social-links",
	".cookie-consent", ".gdpr-notice",
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, p := range platforms {
		for _, h := range p.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return p.platform
			}
		}
	}
	return PlatformUnknown
}

func rulesFor(p Platform) *platformRules {
	for i := range platforms {
		if platforms[i].platform == p {
			return &platforms[i]
		}
	}
	return nil
}

// ContentSelectors returns the selectors tried, in order, to locate the
// posting body.
func (p Platform) ContentSelectors() []string {
	if r := rulesFor(p); r != nil {
		return append([]string(nil), r.content...)
	}
	return JobPostingSelectors()
}

// NoiseSelectors returns the elements stripped before extraction.
func (p Platform) NoiseSelectors() []string {
	noise := append([]string(nil), commonNoise...)
	if r := rulesFor(p); r != nil {
		noise = append(noise, r.noise...)
	}
	return noise
}
