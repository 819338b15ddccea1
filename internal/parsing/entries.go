package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

var (
	projectTechPrefix = regexp.MustCompile(`(?i)^(?:Technologies?|Tech|Built with|Stack):?\s*`)
	repoLinkPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:github\.com|gitlab\.com|bitbucket\.org)/[\w-]+/[\w-]+`)

	// issuerPatterns are tried in order; group 1 is the issuer.
	issuerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:by|from|issued by)\s+([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)(AWS|Google|Microsoft|Cisco|CompTIA|Oracle|Salesforce|Adobe|PMI|Scrum)`),
	}
)

const (
	minProjectNameLength = 6
	minCertLength        = 5
)

func parseProjectLine(line string, r *types.StructuredResume) {
	if listBullet.MatchString(line) {
		if len(r.Projects) == 0 {
			return
		}
		last := &r.Projects[len(r.Projects)-1]
		text := listBullet.ReplaceAllString(line, "")

		if projectTechPrefix.MatchString(text) {
			last.Technologies = projectTechPrefix.ReplaceAllString(text, "")
			return
		}
		if last.Description != "" {
			last.Description += " "
		}
		last.Description += text
		return
	}

	if runeLen(line) < minProjectNameLength {
		return
	}

	link := repoLinkPattern.FindString(line)
	name := line
	if link != "" {
		name = strings.Replace(line, link, "", 1)
	}
	r.Projects = append(r.Projects, types.Project{
		Name: strings.TrimSpace(name),
		Link: link,
	})
}

func parseCertificationLine(line string, r *types.StructuredResume) {
	if runeLen(line) < minCertLength {
		return
	}

	name := listBullet.ReplaceAllString(line, "")
	cert := types.Certification{
		Name: name,
		Date: yearPattern.FindString(name),
	}
	for _, p := range issuerPatterns {
		if m := p.FindStringSubmatch(name); m != nil {
			cert.Issuer = strings.TrimSpace(m[1])
			break
		}
	}

	r.Certifications = append(r.Certifications, cert)
}
