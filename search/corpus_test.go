package search

import (
	"github.com/poiesic/certsearch/core"
)

func testCorpus() []core.Record {
	return []core.Record{
		{
			ID:          "cka",
			Acronym:     "CKA",
			Name:        "Certified Kubernetes Administrator",
			Description: "Administer production Kubernetes clusters.",
			Level:       core.LevelIntermediate,
			Domains: []core.Domain{
				{Name: "Cluster Architecture", Topics: []core.Topic{{Name: "RBAC"}, {Name: "etcd backup"}}},
				{Name: "Troubleshooting"},
			},
		},
		{
			ID:          "ckad",
			Acronym:     "CKAD",
			Name:        "Certified Kubernetes Application Developer",
			Description: "Design and deploy cloud native applications.",
			Level:       core.LevelIntermediate,
		},
		{
			ID:      "kcna",
			Acronym: "KCNA",
			Name:    "Kubernetes and Cloud Native Associate",
			Level:   core.LevelEntry,
		},
		{
			ID:          "aws-ccp",
			Acronym:     "AWS CCP",
			Name:        "AWS Certified Cloud Practitioner",
			Description: "certifications.aws-ccp.description",
			Level:       core.LevelEntry,
		},
		{
			ID:      "aws-saa",
			Acronym: "AWS SAA",
			Name:    "AWS Certified Solutions Architect Associate",
			Level:   core.LevelIntermediate,
		},
		{
			ID:      "cissp",
			Acronym: "CISSP",
			Name:    "Certified Information Systems Security Professional",
			Level:   core.LevelAdvanced,
			Domains: []core.Domain{{Name: "Security and Risk Management"}},
		},
		{
			ID:      "ccna",
			Acronym: "CCNA",
			Name:    "Cisco Certified Network Associate",
			Level:   core.LevelEntry,
			Domains: []core.Domain{{Name: "Network Fundamentals", Topics: []core.Topic{{Name: "Subnetting"}}}},
		},
		{
			ID:      "lfcs",
			Acronym: "LFCS",
			Name:    "Linux Foundation Certified System Administrator",
			Level:   core.LevelIntermediate,
		},
		{
			ID:      "pmp",
			Acronym: "PMP",
			Name:    "Project Management Professional",
			Level:   core.LevelAdvanced,
		},
	}
}

func testCategories() core.CategoryIndex {
	return core.CategoryIndex{
		"cka":     {Key: "cloud-native", Name: "categories.cloud-native"},
		"ckad":    {Key: "cloud-native", Name: "categories.cloud-native"},
		"kcna":    {Key: "cloud-native", Name: "categories.cloud-native"},
		"aws-ccp": {Key: "cloud", Name: "Cloud"},
		"aws-saa": {Key: "cloud", Name: "Cloud"},
		"cissp":   {Key: "security", Name: "Security"},
	}
}

// recordingMonitor captures every pipeline callback.
type recordingMonitor struct {
	query    string
	keywords []string
	accepted []Match
	rejected []Match
	ranked   []Candidate
	results  []core.Suggestion
	finished bool
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(query string)               { m.query = query }
func (m *recordingMonitor) AfterExpansion(keywords []string) { m.keywords = keywords }
func (m *recordingMonitor) Candidate(_ *core.Record, match Match) {
	m.accepted = append(m.accepted, match)
}
func (m *recordingMonitor) Rejected(_ *core.Record, match Match) {
	m.rejected = append(m.rejected, match)
}
func (m *recordingMonitor) AfterRanking(candidates []Candidate) { m.ranked = candidates }
func (m *recordingMonitor) Finish(results []core.Suggestion) {
	m.results = results
	m.finished = true
}
