// ABOUTME: Benchmark scenario data for search quality evaluation
// ABOUTME: Defines the seeded candidate corpus, queries, and ground truth per test

package searchbench

import "github.com/harper/talent-warehouse/internal/models"

// TestScenario represents a complete search quality benchmark test
type TestScenario struct {
	ID          string
	Name        string
	Description string
	Query       string
	Filters     models.Filters
	GroundTruth GroundTruth
}

// GroundTruth defines expected outcomes for search evaluation
type GroundTruth struct {
	// Candidate names that MUST appear in the result set
	ExpectedNames []string

	// Candidate names that MUST NOT appear in the result set
	ForbiddenNames []string

	// Name expected in the top-ranked position; empty skips the check
	ExpectedTopName string

	// Whether the full-text engine is expected to run for this query
	ExpectSearched bool
}

// TestResult represents the outcome of a benchmark test
type TestResult struct {
	TestID         string
	TestName       string
	PrecisionScore float64
	RecallScore    float64
	OverallScore   float64
	DurationMS     float64
	Status         string // "PASS" or "FAIL"
	Details        map[string]interface{}
	ErrorMessage   string
}

// CorpusRecord pairs the parsed and summary records for one seeded candidate.
type CorpusRecord struct {
	Parsed  *models.ParsedResume
	Summary *models.CandidateSummary
}

// GetCorpus returns the fixed candidate corpus every benchmark runs against.
// Keyword placement is deliberate: "python" appears only for Flores, Webb,
// and Tanaka; "Thornfield" only for Webb; "CFA" only for Flores.
func GetCorpus() []CorpusRecord {
	return []CorpusRecord{
		{
			Parsed: &models.ParsedResume{
				Name:     "Ana Flores",
				Location: "New York, NY",
				Experiences: []models.ExperienceRecord{
					{
						Company:  "Granite Peak Capital",
						Title:    "Senior Equity Analyst",
						Start:    "2019-03",
						Sectors:  []string{"Technology"},
						Approach: "Fundamental",
						BulletPoints: []string{
							"Covered 25 large-cap software and internet names",
						},
					},
					{
						Company: "Blue Harbor Research",
						Title:   "Equity Research Associate",
						Start:   "2015-06",
						End:     "2019-02",
					},
				},
				Education: []models.EducationRecord{
					{Degree: "MBA", Major: "Finance", School: "Columbia Business School"},
				},
				Skills:         []string{"Python", "SQL", "Financial Modeling"},
				Certifications: []string{"CFA"},
			},
			Summary: &models.CandidateSummary{
				Name:               "Ana Flores",
				CurrentTitle:       "Senior Equity Analyst",
				CurrentCompany:     "Granite Peak Capital",
				YearsExperience:    years(9),
				SectorFocus:        []string{"Technology"},
				InvestmentApproach: "Fundamental",
				PrimaryGeography:   "United States",
				TopSkills:          []string{"Python", "SQL", "Financial Modeling"},
				Certifications:     []string{"CFA"},
			},
		},
		{
			Parsed: &models.ParsedResume{
				Name:     "Marcus Webb",
				Location: "Boston, MA",
				Experiences: []models.ExperienceRecord{
					{
						Company:  "Thornfield Advisors",
						Title:    "Portfolio Manager",
						Start:    "2017-01",
						Sectors:  []string{"Technology"},
						Approach: "Quantitative",
						BulletPoints: []string{
							"Runs a market-neutral book across global technology names",
						},
					},
					{
						Company: "Ridgeline Systematic",
						Title:   "Quantitative Researcher",
						Start:   "2011-08",
						End:     "2016-12",
						BulletPoints: []string{
							"Researched cross-sectional momentum signals",
						},
					},
				},
				Education: []models.EducationRecord{
					{Degree: "PhD", Major: "Statistics", School: "MIT"},
				},
				Skills: []string{"Python", "C++", "Machine Learning"},
			},
			Summary: &models.CandidateSummary{
				Name:               "Marcus Webb",
				CurrentTitle:       "Portfolio Manager",
				CurrentCompany:     "Thornfield Advisors",
				YearsExperience:    years(14),
				SectorFocus:        []string{"Technology"},
				InvestmentApproach: "Quantitative",
				PrimaryGeography:   "United States",
				TopSkills:          []string{"Python", "C++", "Machine Learning"},
			},
		},
		{
			Parsed: &models.ParsedResume{
				Name:     "Priya Raman",
				Location: "London, UK",
				Experiences: []models.ExperienceRecord{
					{
						Company:  "Lotus Bridge Partners",
						Title:    "Research Analyst",
						Start:    "2019-09",
						Sectors:  []string{"Healthcare"},
						Approach: "Fundamental",
						BulletPoints: []string{
							"Covers European pharma and medtech under IFRS reporting",
						},
					},
				},
				Education: []models.EducationRecord{
					{Degree: "MSc", Major: "Finance", School: "London Business School"},
				},
				Skills: []string{"Valuation", "DCF Modeling", "Accounting"},
			},
			Summary: &models.CandidateSummary{
				Name:               "Priya Raman",
				CurrentTitle:       "Research Analyst",
				CurrentCompany:     "Lotus Bridge Partners",
				YearsExperience:    years(6),
				SectorFocus:        []string{"Healthcare"},
				InvestmentApproach: "Fundamental",
				PrimaryGeography:   "Europe",
				TopSkills:          []string{"Valuation", "DCF Modeling", "Accounting"},
			},
		},
		{
			Parsed: &models.ParsedResume{
				Name:     "Daniel Osei",
				Location: "Geneva, Switzerland",
				Experiences: []models.ExperienceRecord{
					{
						Company:  "Meridian Rock Capital",
						Title:    "Energy Strategist",
						Start:    "2014-05",
						Sectors:  []string{"Energy"},
						Approach: "Macro",
						BulletPoints: []string{
							"Trades power and gas futures across European hubs",
						},
					},
				},
				Education: []models.EducationRecord{
					{Degree: "BSc", Major: "Economics", School: "University of Edinburgh"},
				},
				Skills: []string{"Commodities", "Futures", "Risk Management"},
			},
			Summary: &models.CandidateSummary{
				Name:               "Daniel Osei",
				CurrentTitle:       "Energy Strategist",
				CurrentCompany:     "Meridian Rock Capital",
				YearsExperience:    years(11),
				SectorFocus:        []string{"Energy"},
				InvestmentApproach: "Macro",
				PrimaryGeography:   "Europe",
				TopSkills:          []string{"Commodities", "Futures", "Risk Management"},
			},
		},
		{
			Parsed: &models.ParsedResume{
				Name:     "Sofia Marchetti",
				Location: "Milan, Italy",
				Experiences: []models.ExperienceRecord{
					{
						Company:  "Ponte Vecchio Asset Management",
						Title:    "Credit Analyst",
						Start:    "2021-02",
						Sectors:  []string{"Financials"},
						Approach: "Fundamental",
						BulletPoints: []string{
							"Monitors high-yield issuers across southern Europe",
						},
					},
				},
				Education: []models.EducationRecord{
					{Degree: "BA", Major: "Economics", School: "Bocconi University"},
				},
				Skills: []string{"Credit Analysis", "Fixed Income", "Bloomberg"},
			},
			Summary: &models.CandidateSummary{
				Name:               "Sofia Marchetti",
				CurrentTitle:       "Credit Analyst",
				CurrentCompany:     "Ponte Vecchio Asset Management",
				YearsExperience:    years(4),
				SectorFocus:        []string{"Financials"},
				InvestmentApproach: "Fundamental",
				PrimaryGeography:   "Europe",
				TopSkills:          []string{"Credit Analysis", "Fixed Income", "Bloomberg"},
			},
		},
		{
			Parsed: &models.ParsedResume{
				Name:     "Kenji Tanaka",
				Location: "Tokyo, Japan",
				Experiences: []models.ExperienceRecord{
					{
						Company:  "Sakura Systematic",
						Title:    "Quantitative Researcher",
						Start:    "2018-04",
						Sectors:  []string{"Technology"},
						Approach: "Quantitative",
						BulletPoints: []string{
							"Prototypes intraday alpha signals on Japanese equities",
						},
					},
				},
				Education: []models.EducationRecord{
					{Degree: "MS", Major: "Computer Science", School: "University of Tokyo"},
				},
				Skills: []string{"Python", "Statistics", "Signal Research"},
			},
			Summary: &models.CandidateSummary{
				Name:               "Kenji Tanaka",
				CurrentTitle:       "Quantitative Researcher",
				CurrentCompany:     "Sakura Systematic",
				YearsExperience:    years(7),
				SectorFocus:        []string{"Technology"},
				InvestmentApproach: "Quantitative",
				PrimaryGeography:   "Asia-Pacific",
				TopSkills:          []string{"Python", "Statistics", "Signal Research"},
			},
		},
	}
}

// GetSkillRecallTest returns the skill keyword recall scenario
func GetSkillRecallTest() TestScenario {
	return TestScenario{
		ID:          "test_skill_recall",
		Name:        "Skill Keyword Recall",
		Description: "Tests that a bare skill term retrieves every candidate carrying that skill",
		Query:       "python",
		GroundTruth: GroundTruth{
			ExpectedNames:  []string{"Ana Flores", "Marcus Webb", "Kenji Tanaka"},
			ForbiddenNames: []string{"Priya Raman", "Daniel Osei", "Sofia Marchetti"},
			ExpectSearched: true,
		},
	}
}

// GetCompanyRetrievalTest returns the employer name retrieval scenario
func GetCompanyRetrievalTest() TestScenario {
	return TestScenario{
		ID:          "test_company_retrieval",
		Name:        "Company Name Retrieval",
		Description: "Tests that an employer name retrieves exactly the candidate who worked there",
		Query:       "thornfield",
		GroundTruth: GroundTruth{
			ExpectedNames:   []string{"Marcus Webb"},
			ForbiddenNames:  []string{"Ana Flores", "Kenji Tanaka"},
			ExpectedTopName: "Marcus Webb",
			ExpectSearched:  true,
		},
	}
}

// GetFilterPrecisionTest returns the search-plus-filter composition scenario
func GetFilterPrecisionTest() TestScenario {
	return TestScenario{
		ID:          "test_filter_precision",
		Name:        "Search With Structured Filters",
		Description: "Tests that structured predicates narrow a search result without losing expected hits",
		Query:       "python",
		Filters:     models.Filters{Geography: "United States"},
		GroundTruth: GroundTruth{
			ExpectedNames:  []string{"Ana Flores", "Marcus Webb"},
			ForbiddenNames: []string{"Kenji Tanaka"},
			ExpectSearched: true,
		},
	}
}

// GetBrowseFallbackTest returns the blank-query browse scenario
func GetBrowseFallbackTest() TestScenario {
	return TestScenario{
		ID:          "test_browse_fallback",
		Name:        "Blank Query Browses All",
		Description: "Tests that a blank query skips the search engine and filters the full candidate list",
		Query:       "",
		Filters:     models.Filters{Sector: "Energy"},
		GroundTruth: GroundTruth{
			ExpectedNames:   []string{"Daniel Osei"},
			ForbiddenNames:  []string{"Sofia Marchetti", "Marcus Webb"},
			ExpectedTopName: "Daniel Osei",
			ExpectSearched:  false,
		},
	}
}

// GetMalformedQueryTest returns the degraded engine failure scenario
func GetMalformedQueryTest() TestScenario {
	return TestScenario{
		ID:          "test_malformed_degrade",
		Name:        "Malformed Query Degrades To Empty",
		Description: "Tests that invalid search syntax yields an empty searched result instead of an error",
		Query:       "AND AND",
		GroundTruth: GroundTruth{
			ForbiddenNames: []string{"Ana Flores", "Marcus Webb"},
			ExpectSearched: true,
		},
	}
}

// GetCertificationSearchTest returns the certification keyword scenario
func GetCertificationSearchTest() TestScenario {
	return TestScenario{
		ID:          "test_certification_search",
		Name:        "Certification Keyword Search",
		Description: "Tests that a certification term retrieves exactly the candidate holding it",
		Query:       "CFA",
		GroundTruth: GroundTruth{
			ExpectedNames:   []string{"Ana Flores"},
			ForbiddenNames:  []string{"Marcus Webb", "Priya Raman"},
			ExpectedTopName: "Ana Flores",
			ExpectSearched:  true,
		},
	}
}

// GetPhraseSearchTest returns the quoted-phrase scenario
func GetPhraseSearchTest() TestScenario {
	return TestScenario{
		ID:          "test_phrase_search",
		Name:        "Quoted Phrase Search",
		Description: "Tests that a quoted phrase matches adjacent title tokens, not scattered terms",
		Query:       `"portfolio manager"`,
		GroundTruth: GroundTruth{
			ExpectedNames:   []string{"Marcus Webb"},
			ForbiddenNames:  []string{"Priya Raman", "Kenji Tanaka"},
			ExpectedTopName: "Marcus Webb",
			ExpectSearched:  true,
		},
	}
}

// GetPrefixSearchTest returns the trailing-star prefix scenario
func GetPrefixSearchTest() TestScenario {
	return TestScenario{
		ID:          "test_prefix_search",
		Name:        "Prefix Wildcard Search",
		Description: "Tests that a trailing-star prefix expands to every matching title token",
		Query:       "quant*",
		GroundTruth: GroundTruth{
			ExpectedNames:  []string{"Marcus Webb", "Kenji Tanaka"},
			ForbiddenNames: []string{"Ana Flores", "Daniel Osei"},
			ExpectSearched: true,
		},
	}
}

// GetBooleanQueryTest returns the explicit AND operator scenario
func GetBooleanQueryTest() TestScenario {
	return TestScenario{
		ID:          "test_boolean_query",
		Name:        "Boolean AND Query",
		Description: "Tests that an AND query requires both terms across a candidate's document",
		Query:       "python AND statistics",
		GroundTruth: GroundTruth{
			ExpectedNames:  []string{"Marcus Webb", "Kenji Tanaka"},
			ForbiddenNames: []string{"Ana Flores"},
			ExpectSearched: true,
		},
	}
}

// GetAllTests returns all search quality benchmark tests
func GetAllTests() []TestScenario {
	return []TestScenario{
		GetSkillRecallTest(),
		GetCompanyRetrievalTest(),
		GetFilterPrecisionTest(),
		GetBrowseFallbackTest(),
		GetMalformedQueryTest(),
		GetCertificationSearchTest(),
		GetPhraseSearchTest(),
		GetPrefixSearchTest(),
		GetBooleanQueryTest(),
	}
}

func years(v float64) *float64 {
	return &v
}
