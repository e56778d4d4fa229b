package vocab

// SeedTerm is one controlled vocabulary entry shipped with the tool. Scope
// notes and modern equivalents are written only into databases that carry
// those columns.
type SeedTerm struct {
	Term             string
	Facet            string
	ScopeNote        string
	ModernEquivalent string
}

// SeedMapping resolves one raw catalog subject to a seed term.
type SeedMapping struct {
	AFISubject string
	Term       string
	Confidence float64
	Notes      string
}

// SeedTerms returns the initial vocabulary, grouped into research facets.
func SeedTerms() []SeedTerm {
	return []SeedTerm{
		// Family Relations
		{Term: "Mothers and daughters", Facet: "Family Relations", ScopeNote: "Primary plot relationships between mothers and daughters"},
		{Term: "Mothers and sons", Facet: "Family Relations", ScopeNote: "Primary plot relationships between mothers and sons"},
		{Term: "Fathers and daughters", Facet: "Family Relations", ScopeNote: "Primary plot relationships between fathers and daughters"},
		{Term: "Fathers and sons", Facet: "Family Relations", ScopeNote: "Primary plot relationships between fathers and sons"},
		{Term: "Motherhood", Facet: "Family Relations", ScopeNote: "Maternal themes, becoming a mother, maternal identity"},
		{Term: "Fatherhood", Facet: "Family Relations", ScopeNote: "Paternal themes, becoming a father, paternal identity"},
		{Term: "Brothers and sisters", Facet: "Family Relations", ScopeNote: "Sibling relationships"},
		{Term: "Sisters", Facet: "Family Relations", ScopeNote: "Relationships between sisters"},
		{Term: "Brothers", Facet: "Family Relations", ScopeNote: "Relationships between brothers"},
		{Term: "Orphans", Facet: "Family Relations", ScopeNote: "Characters without living parents, central to plot"},
		{Term: "Adoption", Facet: "Family Relations", ScopeNote: "Legal or informal adoption as plot element"},
		{Term: "Family relationships", Facet: "Family Relations", ScopeNote: "General family dynamics"},
		{Term: "Family life", Facet: "Family Relations", ScopeNote: "Domestic family situations"},
		{Term: "Aunts", Facet: "Family Relations", ScopeNote: "Aunt relationships"},
		{Term: "Uncles", Facet: "Family Relations", ScopeNote: "Uncle relationships"},
		{Term: "Cousins", Facet: "Family Relations", ScopeNote: "Cousin relationships"},
		{Term: "Grandmothers", Facet: "Family Relations", ScopeNote: "Grandmother relationships"},
		{Term: "Grandfathers", Facet: "Family Relations", ScopeNote: "Grandfather relationships"},
		{Term: "Stepmothers", Facet: "Family Relations", ScopeNote: "Stepmother relationships"},
		{Term: "Stepfathers", Facet: "Family Relations", ScopeNote: "Stepfather relationships"},
		{Term: "Children", Facet: "Family Relations", ScopeNote: "Young people as characters or themes"},

		// Marital Relations
		{Term: "Marriage", Facet: "Marital Relations", ScopeNote: "Marriage as institution or event"},
		{Term: "Engagements", Facet: "Marital Relations", ScopeNote: "Betrothal, engagement period"},
		{Term: "Weddings", Facet: "Marital Relations", ScopeNote: "Wedding ceremonies"},
		{Term: "Divorce", Facet: "Marital Relations", ScopeNote: "Marital dissolution"},
		{Term: "Widows", Facet: "Marital Relations", ScopeNote: "Women whose husbands have died"},
		{Term: "Widowers", Facet: "Marital Relations", ScopeNote: "Men whose wives have died"},
		{Term: "Infidelity", Facet: "Marital Relations", ScopeNote: "Marital unfaithfulness"},
		{Term: "Bigamy", Facet: "Marital Relations", ScopeNote: "Being married to multiple people"},
		{Term: "Romance", Facet: "Marital Relations", ScopeNote: "Romantic relationships"},
		{Term: "Courtship", Facet: "Marital Relations", ScopeNote: "Romantic pursuit"},

		// Professions
		{Term: "Physicians", Facet: "Professions", ScopeNote: "Medical doctors as significant characters"},
		{Term: "Lawyers", Facet: "Professions", ScopeNote: "Legal professionals as significant characters"},
		{Term: "Schoolteachers", Facet: "Professions", ScopeNote: "Teachers as significant characters"},
		{Term: "Nurses", Facet: "Professions", ScopeNote: "Medical nurses"},
		{Term: "Ministers", Facet: "Professions", ScopeNote: "Religious clergy"},
		{Term: "Writers", Facet: "Professions", ScopeNote: "Authors, journalists"},
		{Term: "Artists", Facet: "Professions", ScopeNote: "Painters, sculptors, etc."},
		{Term: "Farmers", Facet: "Professions", ScopeNote: "Agricultural workers"},
		{Term: "Servants", Facet: "Professions", ScopeNote: "Domestic workers"},

		// Social Issues
		{Term: "African Americans", Facet: "Social Issues", ScopeNote: "African American characters or themes"},
		{Term: "Native Americans", Facet: "Social Issues", ScopeNote: "Native American characters or themes"},
		{Term: "Racism", Facet: "Social Issues", ScopeNote: "Racial prejudice as theme"},
		{Term: "Class distinction", Facet: "Social Issues", ScopeNote: "Class differences as plot element"},
		{Term: "Poverty", Facet: "Social Issues", ScopeNote: "Economic hardship as theme"},
		{Term: "Slavery", Facet: "Social Issues", ScopeNote: "Enslavement of people"},
		{Term: "Prejudice", Facet: "Social Issues", ScopeNote: "Bias and discrimination"},

		// Women-Specific
		{Term: "Spinsters", Facet: "Women-Specific", ScopeNote: "Unmarried women (period term)", ModernEquivalent: "Single women"},
		{Term: "Working women", Facet: "Women-Specific", ScopeNote: "Women in workforce"},
		{Term: "Women in business", Facet: "Women-Specific", ScopeNote: "Female entrepreneurs/business owners"},
		{Term: "Women physicians", Facet: "Women-Specific", ScopeNote: "Female doctors"},
		{Term: "Women lawyers", Facet: "Women-Specific", ScopeNote: "Female attorneys"},
		{Term: "Actresses", Facet: "Women-Specific", ScopeNote: "Female stage/film performers"},
		{Term: "Chorus girls", Facet: "Women-Specific", ScopeNote: "Female stage performers"},
		{Term: "Childbirth", Facet: "Women-Specific", ScopeNote: "Giving birth, labor"},

		// Settings
		{Term: "Small town life", Facet: "Settings", ScopeNote: "Rural or small town settings"},
		{Term: "Rural life", Facet: "Settings", ScopeNote: "Rural/country settings"},
		{Term: "Urban life", Facet: "Settings", ScopeNote: "City settings"},
		{Term: "New York City", Facet: "Settings", ScopeNote: "NYC as setting"},
		{Term: "Plantations", Facet: "Settings", ScopeNote: "Southern plantation settings"},
		{Term: "Farms", Facet: "Settings", ScopeNote: "Agricultural settings"},
		{Term: "Boarding houses", Facet: "Settings", ScopeNote: "Boarding house settings"},

		// Plot Elements
		{Term: "Murder", Facet: "Plot Elements", ScopeNote: "Homicide as plot element"},
		{Term: "Trials", Facet: "Plot Elements", ScopeNote: "Legal proceedings"},
		{Term: "False accusations", Facet: "Plot Elements", ScopeNote: "Wrongful blame"},
		{Term: "Rescues", Facet: "Plot Elements", ScopeNote: "Rescue scenarios"},
		{Term: "Fires", Facet: "Plot Elements", ScopeNote: "Fire as plot element"},
		{Term: "Automobile accidents", Facet: "Plot Elements", ScopeNote: "Car crashes"},
		{Term: "Kidnapping", Facet: "Plot Elements", ScopeNote: "Abduction"},
		{Term: "Death and dying", Facet: "Plot Elements", ScopeNote: "Death as theme"},
		{Term: "Self-sacrifice", Facet: "Plot Elements", ScopeNote: "Sacrificing for others"},
		{Term: "Deception", Facet: "Plot Elements", ScopeNote: "Lies, tricks, false identities"},
		{Term: "Secrets", Facet: "Plot Elements", ScopeNote: "Hidden information driving plot"},
		{Term: "Inheritance", Facet: "Plot Elements", ScopeNote: "Inheritance disputes or windfalls"},
		{Term: "Blackmail", Facet: "Plot Elements", ScopeNote: "Extortion through threats"},
		{Term: "Escapes", Facet: "Plot Elements", ScopeNote: "Escape scenarios"},

		// Emotions/States
		{Term: "Jealousy", Facet: "Emotions/States", ScopeNote: "Jealousy as motivation"},
		{Term: "Revenge", Facet: "Emotions/States", ScopeNote: "Vengeance as motivation"},
		{Term: "Ambition", Facet: "Emotions/States", ScopeNote: "Drive for success/power"},

		// Health/Disability
		{Term: "Mental illness", Facet: "Health/Disability", ScopeNote: "Psychiatric conditions"},
		{Term: "Alcoholism", Facet: "Health/Disability", ScopeNote: "Alcohol addiction"},
		{Term: "Persons with disabilities", Facet: "Health/Disability", ScopeNote: "Characters with physical disabilities"},

		// Historical Periods
		{Term: "World War I", Facet: "Historical Periods", ScopeNote: "1914-1918 and aftermath"},
		{Term: "Roaring Twenties", Facet: "Historical Periods", ScopeNote: "1920s era"},
		{Term: "Great Depression", Facet: "Historical Periods", ScopeNote: "1929-1939 economic crisis"},
		{Term: "World War II", Facet: "Historical Periods", ScopeNote: "1939-1945 and home front"},
	}
}

// SeedMappings returns the curated subject-to-term mappings shipped with the
// tool. Confidence reflects how direct the resolution is: 1.0 for identity,
// lower for broader or modernized matches.
func SeedMappings() []SeedMapping {
	return []SeedMapping{
		// Identity matches.
		{AFISubject: "Mothers and daughters", Term: "Mothers and daughters", Confidence: 1.0},
		{AFISubject: "Mothers and sons", Term: "Mothers and sons", Confidence: 1.0},
		{AFISubject: "Fathers and daughters", Term: "Fathers and daughters", Confidence: 1.0},
		{AFISubject: "Orphans", Term: "Orphans", Confidence: 1.0},
		{AFISubject: "Marriage", Term: "Marriage", Confidence: 1.0},
		{AFISubject: "Physicians", Term: "Physicians", Confidence: 1.0},
		{AFISubject: "Lawyers", Term: "Lawyers", Confidence: 1.0},
		{AFISubject: "African Americans", Term: "African Americans", Confidence: 1.0},
		{AFISubject: "Racism", Term: "Racism", Confidence: 1.0},
		{AFISubject: "Murder", Term: "Murder", Confidence: 1.0},
		{AFISubject: "Children", Term: "Children", Confidence: 1.0},
		{AFISubject: "Brothers", Term: "Brothers", Confidence: 1.0},
		{AFISubject: "Sisters", Term: "Sisters", Confidence: 1.0},
		{AFISubject: "Weddings", Term: "Weddings", Confidence: 1.0},
		{AFISubject: "Nurses", Term: "Nurses", Confidence: 1.0},
		{AFISubject: "Ministers", Term: "Ministers", Confidence: 1.0},
		{AFISubject: "Artists", Term: "Artists", Confidence: 1.0},
		{AFISubject: "Farmers", Term: "Farmers", Confidence: 1.0},
		{AFISubject: "Servants", Term: "Servants", Confidence: 1.0},
		{AFISubject: "Trials", Term: "Trials", Confidence: 1.0},
		{AFISubject: "Kidnapping", Term: "Kidnapping", Confidence: 1.0},
		{AFISubject: "Death and dying", Term: "Death and dying", Confidence: 1.0},
		{AFISubject: "Childbirth", Term: "Childbirth", Confidence: 1.0},
		{AFISubject: "Divorce", Term: "Divorce", Confidence: 1.0},
		{AFISubject: "Courtship", Term: "Courtship", Confidence: 1.0},
		{AFISubject: "Spinsters", Term: "Spinsters", Confidence: 1.0},

		// Near-synonyms.
		{AFISubject: "Mothers", Term: "Motherhood", Confidence: 1.0},
		{AFISubject: "Fathers", Term: "Fatherhood", Confidence: 1.0},
		{AFISubject: "Family honor", Term: "Family relationships", Confidence: 0.9},
		{AFISubject: "Mothers-in-law", Term: "Family relationships", Confidence: 0.9},
		{AFISubject: "Fathers-in-law", Term: "Family relationships", Confidence: 0.9},
		{AFISubject: "Schoolmasters", Term: "Schoolteachers", Confidence: 0.9},
		{AFISubject: "Tutors", Term: "Schoolteachers", Confidence: 0.9},

		// Broader resolutions.
		{AFISubject: "Bigamy", Term: "Marriage", Confidence: 0.8},
		{AFISubject: "Desertion (Marital)", Term: "Marriage", Confidence: 0.8},
		{AFISubject: "Marriage--Arranged", Term: "Marriage", Confidence: 0.8},
		{AFISubject: "Marriage--Secret", Term: "Marriage", Confidence: 0.8},

		// Period catalog terms resolved to current usage.
		{AFISubject: "Indians of North America", Term: "Native Americans", Confidence: 0.95,
			Notes: "Catalog uses the period heading"},
		{AFISubject: "Handicapped", Term: "Persons with disabilities", Confidence: 0.95,
			Notes: "Catalog uses the period heading"},
	}
}
