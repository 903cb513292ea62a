package career

// Static program and track catalogs. These are maintained by hand and
// updated each time the curriculum changes; course codes must exactly match
// the codes used by the registrar so completed-course matching works.

// Thresholds shared by the matcher and the roadmap builder.
const (
	// DefaultTargetPoint is the per-course grade target when a track does not
	// set its own (B+).
	DefaultTargetPoint = 3.33
	// DefaultTargetCGPA is the roadmap target when the student sets none.
	DefaultTargetCGPA = 3.50
	// MaxTrimesterCredits caps a planned trimester; anything above it trips
	// the heavy-load warning elsewhere in the app.
	MaxTrimesterCredits = 15.0
)

var programs = []Program{
	{
		ID:           "bscse",
		Name:         "BSc in Computer Science & Engineering",
		TotalCredits: 140,
		Courses: []ProgramCourse{
			{Code: "ENG1011", Name: "English I", Credits: 3},
			{Code: "ENG1013", Name: "English II", Credits: 3, Prerequisites: []string{"ENG1011"}},
			{Code: "MATH1151", Name: "Fundamental Calculus", Credits: 3},
			{Code: "MATH2183", Name: "Calculus and Linear Algebra", Credits: 3, Prerequisites: []string{"MATH1151"}},
			{Code: "MATH2205", Name: "Probability and Statistics", Credits: 3, Prerequisites: []string{"MATH1151"}},
			{Code: "PHY2105", Name: "Physics", Credits: 3},
			{Code: "CSE1110", Name: "Introduction to Computer Systems", Credits: 1},
			{Code: "CSE1111", Name: "Structured Programming Language", Credits: 3, Prerequisites: []string{"CSE1110"}},
			{Code: "CSE1115", Name: "Object Oriented Programming", Credits: 3, Prerequisites: []string{"CSE1111"}},
			{Code: "CSE1325", Name: "Digital Logic Design", Credits: 3},
			{Code: "CSE2215", Name: "Data Structures and Algorithms I", Credits: 3, Prerequisites: []string{"CSE1115"}},
			{Code: "CSE2217", Name: "Data Structures and Algorithms II", Credits: 3, Prerequisites: []string{"CSE2215"}},
			{Code: "CSE2233", Name: "Theory of Computation", Credits: 3, Prerequisites: []string{"CSE2215"}},
			{Code: "CSE3313", Name: "Computer Architecture", Credits: 3, Prerequisites: []string{"CSE1325"}},
			{Code: "CSE3411", Name: "System Analysis and Design", Credits: 3, Prerequisites: []string{"CSE1115"}},
			{Code: "CSE3421", Name: "Software Engineering", Credits: 3, Prerequisites: []string{"CSE1115"}},
			{Code: "CSE3521", Name: "Database Management Systems", Credits: 3, Prerequisites: []string{"CSE2215"}},
			{Code: "CSE3711", Name: "Computer Networks", Credits: 3, Prerequisites: []string{"CSE2217"}},
			{Code: "CSE3811", Name: "Artificial Intelligence", Credits: 3, Prerequisites: []string{"CSE2217", "MATH2205"}},
			{Code: "CSE4165", Name: "Web Programming", Credits: 3, Prerequisites: []string{"CSE1115"}},
			{Code: "CSE4495", Name: "Software Testing and Quality Assurance", Credits: 3, Prerequisites: []string{"CSE3421"}},
			{Code: "CSE4509", Name: "Operating Systems", Credits: 3, Prerequisites: []string{"CSE2217"}},
			{Code: "CSE4531", Name: "Computer Security", Credits: 3, Prerequisites: []string{"CSE4509"}},
			{Code: "CSE4587", Name: "Cloud Computing", Credits: 3, Prerequisites: []string{"CSE3711"}},
			{Code: "CSE4601", Name: "Mobile Application Development", Credits: 3, Prerequisites: []string{"CSE1115"}},
			{Code: "CSE4889", Name: "Machine Learning", Credits: 3, Prerequisites: []string{"CSE3811"}},
			{Code: "CSE4891", Name: "Data Mining", Credits: 3, Prerequisites: []string{"CSE4889"}},
		},
	},
}

var tracks = []Track{
	{
		ID:             "software-engineering",
		ProgramID:      "bscse",
		Title:          "Software Engineering",
		Description:    "Design, build and ship production software on backend and frontend stacks.",
		Icon:           "code",
		KeyCourseCodes: []string{"CSE1115", "CSE2215", "CSE2217", "CSE3421", "CSE3521", "CSE4165", "CSE4495"},
		JobTitles:      []string{"Software Engineer", "Backend Developer", "Full-Stack Developer"},
		AvgSalaryBDT:   60000,
		Growth:         GrowthHigh,
		Skills:         []string{"Data structures", "OOP design", "SQL", "REST APIs", "Testing"},
		CourseImportance: map[string]Importance{
			"CSE2215": ImportanceCritical,
			"CSE2217": ImportanceCritical,
			"CSE3421": ImportanceCritical,
			"CSE4165": ImportanceHelpful,
			"CSE4495": ImportanceHelpful,
		},
	},
	{
		ID:             "data-science",
		ProgramID:      "bscse",
		Title:          "Data Science & Machine Learning",
		Description:    "Turn raw data into models and decisions; the most grade-competitive track.",
		Icon:           "bar-chart",
		KeyCourseCodes: []string{"MATH2205", "CSE2215", "CSE3521", "CSE3811", "CSE4889", "CSE4891"},
		JobTitles:      []string{"Data Scientist", "Machine Learning Engineer", "Data Analyst"},
		AvgSalaryBDT:   70000,
		Growth:         GrowthHigh,
		Skills:         []string{"Statistics", "Python/R", "Model evaluation", "SQL", "Data storytelling"},
		TargetPoint:    3.67,
		CourseImportance: map[string]Importance{
			"CSE3811": ImportanceCritical,
			"CSE4889": ImportanceCritical,
			"CSE3521": ImportanceHelpful,
		},
	},
	{
		ID:             "cybersecurity",
		ProgramID:      "bscse",
		Title:          "Cybersecurity",
		Description:    "Defend systems and networks; security engineering and incident response.",
		Icon:           "shield",
		KeyCourseCodes: []string{"CSE3711", "CSE4509", "CSE4531"},
		JobTitles:      []string{"Security Engineer", "SOC Analyst", "Penetration Tester"},
		AvgSalaryBDT:   65000,
		Growth:         GrowthHigh,
		Skills:         []string{"Networking", "Operating systems", "Threat modeling", "Scripting"},
		CourseImportance: map[string]Importance{
			"CSE4531": ImportanceCritical,
		},
	},
	{
		ID:             "network-engineering",
		ProgramID:      "bscse",
		Title:          "Network & Systems Engineering",
		Description:    "Run the infrastructure: networks, servers and cloud platforms.",
		Icon:           "server",
		KeyCourseCodes: []string{"CSE3313", "CSE3711", "CSE4509", "CSE4587"},
		JobTitles:      []string{"Network Engineer", "Systems Administrator", "DevOps Engineer"},
		AvgSalaryBDT:   45000,
		Growth:         GrowthStable,
		Skills:         []string{"TCP/IP", "Linux", "Cloud platforms", "Automation"},
		CourseImportance: map[string]Importance{
			"CSE3711": ImportanceCritical,
			"CSE3313": ImportanceHelpful,
		},
	},
	{
		ID:             "product-management",
		ProgramID:      "bscse",
		Title:          "Technical Product Management",
		Description:    "Bridge engineering and business; own what gets built and why.",
		Icon:           "clipboard",
		KeyCourseCodes: []string{"ENG1013", "CSE3411", "CSE3421"},
		JobTitles:      []string{"Product Manager", "Business Analyst", "Project Coordinator"},
		AvgSalaryBDT:   55000,
		Growth:         GrowthStable,
		Skills:         []string{"Requirements analysis", "Communication", "Roadmapping"},
		TargetPoint:    3.00,
		CourseImportance: map[string]Importance{
			"CSE3411": ImportanceCritical,
			"ENG1013": ImportanceHelpful,
		},
	},
}

// Programs returns the full program catalog.
func Programs() []Program {
	return programs
}

// ProgramByID looks up a program; ok is false for unknown ids.
func ProgramByID(id string) (Program, bool) {
	for _, p := range programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

// TracksForProgram returns the tracks of a program in declaration order.
func TracksForProgram(programID string) []Track {
	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if t.ProgramID == programID {
			out = append(out, t)
		}
	}
	return out
}

// TrackByID looks up a track within a program; ok is false when the track
// does not exist or belongs to another program.
func TrackByID(programID, trackID string) (Track, bool) {
	for _, t := range tracks {
		if t.ProgramID == programID && t.ID == trackID {
			return t, true
		}
	}
	return Track{}, false
}

func (p Program) courseByCode(code string) (ProgramCourse, bool) {
	for _, c := range p.Courses {
		if c.Code == code {
			return c, true
		}
	}
	return ProgramCourse{}, false
}
