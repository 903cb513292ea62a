package career

import (
	"strings"
	"testing"

	"github.com/campuskit/backend/core/grading"
)

func TestBuildRoadmap_unknownTrack(t *testing.T) {
	rm := BuildRoadmap(bscse(t), nil, "astrology", 3.0, 30, 0)
	if rm.Track.ID != "" {
		t.Errorf("track = %q, want zero", rm.Track.ID)
	}
	if rm.OverallReadiness != 0 {
		t.Errorf("readiness = %d, want 0", rm.OverallReadiness)
	}
	// slices must be present (not nil) so the response renders as []
	if rm.ActionItems == nil || rm.CourseTargets == nil || rm.TrimesterPlan == nil || rm.StudyTips == nil {
		t.Error("zeroed roadmap must carry empty slices")
	}
}

func TestBuildRoadmap_planRespectsPrerequisitesAndCap(t *testing.T) {
	rm := BuildRoadmap(bscse(t), nil, "product-management", 0, 0, 0)

	if rm.TargetCGPA != DefaultTargetCGPA {
		t.Errorf("target CGPA = %v, want default %v", rm.TargetCGPA, DefaultTargetCGPA)
	}
	if len(rm.TrimesterPlan) == 0 {
		t.Fatal("expected a trimester plan for a fresh student")
	}

	scheduled := make(map[string]int) // code -> trimester number
	program := bscse(t)
	for _, tri := range rm.TrimesterPlan {
		if tri.Credits > MaxTrimesterCredits {
			t.Errorf("trimester %d: %v credits over the cap", tri.Number, tri.Credits)
		}
		if tri.TargetGPA < 0 || tri.TargetGPA > 4 {
			t.Errorf("trimester %d: target GPA %v out of range", tri.Number, tri.TargetGPA)
		}
		for _, c := range tri.Courses {
			scheduled[c.Code] = tri.Number
		}
	}

	// every scheduled course's prerequisites appear in a strictly earlier trimester
	for code, num := range scheduled {
		pc, ok := program.courseByCode(code)
		if !ok {
			t.Fatalf("course %s not in catalog", code)
		}
		for _, pre := range pc.Prerequisites {
			preNum, ok := scheduled[pre]
			if !ok {
				t.Errorf("%s scheduled but prerequisite %s never scheduled", code, pre)
				continue
			}
			if preNum >= num {
				t.Errorf("%s in trimester %d but prerequisite %s in %d", code, num, pre, preNum)
			}
		}
	}

	// the track-relevant closure for product-management
	for _, code := range []string{"ENG1011", "ENG1013", "CSE1110", "CSE1111", "CSE1115", "CSE3411", "CSE3421"} {
		if _, ok := scheduled[code]; !ok {
			t.Errorf("%s missing from the plan", code)
		}
	}
}

func TestBuildRoadmap_completedCoursesLeaveThePlan(t *testing.T) {
	history := []grading.CompletedCourse{
		completed("ENG1011", "A", 4),
		completed("ENG1013", "A", 4),
		completed("CSE1110", "A", 4),
		completed("CSE1111", "A", 4),
		completed("CSE1115", "A", 4),
		completed("CSE3411", "A", 4),
		completed("CSE3421", "A", 4),
	}
	rm := BuildRoadmap(bscse(t), history, "product-management", 4.0, 21, 3.5)
	if len(rm.TrimesterPlan) != 0 {
		t.Errorf("plan = %+v, want empty when everything is done", rm.TrimesterPlan)
	}
	if rm.OverallReadiness != 100 {
		t.Errorf("readiness = %d, want 100", rm.OverallReadiness)
	}
	if len(rm.StudyTips) != 0 {
		t.Errorf("study tips = %+v, want none", rm.StudyTips)
	}
}

func TestBuildRoadmap_blockedPrerequisiteTerminates(t *testing.T) {
	// CSE4531 requires CSE4509, which this pruned catalog does not offer;
	// the plan must flag it instead of looping.
	program := Program{
		ID:           "bscse",
		TotalCredits: 140,
		Courses: []ProgramCourse{
			{Code: "CSE3711", Name: "Computer Networks", Credits: 3},
			{Code: "CSE4531", Name: "Computer Security", Credits: 3, Prerequisites: []string{"CSE4509"}},
		},
	}

	rm := BuildRoadmap(program, nil, "cybersecurity", 3.0, 60, 3.5)
	if len(rm.TrimesterPlan) == 0 {
		t.Fatal("expected a plan")
	}
	last := rm.TrimesterPlan[len(rm.TrimesterPlan)-1]
	if len(last.Courses) != 0 {
		t.Errorf("blocked trimester should be empty, got %+v", last.Courses)
	}
	if !strings.Contains(last.Note, "CSE4531") {
		t.Errorf("note %q should name the blocked course", last.Note)
	}
}

func TestBuildRoadmap_requiredGPAClamped(t *testing.T) {
	tests := []struct {
		name             string
		currentCGPA      float64
		completedCredits float64
		targetCGPA       float64
		want             float64
	}{
		// (2.0*140 - 3.9*130) / 10 is negative: already past the target
		{name: "target already secured", currentCGPA: 3.9, completedCredits: 130, targetCGPA: 2.0, want: 0},
		// (3.9*140 - 1.0*130) / 10 is far above the scale ceiling
		{name: "target out of reach", currentCGPA: 1.0, completedCredits: 130, targetCGPA: 3.9, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := BuildRoadmap(bscse(t), nil, "cybersecurity", tt.currentCGPA, tt.completedCredits, tt.targetCGPA)
			if len(rm.TrimesterPlan) == 0 {
				t.Fatal("expected a plan")
			}
			if got := rm.TrimesterPlan[0].TargetGPA; got != tt.want {
				t.Errorf("first trimester target GPA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildRoadmap_studyTipUrgency(t *testing.T) {
	history := []grading.CompletedCourse{
		completed("CSE3711", "D", 1),  // 2.33 below the B+ target: urgent
		completed("CSE4509", "B", 3),  // 0.33 below: important
		completed("CSE4531", "A", 4),  // meets target
	}
	rm := BuildRoadmap(bscse(t), history, "cybersecurity", 2.5, 60, 3.5)

	byCode := make(map[string]StudyTip)
	for _, tip := range rm.StudyTips {
		byCode[tip.Code] = tip
	}
	if tip, ok := byCode["CSE3711"]; !ok || tip.Priority != PriorityUrgent {
		t.Errorf("CSE3711 tip = %+v, want urgent", tip)
	}
	if tip, ok := byCode["CSE4509"]; !ok || tip.Priority != PriorityImportant {
		t.Errorf("CSE4509 tip = %+v, want important", tip)
	}
	if _, ok := byCode["CSE4531"]; ok {
		t.Error("CSE4531 meets the target; no tip expected")
	}
}

func TestBuildRoadmap_actionItemsBounded(t *testing.T) {
	tests := []struct {
		name        string
		history     []grading.CompletedCourse
		currentCGPA float64
		credits     float64
	}{
		{name: "fresh student", currentCGPA: 2.0, credits: 30},
		{
			name: "everything complete and on target",
			history: []grading.CompletedCourse{
				completed("CSE1115", "A", 4),
				completed("CSE2215", "A", 4),
				completed("CSE2217", "A", 4),
				completed("CSE3421", "A", 4),
				completed("CSE3521", "A", 4),
				completed("CSE4165", "A", 4),
				completed("CSE4495", "A", 4),
			},
			currentCGPA: 4.0,
			credits:     140,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := BuildRoadmap(bscse(t), tt.history, "software-engineering", tt.currentCGPA, tt.credits, 3.8)
			if n := len(rm.ActionItems); n < 3 || n > 5 {
				t.Errorf("action items = %d, want 3..5: %v", n, rm.ActionItems)
			}
		})
	}
}
