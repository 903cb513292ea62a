package career

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/campuskit/backend/core/grading"
)

// urgentDeficit is the grade-point gap that makes a study tip urgent.
const urgentDeficit = 1.0

// BuildRoadmap produces the trimester-by-trimester advisor plan for one
// track. An unknown trackID or a program with no courses yields a zeroed
// roadmap; the UI must always have something to render.
//
// targetCGPA <= 0 falls back to DefaultTargetCGPA. currentCGPA and
// completedCredits come from the aggregator's last cumulative row.
func BuildRoadmap(
	program Program,
	completed []grading.CompletedCourse,
	trackID string,
	currentCGPA, completedCredits, targetCGPA float64,
) Roadmap {
	track, ok := TrackByID(program.ID, trackID)
	if !ok || len(program.Courses) == 0 {
		return Roadmap{
			ActionItems:   []string{},
			CourseTargets: []CourseTarget{},
			TrimesterPlan: []PlanTrimester{},
			StudyTips:     []StudyTip{},
		}
	}
	if targetCGPA <= 0 {
		targetCGPA = DefaultTargetCGPA
	}

	byCode := make(map[string]grading.CompletedCourse, len(completed))
	for _, c := range completed {
		byCode[c.Code] = c
	}

	targets := courseTargets(program, track, byCode)
	avgInKey := avgCompletedKeyPoint(targets)
	plan := trimesterPlan(program, track, byCode, currentCGPA, completedCredits, targetCGPA)
	tips := studyTips(targets, track)

	rm := Roadmap{
		Track:            track,
		OverallReadiness: readiness(track, targets, avgInKey, currentCGPA, targetCGPA),
		CurrentAvgInKey:  round2(avgInKey),
		TargetCGPA:       targetCGPA,
		CourseTargets:    targets,
		TrimesterPlan:    plan,
		StudyTips:        tips,
	}
	rm.ActionItems = actionItems(rm, currentCGPA)
	return rm
}

// readiness blends completion (40), key-course performance (40) and CGPA
// proximity to the target (20) into a [0,100] integer.
func readiness(track Track, targets []CourseTarget, avgInKey, currentCGPA, targetCGPA float64) int {
	var completedN int
	for _, t := range targets {
		if t.Status == StatusCompleted {
			completedN++
		}
	}
	var completionRate float64
	if len(track.KeyCourseCodes) > 0 {
		completionRate = float64(completedN) / float64(len(track.KeyCourseCodes))
	}
	var cgpaRate float64
	if targetCGPA > 0 {
		cgpaRate = math.Min(currentCGPA/targetCGPA, 1)
	}
	return clampPct(int(math.Round(completionRate*40 + (avgInKey/4.0)*40 + cgpaRate*20)))
}

// courseTargets builds one target row per key course, ordered
// remaining-critical first, then by importance tier. The UI renders this
// list as-is without re-sorting.
func courseTargets(program Program, track Track, byCode map[string]grading.CompletedCourse) []CourseTarget {
	targetPoint := track.targetPoint()
	targetGrade := grading.PointToGrade(targetPoint)

	targets := make([]CourseTarget, 0, len(track.KeyCourseCodes))
	for _, code := range track.KeyCourseCodes {
		ct := CourseTarget{
			Code:        code,
			Status:      StatusRemaining,
			Importance:  track.importanceOf(code),
			TargetPoint: targetPoint,
			TargetGrade: targetGrade,
		}
		if pc, ok := program.courseByCode(code); ok {
			ct.Name = pc.Name
		}
		if c, ok := byCode[code]; ok {
			ct.Status = StatusCompleted
			ct.ActualPoint = c.Point
			ct.ActualGrade = c.Grade
			ct.MeetsTarget = c.Point >= targetPoint
		}
		targets = append(targets, ct)
	}

	sort.SliceStable(targets, func(i, j int) bool {
		iRC := targets[i].Status == StatusRemaining && targets[i].Importance == ImportanceCritical
		jRC := targets[j].Status == StatusRemaining && targets[j].Importance == ImportanceCritical
		if iRC != jRC {
			return iRC
		}
		return importanceRank[targets[i].Importance] < importanceRank[targets[j].Importance]
	})
	return targets
}

func avgCompletedKeyPoint(targets []CourseTarget) float64 {
	var sum float64
	var n int
	for _, t := range targets {
		if t.Status == StatusCompleted {
			sum += t.ActualPoint
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// trimesterPlan partitions the remaining track-relevant courses (key courses
// plus their transitive prerequisites) into future trimesters. Each
// trimester respects prerequisites, stays at or under MaxTrimesterCredits
// and carries the GPA needed to stay on pace for the target CGPA.
//
// Courses whose prerequisites can never be satisfied are reported in a final
// empty trimester note instead of looping forever.
func trimesterPlan(
	program Program,
	track Track,
	byCode map[string]grading.CompletedCourse,
	currentCGPA, completedCredits, targetCGPA float64,
) []PlanTrimester {
	remaining := remainingRelevantCourses(program, track, byCode)
	if len(remaining) == 0 {
		return []PlanTrimester{}
	}

	scheduled := make(map[string]bool)
	satisfied := func(c ProgramCourse) bool {
		for _, pre := range c.Prerequisites {
			if _, done := byCode[pre]; !done && !scheduled[pre] {
				return false
			}
		}
		return true
	}

	creditsSoFar := completedCredits
	pointsSoFar := currentCGPA * completedCredits

	plan := make([]PlanTrimester, 0)
	for num := 1; len(remaining) > 0; num++ {
		tri := PlanTrimester{Number: num, Courses: []PlanCourse{}}
		placedCodes := make([]string, 0)

		rest := remaining[:0:0]
		for _, c := range remaining {
			if satisfied(c) && tri.Credits+c.Credits <= MaxTrimesterCredits {
				tri.Courses = append(tri.Courses, PlanCourse{Code: c.Code, Name: c.Name, Credits: c.Credits})
				tri.Credits += c.Credits
				placedCodes = append(placedCodes, c.Code)
			} else {
				rest = append(rest, c)
			}
		}
		remaining = rest

		if len(placedCodes) == 0 {
			// nothing placeable: all remaining have unmet prerequisites
			blocked := make([]string, 0, len(remaining))
			for _, c := range remaining {
				blocked = append(blocked, c.Code)
			}
			tri.TargetGPA = requiredFutureGPA(program, pointsSoFar, creditsSoFar, targetCGPA)
			tri.Note = fmt.Sprintf("no course can be scheduled; unmet prerequisites block %s", strings.Join(blocked, ", "))
			plan = append(plan, tri)
			break
		}

		// prerequisites satisfied by this trimester only unblock the next one
		for _, code := range placedCodes {
			scheduled[code] = true
		}

		tri.TargetGPA = requiredFutureGPA(program, pointsSoFar, creditsSoFar, targetCGPA)
		// project the student hitting the target when consuming credits
		pointsSoFar += tri.TargetGPA * tri.Credits
		creditsSoFar += tri.Credits

		plan = append(plan, tri)
	}
	return plan
}

// requiredFutureGPA is the forward projection keeping the cumulative CGPA on
// pace: (target*gradCredits - pointsSoFar) / remainingCredits, clamped to the
// grade scale.
func requiredFutureGPA(program Program, pointsSoFar, creditsSoFar, targetCGPA float64) float64 {
	remainingCredits := program.TotalCredits - creditsSoFar
	if remainingCredits <= 0 {
		return 0
	}
	req := (targetCGPA*program.TotalCredits - pointsSoFar) / remainingCredits
	if req < 0 {
		req = 0
	}
	if req > 4 {
		req = 4
	}
	return round2(req)
}

// remainingRelevantCourses returns the not-yet-completed catalog courses
// relevant to the track: the key courses and their transitive prerequisites,
// in catalog order.
func remainingRelevantCourses(program Program, track Track, byCode map[string]grading.CompletedCourse) []ProgramCourse {
	relevant := make(map[string]bool)
	var mark func(code string)
	mark = func(code string) {
		if relevant[code] {
			return
		}
		relevant[code] = true
		if pc, ok := program.courseByCode(code); ok {
			for _, pre := range pc.Prerequisites {
				mark(pre)
			}
		}
	}
	for _, code := range track.KeyCourseCodes {
		mark(code)
	}

	remaining := make([]ProgramCourse, 0)
	for _, c := range program.Courses {
		if !relevant[c.Code] {
			continue
		}
		if _, done := byCode[c.Code]; done {
			continue
		}
		remaining = append(remaining, c)
	}
	return remaining
}

func studyTips(targets []CourseTarget, track Track) []StudyTip {
	tips := make([]StudyTip, 0)
	for _, t := range targets {
		if t.Status != StatusCompleted || t.MeetsTarget {
			continue
		}
		tip := StudyTip{Code: t.Code, Priority: PriorityImportant}
		if t.TargetPoint-t.ActualPoint >= urgentDeficit {
			tip.Priority = PriorityUrgent
		}
		tip.Tip = fmt.Sprintf("Retake or improve %s: current %s, target %s for %s",
			t.Code, t.ActualGrade, t.TargetGrade, track.Title)
		tips = append(tips, tip)
	}
	return tips
}

// actionItems picks the 3 to 5 most useful imperatives out of the roadmap,
// padding with track-level guidance when little is actionable.
func actionItems(rm Roadmap, currentCGPA float64) []string {
	items := make([]string, 0, 5)

	for _, tip := range rm.StudyTips {
		if tip.Priority == PriorityUrgent {
			items = append(items, fmt.Sprintf("Retake or improve grade in %s", tip.Code))
		}
	}
	for _, t := range rm.CourseTargets {
		if t.Status == StatusRemaining && t.Importance == ImportanceCritical {
			items = append(items, fmt.Sprintf("Enroll in %s as early as possible", t.Code))
		}
	}
	if len(rm.TrimesterPlan) > 0 && rm.TrimesterPlan[0].TargetGPA > 0 {
		items = append(items, fmt.Sprintf("Aim for a %.2f GPA next trimester", rm.TrimesterPlan[0].TargetGPA))
	}
	if currentCGPA >= rm.TargetCGPA {
		items = append(items, fmt.Sprintf("Maintain current pace; on track for the %.2f target", rm.TargetCGPA))
	} else {
		items = append(items, fmt.Sprintf("Raise CGPA from %.2f toward %.2f", currentCGPA, rm.TargetCGPA))
	}

	// the list always carries 3 to 5 imperatives
	if len(items) < 3 {
		items = append(items, fmt.Sprintf("Explore internships and projects toward %s roles", rm.Track.Title))
	}
	if len(items) < 3 && len(rm.CourseTargets) > 0 {
		items = append(items, fmt.Sprintf("Keep key-course grades at %s or better", rm.CourseTargets[0].TargetGrade))
	}

	if len(items) > 5 {
		items = items[:5]
	}
	return items
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
