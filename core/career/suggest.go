package career

import (
	"fmt"
	"math"
	"sort"

	"github.com/campuskit/backend/core/grading"
)

// belowCPoint flags a key-course grade worth calling out as a gap.
const belowCPoint = 2.00

// strongAvgPoint is the "did well" threshold (B+ average).
const strongAvgPoint = 3.33

// SuggestCareers scores every track of the program against the student's
// completed courses and returns the suggestions best match first.
//
// The match is a 50/50 blend of completion rate and grade performance in the
// track's key courses: taking every key course with C grades deliberately
// scores lower than the completion rate alone would suggest, because the
// metric rewards mastery, not just exposure.
func SuggestCareers(program Program, completed []grading.CompletedCourse) []Suggestion {
	byCode := make(map[string]grading.CompletedCourse, len(completed))
	for _, c := range completed {
		byCode[c.Code] = c
	}

	trks := TracksForProgram(program.ID)
	suggestions := make([]Suggestion, 0, len(trks))
	for _, track := range trks {
		suggestions = append(suggestions, suggestTrack(track, byCode))
	}

	// ties keep track declaration order
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchPercent > suggestions[j].MatchPercent
	})
	return suggestions
}

func suggestTrack(track Track, byCode map[string]grading.CompletedCourse) Suggestion {
	done := make([]grading.CompletedCourse, 0, len(track.KeyCourseCodes))
	missing := make([]string, 0)
	for _, code := range track.KeyCourseCodes {
		if c, ok := byCode[code]; ok {
			done = append(done, c)
		} else {
			missing = append(missing, code)
		}
	}

	var completionRate, avgPoint float64
	if n := len(track.KeyCourseCodes); n > 0 {
		completionRate = float64(len(done)) / float64(n)
	}
	if len(done) > 0 {
		var sum float64
		for _, c := range done {
			sum += c.Point
		}
		avgPoint = sum / float64(len(done))
	}

	sugg := Suggestion{
		Track:               track,
		MatchPercent:        matchPercent(completionRate, avgPoint),
		KeyCoursesCompleted: done,
	}
	if len(done) > 0 {
		sugg.GradeLabel = grading.PointToGrade(avgPoint)
	}

	if completionRate >= 0.5 {
		sugg.WhyGoodFit = append(sugg.WhyGoodFit,
			fmt.Sprintf("Completed %d of %d key courses", len(done), len(track.KeyCourseCodes)))
	}
	if avgPoint >= strongAvgPoint {
		sugg.WhyGoodFit = append(sugg.WhyGoodFit,
			fmt.Sprintf("Strong performance in %d key courses (B+ average or better)", len(done)))
	}

	if completionRate < 0.5 {
		sugg.WhyNotYet = append(sugg.WhyNotYet,
			fmt.Sprintf("Only %d of %d key courses completed so far", len(done), len(track.KeyCourseCodes)))
	}
	for _, code := range missing {
		sugg.WhyNotYet = append(sugg.WhyNotYet, fmt.Sprintf("%s not taken yet", code))
	}
	for _, c := range done {
		if c.Point < belowCPoint {
			sugg.WhyNotYet = append(sugg.WhyNotYet,
				fmt.Sprintf("Grade below C in %s; consider a retake", c.Code))
		}
	}
	return sugg
}

// matchPercent blends completion and performance 50/50, clamped to [0,100].
func matchPercent(completionRate, avgPoint float64) int {
	pct := int(math.Round(completionRate*50 + (avgPoint/4.0)*50))
	return clampPct(pct)
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
